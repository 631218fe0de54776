package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lemterm/lemterm/domain"
	"github.com/lemterm/lemterm/infra/config"
	"github.com/lemterm/lemterm/infra/imaging"
	"github.com/lemterm/lemterm/infra/lemmy"
	"github.com/lemterm/lemterm/infra/storage"
	"github.com/lemterm/lemterm/tui"
	"github.com/lemterm/lemterm/tui/common"
	"github.com/lemterm/lemterm/tui/login"
	"github.com/lemterm/lemterm/tui/session"
	"github.com/lemterm/lemterm/tui/termimg"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	default:
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
}

func usage() string {
	return "Usage: lemterm [--version|-version|-v] [--help|-h]"
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

// restoreQuery maps persisted enum names back onto a query spec. Unknown
// names fall back to the defaults.
func restoreQuery(st config.UIState) domain.QuerySpec {
	return domain.QuerySpec{
		Text:  st.Query,
		Kind:  domain.KindByName(st.Kind),
		Sort:  domain.SortByName(st.Sort),
		Scope: domain.ScopeByName(st.Scope),
	}
}

func main() {
	mode, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("lemterm %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
	}

	// 1. Load config from environment.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// 2. Build infrastructure (concrete types satisfy app.* interfaces).
	api := lemmy.NewClient()
	images := imaging.NewService()
	sessions := session.NewController(api)

	// The thumbnail cache is an optimization; browsing works without it.
	var cache *storage.ThumbCache
	if c, err := storage.Open(cfg.CacheDB); err == nil {
		if err := c.Init(context.Background()); err == nil {
			cache = c
			defer cache.Close()
		} else {
			c.Close()
		}
	}

	// 3. Restore UI state from the previous run.
	uiState, _ := config.LoadUIState(cfg.UIState)
	themeName := cfg.Theme
	if uiState.Theme != "" {
		themeName = uiState.Theme
	}

	// 4. Wire root TUI model.
	deps := tui.Deps{
		API:      api,
		Images:   images,
		Sessions: sessions,
		Kitty:    termimg.Supported(),
		Prefill: login.Prefill{
			Instance: cfg.Instance,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		Theme:     common.ThemeByName(themeName),
		Query:     restoreQuery(uiState),
		StatePath: cfg.UIState,
	}
	if cache != nil {
		deps.Cache = cache
	}
	rootModel := tui.NewApp(deps)

	// 5. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "lemterm: %v\n", err)
		os.Exit(1)
	}
}
