package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lemterm/lemterm/app"
	"github.com/lemterm/lemterm/domain"
	"github.com/lemterm/lemterm/infra/config"
	"github.com/lemterm/lemterm/tui/common"
	"github.com/lemterm/lemterm/tui/feed"
	"github.com/lemterm/lemterm/tui/login"
	"github.com/lemterm/lemterm/tui/session"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	API       app.LemmyService
	Images    app.ImageService
	Cache     app.ThumbnailCache // may be nil
	Sessions  *session.Controller
	Kitty     bool
	Prefill   login.Prefill
	Theme     common.Theme
	Query     domain.QuerySpec // restored from UI state
	StatePath string
}

type activeView int

const (
	loginView activeView = iota
	feedView
)

// App is the root Bubble Tea model. It routes between the login form and
// the feed, and owns the single writer side of the session cell: login
// results are published here, on the event-loop goroutine.
type App struct {
	deps   Deps
	active activeView
	login  login.Model
	feed   feed.Model
	keys   common.KeyMap
	theme  common.Theme
	status string // Transient status message (e.g. "Connected")
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps:   deps,
		active: loginView,
		login:  login.New(deps.Sessions, deps.Theme, deps.Prefill),
		feed: feed.New(feed.Deps{
			API:      deps.API,
			Images:   deps.Images,
			Cache:    deps.Cache,
			Sessions: deps.Sessions,
			Kitty:    deps.Kitty,
			Theme:    deps.Theme,
			Query:    deps.Query,
		}),
		keys:  common.DefaultKeyMap(),
		theme: deps.Theme,
	}
}

// Init delegates to the sub-models.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.login.Init(), a.feed.Init())
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)

	case login.ResultMsg:
		a.login, _ = a.login.Update(msg)
		if msg.Err != nil {
			return a, nil
		}
		// Publishing here keeps observer notification on the event-loop
		// goroutine. The feed consumes the replacement on the next message.
		a.deps.Sessions.Publish(msg.Session)
		a.active = feedView
		a.status = ""
		return a, func() tea.Msg { return feed.SessionChangedMsg{} }

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		return a, cmd
	}

	// Search results, thumbnails, and session changes belong to the feed
	// even while the login form is showing.
	switch msg.(type) {
	case feed.ResultsMsg, feed.ResultsErrMsg, feed.ThumbLoadedMsg, feed.SessionChangedMsg:
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		if _, ok := msg.(feed.ResultsMsg); ok {
			a.persistState()
		}
		return a, cmd
	}

	var cmd tea.Cmd
	if a.active == loginView {
		a.login, cmd = a.login.Update(msg)
		return a, cmd
	}
	a.feed, cmd = a.feed.Update(msg)
	return a, cmd
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits from anywhere, even mid-edit.
	if key.Matches(msg, a.keys.Quit) {
		a.persistState()
		return a, tea.Quit
	}

	if a.active == loginView {
		var cmd tea.Cmd
		a.login, cmd = a.login.Update(msg)
		return a, cmd
	}

	if !a.feed.Typing() {
		switch {
		case key.Matches(msg, a.keys.LogIn):
			a.active = loginView
			a.status = ""
			return a, nil

		case key.Matches(msg, a.keys.ToggleTheme):
			a.theme = a.theme.Toggle()
			a.login = a.login.SetTheme(a.theme)
			a.feed = a.feed.SetTheme(a.theme)
			a.status = "Theme: " + a.theme.Name
			a.persistState()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.feed, cmd = a.feed.Update(msg)
	return a, cmd
}

// persistState saves the query and theme for the next run. Best-effort: a
// read-only config directory must not break browsing.
func (a App) persistState() {
	if a.deps.StatePath == "" {
		return
	}
	q := a.feed.Query()
	_ = config.SaveUIState(a.deps.StatePath, config.UIState{
		Query: q.Text,
		Kind:  q.Kind.String(),
		Sort:  q.Sort.String(),
		Scope: q.Scope.String(),
		Theme: a.theme.Name,
	})
}

// View renders the active sub-model.
func (a App) View() string {
	var s string
	switch a.active {
	case loginView:
		s = a.login.View()
	case feedView:
		s = a.feed.View()
	}
	if a.status != "" {
		s += "\n" + a.theme.StatusBar.Render(a.status)
	}
	return s
}
