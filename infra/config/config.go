package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds application-level configuration. The three login values
// only pre-fill the form; they are never submitted automatically.
type Config struct {
	Instance string // Pre-fills the instance URL field
	Username string // Pre-fills the username field
	Password string // Pre-fills the password field
	Theme    string // "dark" or "light"
	CacheDB  string // Path to the sqlite thumbnail cache
	UIState  string // Path to the persisted UI state file
}

// Load reads configuration from environment variables.
//
//	LEMTERM_INSTANCE — instance URL to pre-fill (optional)
//	LEMTERM_USERNAME — username to pre-fill (optional)
//	LEMTERM_PASSWORD — password to pre-fill (optional)
//	LEMTERM_THEME    — "dark" or "light" (default: "dark")
//	LEMTERM_CACHE    — thumbnail cache path (default: ~/.cache/lemterm/thumbs.db)
func Load() (Config, error) {
	theme := os.Getenv("LEMTERM_THEME")
	if theme == "" {
		theme = "dark"
	}
	if theme != "dark" && theme != "light" {
		return Config{}, fmt.Errorf("invalid LEMTERM_THEME: must be dark or light")
	}

	cacheDB := os.Getenv("LEMTERM_CACHE")
	if cacheDB == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine cache directory: %w", err)
		}
		cacheDB = filepath.Join(dir, "lemterm", "thumbs.db")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
	}

	return Config{
		Instance: os.Getenv("LEMTERM_INSTANCE"),
		Username: os.Getenv("LEMTERM_USERNAME"),
		Password: os.Getenv("LEMTERM_PASSWORD"),
		Theme:    theme,
		CacheDB:  cacheDB,
		UIState:  filepath.Join(home, ".config", "lemterm", "state.json"),
	}, nil
}
