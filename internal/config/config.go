// Package config reads gz settings from git configuration.
package config

import (
	"context"
	"strings"

	"github.com/chmouel/gz/internal/git"
	log "github.com/chmouel/gz/internal/log"
	"github.com/chmouel/gz/internal/theme"
)

// AppConfig holds the gz settings.
type AppConfig struct {
	MainBranch string // Branch `done` returns to (gz.mainbranch)
	Remote     string // Remote used by `sync` (gz.remote)
	Theme      string // Staging screen palette, see theme.AvailableThemes (gz.theme)
	ShowIcons  bool   // Render Nerd Font file icons (gz.icons)
	DebugLog   string // Debug log file (gz.debuglog)
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		MainBranch: "main",
		Remote:     "origin",
	}
}

// LoadConfig reads gz.* keys through git and applies them over the defaults.
func LoadConfig(ctx context.Context, runner git.Runner, repoPath string) (*AppConfig, error) {
	values, err := loadGitConfig(ctx, runner, repoPath)
	if err != nil {
		return DefaultConfig(), err
	}
	return parseConfig(values), nil
}

func parseConfig(values map[string]string) *AppConfig {
	cfg := DefaultConfig()

	if v := strings.TrimSpace(values["mainbranch"]); v != "" {
		cfg.MainBranch = v
	}
	if v := strings.TrimSpace(values["remote"]); v != "" {
		cfg.Remote = v
	}
	if v, ok := values["theme"]; ok {
		if name := NormalizeThemeName(v); name != "" {
			cfg.Theme = name
		} else {
			log.Printf("config: unknown theme %q ignored, available: %s", v, strings.Join(theme.AvailableThemes(), ", "))
		}
	}
	cfg.ShowIcons = coerceBool(values["icons"], cfg.ShowIcons)
	cfg.DebugLog = strings.TrimSpace(values["debuglog"])

	return cfg
}

func coerceBool(value string, defaultVal bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	}
	return defaultVal
}

// NormalizeThemeName returns the canonical theme name if it is supported.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if theme.GetTheme(name) == nil {
		return ""
	}
	return name
}

// ResolveTheme returns the configured palette, falling back to a default
// matching the terminal background.
func (c *AppConfig) ResolveTheme() *theme.Theme {
	if t := theme.GetTheme(c.Theme); t != nil {
		return t
	}
	return theme.GetTheme(theme.Default())
}
