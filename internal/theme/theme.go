// Package theme provides the colour palettes of the staging screen.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the colours used by the staging screen.
type Theme struct {
	Accent   lipgloss.Color // Title
	Border   lipgloss.Color
	MutedFg  lipgloss.Color // Footer and empty list text
	TextFg   lipgloss.Color // Footer key names
	Staged   lipgloss.Color // Entries recorded in the index
	Unstaged lipgloss.Color // Worktree and untracked entries
}

// Theme names.
const (
	DraculaName         = "dracula"
	DraculaLightName    = "dracula-light"
	NordName            = "nord"
	GruvboxDarkName     = "gruvbox-dark"
	GruvboxLightName    = "gruvbox-light"
	SolarizedDarkName   = "solarized-dark"
	SolarizedLightName  = "solarized-light"
	MonokaiName         = "monokai"
	CatppuccinMochaName = "catppuccin-mocha"
)

// Dracula returns the Dracula theme (dark background, vibrant colors).
func Dracula() *Theme {
	return &Theme{
		Accent:   lipgloss.Color("#BD93F9"),
		Border:   lipgloss.Color("#6272A4"),
		MutedFg:  lipgloss.Color("#6272A4"),
		TextFg:   lipgloss.Color("#F8F8F2"),
		Staged:   lipgloss.Color("#50FA7B"),
		Unstaged: lipgloss.Color("#FF5555"),
	}
}

// DraculaLight returns the Dracula theme adapted for light backgrounds.
func DraculaLight() *Theme {
	return &Theme{
		Accent:   lipgloss.Color("#7C3AED"),
		Border:   lipgloss.Color("#D0D7DE"),
		MutedFg:  lipgloss.Color("#6E7781"),
		TextFg:   lipgloss.Color("#24292F"),
		Staged:   lipgloss.Color("#059669"),
		Unstaged: lipgloss.Color("#DC2626"),
	}
}

// Nord returns the Nord theme.
func Nord() *Theme {
	return &Theme{
		Accent:   lipgloss.Color("#88C0D0"),
		Border:   lipgloss.Color("#4C566A"),
		MutedFg:  lipgloss.Color("#81A1C1"),
		TextFg:   lipgloss.Color("#E5E9F0"),
		Staged:   lipgloss.Color("#A3BE8C"),
		Unstaged: lipgloss.Color("#BF616A"),
	}
}

// GruvboxDark returns the dark Gruvbox theme.
func GruvboxDark() *Theme {
	return &Theme{
		Accent:   lipgloss.Color("#FABD2F"),
		Border:   lipgloss.Color("#504945"),
		MutedFg:  lipgloss.Color("#928374"),
		TextFg:   lipgloss.Color("#EBDBB2"),
		Staged:   lipgloss.Color("#B8BB26"),
		Unstaged: lipgloss.Color("#FB4934"),
	}
}

// GruvboxLight returns the light Gruvbox theme.
func GruvboxLight() *Theme {
	return &Theme{
		Accent:   lipgloss.Color("#D79921"),
		Border:   lipgloss.Color("#D5C4A1"),
		MutedFg:  lipgloss.Color("#7C6F64"),
		TextFg:   lipgloss.Color("#3C3836"),
		Staged:   lipgloss.Color("#79740E"),
		Unstaged: lipgloss.Color("#9D0006"),
	}
}

// SolarizedDark returns the dark Solarized theme.
func SolarizedDark() *Theme {
	return &Theme{
		Accent:   lipgloss.Color("#268BD2"),
		Border:   lipgloss.Color("#586E75"),
		MutedFg:  lipgloss.Color("#586E75"),
		TextFg:   lipgloss.Color("#EEE8D5"),
		Staged:   lipgloss.Color("#859900"),
		Unstaged: lipgloss.Color("#DC322F"),
	}
}

// SolarizedLight returns the light Solarized theme.
func SolarizedLight() *Theme {
	return &Theme{
		Accent:   lipgloss.Color("#268BD2"),
		Border:   lipgloss.Color("#93A1A1"),
		MutedFg:  lipgloss.Color("#93A1A1"),
		TextFg:   lipgloss.Color("#073642"),
		Staged:   lipgloss.Color("#859900"),
		Unstaged: lipgloss.Color("#DC322F"),
	}
}

// Monokai returns the Monokai theme.
func Monokai() *Theme {
	return &Theme{
		Accent:   lipgloss.Color("#A6E22E"),
		Border:   lipgloss.Color("#75715E"),
		MutedFg:  lipgloss.Color("#75715E"),
		TextFg:   lipgloss.Color("#F8F8F2"),
		Staged:   lipgloss.Color("#A6E22E"),
		Unstaged: lipgloss.Color("#F92672"),
	}
}

// CatppuccinMocha returns the Catppuccin Mocha theme.
func CatppuccinMocha() *Theme {
	return &Theme{
		Accent:   lipgloss.Color("#B4BEFE"),
		Border:   lipgloss.Color("#45475A"),
		MutedFg:  lipgloss.Color("#6C7086"),
		TextFg:   lipgloss.Color("#CDD6F4"),
		Staged:   lipgloss.Color("#A6E3A1"),
		Unstaged: lipgloss.Color("#F38BA8"),
	}
}

// GetTheme returns the theme registered under name, or nil.
func GetTheme(name string) *Theme {
	switch name {
	case DraculaName:
		return Dracula()
	case DraculaLightName:
		return DraculaLight()
	case NordName:
		return Nord()
	case GruvboxDarkName:
		return GruvboxDark()
	case GruvboxLightName:
		return GruvboxLight()
	case SolarizedDarkName:
		return SolarizedDark()
	case SolarizedLightName:
		return SolarizedLight()
	case MonokaiName:
		return Monokai()
	case CatppuccinMochaName:
		return CatppuccinMocha()
	default:
		return nil
	}
}

// Default picks dracula or dracula-light from the terminal background.
func Default() string {
	if lipgloss.HasDarkBackground() {
		return DraculaName
	}
	return DraculaLightName
}

// AvailableThemes returns a list of available theme names.
func AvailableThemes() []string {
	return []string{
		DraculaName,
		DraculaLightName,
		NordName,
		GruvboxDarkName,
		GruvboxLightName,
		SolarizedDarkName,
		SolarizedLightName,
		MonokaiName,
		CatppuccinMochaName,
	}
}
