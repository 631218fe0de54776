package common

import "github.com/charmbracelet/lipgloss"

// Theme groups every style the views use, so the whole palette can be
// swapped at runtime with a single key.
type Theme struct {
	Name string

	Title   lipgloss.Style
	Tagline lipgloss.Style
	Label   lipgloss.Style

	PostTitle        lipgloss.Style
	PostBody         lipgloss.Style
	SelectedBorder   lipgloss.Style
	UnselectedBorder lipgloss.Style

	Pill       lipgloss.Style
	PillActive lipgloss.Style

	StatusBar lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Faint     lipgloss.Style
	Spinner   lipgloss.Style
}

// Dark is the default theme.
func Dark() Theme {
	mauve := lipgloss.Color("#CBA6F7")
	text := lipgloss.Color("#CDD6F4")
	subtext := lipgloss.Color("#A6ADC8")
	overlay := lipgloss.Color("#6E738D")
	surface := lipgloss.Color("#313244")
	green := lipgloss.Color("#A6DA95")
	red := lipgloss.Color("#ED8796")
	peach := lipgloss.Color("#FAB387")

	return Theme{
		Name:    "dark",
		Title:   lipgloss.NewStyle().Bold(true).Foreground(mauve).Padding(1, 0, 0, 1),
		Tagline: lipgloss.NewStyle().Foreground(overlay).Italic(true).MarginLeft(1),
		Label:   lipgloss.NewStyle().Foreground(subtext),

		PostTitle:        lipgloss.NewStyle().Bold(true).Foreground(text),
		PostBody:         lipgloss.NewStyle().Foreground(subtext),
		SelectedBorder:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(mauve).Padding(0, 1),
		UnselectedBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(surface).Padding(0, 1),

		Pill:       lipgloss.NewStyle().Foreground(subtext).Background(surface).Padding(0, 1),
		PillActive: lipgloss.NewStyle().Foreground(surface).Background(mauve).Bold(true).Padding(0, 1),

		StatusBar: lipgloss.NewStyle().Foreground(overlay).Padding(1, 0, 0, 0),
		Error:     lipgloss.NewStyle().Foreground(red).Bold(true),
		Success:   lipgloss.NewStyle().Foreground(green).Bold(true),
		Faint:     lipgloss.NewStyle().Foreground(overlay).Faint(true),
		Spinner:   lipgloss.NewStyle().Foreground(peach),
	}
}

// Light is the alternate theme for bright terminal backgrounds.
func Light() Theme {
	purple := lipgloss.Color("#8839EF")
	text := lipgloss.Color("#4C4F69")
	subtext := lipgloss.Color("#6C6F85")
	overlay := lipgloss.Color("#9CA0B0")
	surface := lipgloss.Color("#CCD0DA")
	green := lipgloss.Color("#40A02B")
	red := lipgloss.Color("#D20F39")
	peach := lipgloss.Color("#FE640B")

	return Theme{
		Name:    "light",
		Title:   lipgloss.NewStyle().Bold(true).Foreground(purple).Padding(1, 0, 0, 1),
		Tagline: lipgloss.NewStyle().Foreground(overlay).Italic(true).MarginLeft(1),
		Label:   lipgloss.NewStyle().Foreground(subtext),

		PostTitle:        lipgloss.NewStyle().Bold(true).Foreground(text),
		PostBody:         lipgloss.NewStyle().Foreground(subtext),
		SelectedBorder:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(purple).Padding(0, 1),
		UnselectedBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(surface).Padding(0, 1),

		Pill:       lipgloss.NewStyle().Foreground(subtext).Background(surface).Padding(0, 1),
		PillActive: lipgloss.NewStyle().Foreground(surface).Background(purple).Bold(true).Padding(0, 1),

		StatusBar: lipgloss.NewStyle().Foreground(overlay).Padding(1, 0, 0, 0),
		Error:     lipgloss.NewStyle().Foreground(red).Bold(true),
		Success:   lipgloss.NewStyle().Foreground(green).Bold(true),
		Faint:     lipgloss.NewStyle().Foreground(overlay).Faint(true),
		Spinner:   lipgloss.NewStyle().Foreground(peach),
	}
}

// ThemeByName returns the named theme, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return Light()
	}
	return Dark()
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t.Name == "dark" {
		return Light()
	}
	return Dark()
}
