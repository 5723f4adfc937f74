package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the styles for table rendering. Cells are padded before
// styling so ANSI sequences never disturb column alignment.
type Theme struct {
	Name    string
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Country lipgloss.Style
	Gold    lipgloss.Style
	Silver  lipgloss.Style
	Bronze  lipgloss.Style
}

// DefaultTheme returns the colored theme for interactive terminals.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Country: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		Gold:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")), // gold
		Silver:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")), // silver
		Bronze:  lipgloss.NewStyle().Foreground(lipgloss.Color("173")), // bronze
	}
}

// MonoTheme returns an unstyled theme; its output is plain text, suitable
// for pipes and files.
func MonoTheme() Theme {
	return Theme{
		Name:    "mono",
		Bold:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Country: lipgloss.NewStyle(),
		Gold:    lipgloss.NewStyle(),
		Silver:  lipgloss.NewStyle(),
		Bronze:  lipgloss.NewStyle(),
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	if name == "mono" {
		return MonoTheme()
	}
	return DefaultTheme()
}
