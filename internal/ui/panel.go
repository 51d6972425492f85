package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PanelColors are the lipgloss colors of the summary panel.
type PanelColors struct {
	Border  lipgloss.TerminalColor
	Title   lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
}

var (
	// DarkPanelColors matches DarkTheme.
	DarkPanelColors = PanelColors{
		Border:  lipgloss.Color("39"),
		Title:   lipgloss.Color("141"),
		Success: lipgloss.Color("82"),
		Error:   lipgloss.Color("196"),
	}

	// LightPanelColors matches LightTheme.
	LightPanelColors = PanelColors{
		Border:  lipgloss.Color("27"),
		Title:   lipgloss.Color("54"),
		Success: lipgloss.Color("28"),
		Error:   lipgloss.Color("124"),
	}

	// NoColorPanelColors renders with the terminal's default colors.
	NoColorPanelColors = PanelColors{
		Border:  lipgloss.NoColor{},
		Title:   lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
	}
)

// GetCurrentPanelColors returns the panel colors matching the active theme.
func GetCurrentPanelColors() PanelColors {
	switch GetCurrentTheme().Name {
	case "none":
		return NoColorPanelColors
	case "light":
		return LightPanelColors
	default:
		return DarkPanelColors
	}
}

// Panel renders title and lines inside a rounded border. ok selects the
// success or error color for the title.
func Panel(title string, lines []string, ok bool) string {
	colors := GetCurrentPanelColors()
	titleColor := colors.Success
	if !ok {
		titleColor = colors.Error
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(titleColor)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colors.Border).
		Padding(0, 1)

	body := titleStyle.Render(title)
	if len(lines) > 0 {
		body += "\n" + strings.Join(lines, "\n")
	}
	return box.Render(body)
}
