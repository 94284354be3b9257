package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette (Catppuccin Mocha)
var (
	colorPrimary   = lipgloss.Color("#cba6f7") // Mauve
	colorSecondary = lipgloss.Color("#b4befe") // Lavender
	colorGreen     = lipgloss.Color("#a6e3a1")
	colorRed       = lipgloss.Color("#f38ba8")
	colorYellow    = lipgloss.Color("#f9e2af")
	colorText      = lipgloss.Color("#cdd6f4") // Text
	colorBase      = lipgloss.Color("#1e1e2e") // Base
	colorSubtext0  = lipgloss.Color("#a6adc8") // Subtext0
	colorSubtext1  = lipgloss.Color("#bac2de") // Subtext1
	colorSurface0  = lipgloss.Color("#313244")
	colorSurface2  = lipgloss.Color("#585b70") // Surface2
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	styleBody = lipgloss.NewStyle().
			Foreground(colorText)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleLabel = lipgloss.NewStyle().
			Foreground(colorSubtext1)

	styleLabelFocused = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true)

	styleChoice = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 2)

	styleChoiceSelected = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorPrimary).
				Bold(true).
				Padding(0, 2)

	styleListRow = lipgloss.NewStyle().
			Foreground(colorText)

	styleListRowSelected = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true)

	styleDone = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleOpen = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSidebar = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Padding(0, 1)

	styleSidebarActive = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Padding(0, 1)

	styleModalContainer = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorSecondary).
				Padding(1, 2)
)

// Hint bar styles
var (
	styleHintKey = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Bold(true)

	styleHintDesc = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	styleHintSeparator = lipgloss.NewStyle().
				Foreground(colorSurface2)
)

// renderHintBar renders a hint bar with the given key-description pairs.
// Example: renderHintBar("↑↓", "navigate", "enter", "select", "esc", "back")
// Returns: "↑↓ navigate • enter select • esc back"
func renderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	var result string
	for i := 0; i < len(pairs); i += 2 {
		key := pairs[i]
		desc := pairs[i+1]

		if i > 0 {
			result += " " + styleHintSeparator.Render("•") + " "
		}

		result += styleHintKey.Render(key) + " " + styleHintDesc.Render(desc)
	}

	return result
}
