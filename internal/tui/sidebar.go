package tui

import (
	"fmt"
	"strings"

	"github.com/steuerpilot/steuerpilot/internal/wizard"
)

// SidebarWidth is the fixed width of the category sidebar.
const SidebarWidth = 26

// renderSidebar lists the categories with per-category progress. The category
// of the active screen is highlighted.
func renderSidebar(e *wizard.Engine, activeCategory string) string {
	var rows []string
	rows = append(rows, styleSubtitle.Render("Kategorien"))
	rows = append(rows, "")

	for _, cat := range e.Registry().Categories() {
		done, total := e.CategoryProgress(cat.Name)
		marker := " "
		style := styleSidebar
		if cat.Name == activeCategory {
			marker = "▸"
			style = styleSidebarActive
		}
		count := fmt.Sprintf("%d/%d", done, total)
		countStyle := styleOpen
		if total > 0 && done == total {
			countStyle = styleDone
		}
		rows = append(rows, style.Render(marker+" "+cat.Title)+" "+countStyle.Render(count))
	}

	return strings.Join(rows, "\n")
}
