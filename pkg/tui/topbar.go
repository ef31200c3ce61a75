package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nexusadmin/nexus-cli/pkg/models"
)

// renderTopbar draws the page heading with the active store badge on
// the right.
func renderTopbar(cfg *models.PanelConfig, active models.Store, route string, width int) string {
	pt := cfg.PageTitle(route)

	left := PageTitleStyle.Render(pt.Title) + "  " + PageDescStyle.Render(pt.Desc)
	right := lipgloss.NewStyle().Foreground(ProviderColor(active.Provider)).Render(active.Name) +
		DimStyle.Render(" · "+active.Domain)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		return left
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}
