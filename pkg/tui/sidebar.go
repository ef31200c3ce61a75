package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nexusadmin/nexus-cli/pkg/state"
)

const (
	sidebarWidth          = 24
	sidebarCollapsedWidth = 5
)

// renderSidebar draws the navigation column: branding, store switcher,
// nav links, and the admin footer. Collapsed mode shows icons only.
func renderSidebar(d deps, st state.State, activeRoute string, height int) string {
	collapsed := st.SidebarCollapsed

	var b strings.Builder

	if collapsed {
		b.WriteString(AppTitleStyle.Render(initialsOf(d.cfg.Branding.AppName)) + "\n\n")
	} else {
		b.WriteString(AppTitleStyle.Render(d.cfg.Branding.AppName) + "\n")
		b.WriteString(TaglineStyle.Render(d.cfg.Branding.Tagline) + "\n\n")
	}

	// Store switcher
	active := st.ActiveStore
	if collapsed {
		b.WriteString(lipgloss.NewStyle().Foreground(ProviderColor(active.Provider)).Render("◈") + "\n\n")
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(ProviderColor(active.Provider)).Bold(true).Render("◈ "+active.Name) + "\n")
		b.WriteString(DimStyle.Render("  "+string(active.Provider)+" · ctrl+s to switch") + "\n\n")
	}

	for _, nav := range d.cfg.Navigation {
		style := NavNormalStyle
		marker := "  "
		if nav.Route == activeRoute {
			style = NavActiveStyle
			marker = "▸ "
		}
		if collapsed {
			b.WriteString(style.Render(nav.Icon) + "\n")
		} else {
			b.WriteString(style.Render(marker+nav.Icon+" "+nav.Label) + "\n")
		}
	}

	if !collapsed {
		b.WriteString("\n" + DimStyle.Render(d.cfg.Admin.Initials+" · "+d.cfg.Admin.DisplayName) + "\n")
		b.WriteString(DimStyle.Render(d.cfg.Admin.Email) + "\n")
	}

	width := sidebarWidth
	if collapsed {
		width = sidebarCollapsedWidth
	}
	return SidebarStyle.Width(width).Height(height).Render(b.String())
}

// initialsOf reduces a name to its leading letters, max two.
func initialsOf(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		if len(runes) > 0 {
			out = append(out, runes[0])
		}
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
