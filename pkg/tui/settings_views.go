package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nexusadmin/nexus-cli/pkg/models"
	"github.com/nexusadmin/nexus-cli/pkg/state"
)

func (s *SettingsScreen) View(width, height int) string {
	st := s.container.State()

	var b strings.Builder

	b.WriteString(FieldLabelStyle.Render("STORE PROFILE"))
	if s.form.Phase() == state.FormSaved {
		b.WriteString("  " + SavedBadgeStyle.Render("✓ Saved"))
	} else if s.form.Dirty() {
		b.WriteString("  " + WarningStyle.Render("● unsaved changes"))
	}
	b.WriteString("\n\n")

	b.WriteString(s.fieldLabel("Store Name", focusName) + "\n")
	b.WriteString("  " + s.nameInput.View() + "\n")
	b.WriteString(s.fieldLabel("Domain", focusDomain) + "\n")
	b.WriteString("  " + s.domainInput.View() + "\n")
	b.WriteString(s.fieldLabel("Currency", focusCurrency) + "\n")
	b.WriteString("  " + s.currencyView() + "\n\n")

	b.WriteString(FieldLabelStyle.Render("NOTIFICATIONS") + "\n")
	b.WriteString(s.toggleView("New Order Alerts", st.Notifications.NewOrders, focusNotifyOrders) + "\n")
	b.WriteString(s.toggleView("Low Stock Warnings", st.Notifications.LowStock, focusNotifyStock) + "\n")
	b.WriteString(s.toggleView("New Customer Registrations", st.Notifications.NewCustomers, focusNotifyCustomers) + "\n\n")

	b.WriteString(FieldLabelStyle.Render("CONNECTED STORES") + "\n")
	for _, store := range st.Stores {
		marker := "  "
		if store.ID == st.ActiveStoreID {
			marker = NavActiveStyle.Render("▸ ")
		}
		b.WriteString(marker + NormalStyle.Render(pad(store.Name, 22)) +
			DimStyle.Render(pad(store.Domain, 30)) + ProviderBadge(store.Provider) + "\n")
	}

	b.WriteString("\n" + DimStyle.Render("↑/↓ move · ctrl+d save · esc discard"))
	return b.String()
}

func (s *SettingsScreen) fieldLabel(label string, f settingsFocus) string {
	if s.focus == f {
		return NavActiveStyle.Render("▸ " + label)
	}
	return FieldLabelStyle.Render("  " + label)
}

func (s *SettingsScreen) currencyView() string {
	var parts []string
	for i, c := range models.Currencies {
		label := c.Code + " – " + c.Label
		if i == s.currencyIdx {
			style := NormalStyle
			if s.focus == focusCurrency {
				style = SelectedStyle
			}
			parts = append(parts, style.Render("["+label+"]"))
		} else {
			parts = append(parts, DimStyle.Render(" "+c.Code+" "))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (s *SettingsScreen) toggleView(label string, on bool, f settingsFocus) string {
	box := DimStyle.Render("[ ]")
	if on {
		box = SavedBadgeStyle.Render("[✓]")
	}
	text := NormalStyle.Render(label)
	if s.focus == f {
		return NavActiveStyle.Render("▸ ") + box + " " + text
	}
	return "  " + box + " " + text
}
