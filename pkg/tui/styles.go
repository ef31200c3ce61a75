package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nexusadmin/nexus-cli/pkg/models"
)

// Color constants
const (
	ColorAccent   = "62"  // Indigo for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray background for selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorWarning  = "214" // Orange for warnings / low stock
	ColorDanger   = "196" // Red for cancelled/refunded
	ColorSuccess  = "35"  // Green for fulfilled/paid/saved
	ColorWhite    = "255"
	ColorDark     = "235"
	ColorShopify  = "35"  // Emerald accent
	ColorMedusa   = "99"  // Violet accent
	ColorCustom   = "214" // Amber accent
)

var (
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccent))

	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	PageTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWhite))

	PageDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccent)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorDim))

	SidebarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(lipgloss.Color(ColorInactive)).
			PaddingLeft(1).
			PaddingRight(1)

	NavActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccent))

	NavNormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim)).
			PaddingLeft(1)

	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorAccent)).
			Padding(1, 2)

	KPICardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorInactive)).
			Padding(0, 2)

	SavedBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorSuccess))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger))

	FieldLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDim))
)

// ProviderColor returns the accent color for a store's backend.
func ProviderColor(p models.StoreProvider) lipgloss.Color {
	switch p {
	case models.ProviderShopify:
		return lipgloss.Color(ColorShopify)
	case models.ProviderMedusa:
		return lipgloss.Color(ColorMedusa)
	default:
		return lipgloss.Color(ColorCustom)
	}
}

// ProviderBadge renders the provider name in its accent color.
func ProviderBadge(p models.StoreProvider) string {
	return lipgloss.NewStyle().
		Foreground(ProviderColor(p)).
		Render(string(p))
}

// StatusColor maps order status to a display color.
func StatusColor(s models.OrderStatus) lipgloss.Color {
	switch s {
	case models.OrderFulfilled:
		return lipgloss.Color(ColorSuccess)
	case models.OrderCancelled, models.OrderRefunded:
		return lipgloss.Color(ColorDanger)
	case models.OrderProcessing:
		return lipgloss.Color(ColorAccent)
	default:
		return lipgloss.Color(ColorWarning)
	}
}
