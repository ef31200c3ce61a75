package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nexusadmin/nexus-cli/pkg/models"
)

// StatusMsg sets a transient message in the status bar.
type StatusMsg string

// NavigateMsg switches the content area to another route.
type NavigateMsg struct {
	Route string
}

// StoreSwitchedMsg is emitted after the active store changed so screens
// reload their data.
type StoreSwitchedMsg struct {
	Store models.Store
}

type productsLoadedMsg struct {
	products []models.Product
	err      error
}

type categoriesLoadedMsg struct {
	categories []models.Category
	err        error
}

type ordersLoadedMsg struct {
	orders []models.Order
	err    error
}

type customersLoadedMsg struct {
	customers []models.Customer
	err       error
}

type analyticsLoadedMsg struct {
	points []models.AnalyticsPoint
	kpis   models.KPIData
	err    error
}

type savedTickMsg struct{}

// savedTick ends the post-save confirmation after the display window.
func savedTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return savedTickMsg{}
	})
}

func statusCmd(s string) tea.Cmd {
	return func() tea.Msg { return StatusMsg(s) }
}
