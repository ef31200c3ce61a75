package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/nexusadmin/nexus-cli/pkg/models"
	"github.com/nexusadmin/nexus-cli/pkg/notify"
)

// lowStockThreshold marks a variant as running out.
const lowStockThreshold = 5

// DashboardScreen shows headline KPIs and the latest orders. Loading it
// also runs the low stock check that feeds desktop alerts.
type DashboardScreen struct {
	deps
	spinner spinner.Model
	kpis    models.KPIData
	orders  []models.Order
	loading bool
	err     error
}

type dashboardLoadedMsg struct {
	kpis     models.KPIData
	orders   []models.Order
	lowStock int
	err      error
}

func NewDashboardScreen(d deps) *DashboardScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &DashboardScreen{deps: d, spinner: sp}
}

func (s *DashboardScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	store := s.container.ActiveStore()
	source := s.source
	return tea.Batch(s.spinner.Tick, func() tea.Msg {
		ctx := context.Background()

		kpis, err := source.KPIs(ctx, store.ID)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		orders, err := source.Orders(ctx, store.ID)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		sortOrdersNewestFirst(orders)
		if len(orders) > 5 {
			orders = orders[:5]
		}

		lowStock := 0
		if products, err := source.Products(ctx, store.ID); err == nil {
			for _, p := range products {
				for _, v := range p.Variants {
					if v.Stock < lowStockThreshold {
						lowStock++
					}
				}
			}
		}

		return dashboardLoadedMsg{kpis: kpis, orders: orders, lowStock: lowStock}
	})
}

func (s *DashboardScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		s.loading = false
		s.err = msg.err
		if msg.err != nil {
			return nil
		}
		s.kpis = msg.kpis
		s.orders = msg.orders
		if msg.lowStock > 0 && s.notifier != nil {
			store := s.container.ActiveStore()
			prefs := s.container.State().Notifications
			lowStock := msg.lowStock
			notifier := s.notifier
			return func() tea.Msg {
				notifier.Dispatch(prefs, notify.Event{
					Type:      notify.EventLowStock,
					StoreName: store.Name,
					Title:     store.Name + " – Low stock",
					Message:   notify.LowStockMessage(lowStock),
				})
				return nil
			}
		}

	case spinner.TickMsg:
		if s.loading {
			var cmd tea.Cmd
			s.spinner, cmd = s.spinner.Update(msg)
			return cmd
		}
	}
	return nil
}

func (s *DashboardScreen) View(width, height int) string {
	if s.loading {
		return s.spinner.View() + DimStyle.Render(" Loading dashboard…")
	}
	if s.err != nil {
		return ErrorStyle.Render("Could not load dashboard: " + s.err.Error())
	}

	store := s.container.ActiveStore()

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		kpiCard("Revenue (30d)", fmtMoney(s.kpis.TotalRevenue, store.Currency), s.kpis.RevenueChange),
		kpiCard("Orders", fmt.Sprintf("%d", s.kpis.TotalOrders), s.kpis.OrdersChange),
		kpiCard("Customers", fmt.Sprintf("%d", s.kpis.TotalCustomers), s.kpis.CustomersChange),
		kpiCard("Avg Order", fmtMoney(s.kpis.AvgOrderValue, store.Currency), s.kpis.AOVChange),
	)

	var b strings.Builder
	b.WriteString(cards + "\n\n")
	b.WriteString(TableHeaderStyle.Render("RECENT ORDERS") + "\n")
	if len(s.orders) == 0 {
		b.WriteString(DimStyle.Render("  No orders yet"))
	}
	for _, o := range s.orders {
		status := lipgloss.NewStyle().Foreground(StatusColor(o.Status)).Render(pad(string(o.Status), 11))
		b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n",
			NormalStyle.Render(pad(o.OrderNumber, 7)),
			NormalStyle.Render(pad(o.Customer.Name, 20)),
			status,
			DimStyle.Render(fmtMoney(o.Total, o.Currency)),
		))
	}
	return b.String()
}

func kpiCard(label, value string, change decimal.Decimal) string {
	delta := fmtChange(change)
	deltaStyle := SavedBadgeStyle
	if change.Sign() < 0 {
		deltaStyle = ErrorStyle
	}
	content := FieldLabelStyle.Render(label) + "\n" +
		PageTitleStyle.Render(value) + " " + deltaStyle.Render(delta)
	return KPICardStyle.Render(content)
}
