package tui

import (
	"context"
	"fmt"
	"sort"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nexusadmin/nexus-cli/pkg/models"
)

// OrdersScreen lists the active store's orders newest first.
type OrdersScreen struct {
	deps
	table   *Table
	orders  []models.Order
	loading bool
	err     error
}

func NewOrdersScreen(d deps) *OrdersScreen {
	return &OrdersScreen{
		deps: d,
		table: NewTable(
			Column{Title: "ORDER", Width: 7},
			Column{Title: "CUSTOMER", Width: 20},
			Column{Title: "STATUS", Width: 11},
			Column{Title: "PAYMENT", Width: 10},
			Column{Title: "ITEMS", Width: 6},
			Column{Title: "TOTAL", Width: 10},
			Column{Title: "PLACED", Width: 13},
		),
	}
}

func (s *OrdersScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	store := s.container.ActiveStore()
	source := s.source
	return func() tea.Msg {
		orders, err := source.Orders(context.Background(), store.ID)
		return ordersLoadedMsg{orders: orders, err: err}
	}
}

func (s *OrdersScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ordersLoadedMsg:
		s.loading = false
		s.err = msg.err
		if msg.err != nil {
			return nil
		}
		s.orders = msg.orders
		sortOrdersNewestFirst(s.orders)
		rows := make([][]string, 0, len(s.orders))
		for _, o := range s.orders {
			rows = append(rows, []string{
				o.OrderNumber,
				o.Customer.Name,
				string(o.Status),
				string(o.PaymentStatus),
				fmt.Sprintf("%d", len(o.LineItems)),
				fmtMoney(o.Total, o.Currency),
				fmtDate(o.CreatedAt),
			})
		}
		s.table.SetRows(rows)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Up):
			s.table.MoveUp()
		case key.Matches(msg, s.keys.Down):
			s.table.MoveDown()
		case key.Matches(msg, s.keys.Copy):
			if c := s.table.Cursor(); c < len(s.orders) {
				if err := clipboard.WriteAll(s.orders[c].OrderNumber); err == nil {
					return statusCmd("Copied order " + s.orders[c].OrderNumber)
				}
			}
		}
	}
	return nil
}

func sortOrdersNewestFirst(orders []models.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

func (s *OrdersScreen) View(width, height int) string {
	if s.loading {
		return DimStyle.Render("Loading orders…")
	}
	if s.err != nil {
		return ErrorStyle.Render("Could not load orders: " + s.err.Error())
	}
	s.table.SetHeight(height - 6)

	view := s.table.View()
	if c := s.table.Cursor(); c < len(s.orders) {
		o := s.orders[c]
		summary := fmt.Sprintf("%s · %s, %s · subtotal %s · shipping %s · tax %s",
			o.Customer.Email,
			o.ShippingAddress.City, o.ShippingAddress.Country,
			fmtMoney(o.Subtotal, o.Currency),
			fmtMoney(o.ShippingCost, o.Currency),
			fmtMoney(o.Tax, o.Currency),
		)
		status := lipgloss.NewStyle().Foreground(StatusColor(o.Status)).Render(string(o.FulfillmentStatus))
		view += "\n\n" + DimStyle.Render(summary) + "  " + status
	}
	return view
}
