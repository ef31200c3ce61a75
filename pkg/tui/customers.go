package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nexusadmin/nexus-cli/pkg/models"
)

// CustomersScreen lists customer profiles with segment and value metrics.
type CustomersScreen struct {
	deps
	table     *Table
	customers []models.Customer
	loading   bool
	err       error
}

func NewCustomersScreen(d deps) *CustomersScreen {
	return &CustomersScreen{
		deps: d,
		table: NewTable(
			Column{Title: "CUSTOMER", Width: 20},
			Column{Title: "EMAIL", Width: 26},
			Column{Title: "SEGMENT", Width: 8},
			Column{Title: "ORDERS", Width: 7},
			Column{Title: "LTV", Width: 10},
			Column{Title: "LOCATION", Width: 16},
		),
	}
}

func (s *CustomersScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	store := s.container.ActiveStore()
	source := s.source
	return func() tea.Msg {
		customers, err := source.Customers(context.Background(), store.ID)
		return customersLoadedMsg{customers: customers, err: err}
	}
}

func (s *CustomersScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case customersLoadedMsg:
		s.loading = false
		s.err = msg.err
		if msg.err != nil {
			return nil
		}
		store := s.container.ActiveStore()
		s.customers = msg.customers
		rows := make([][]string, 0, len(s.customers))
		for _, c := range s.customers {
			rows = append(rows, []string{
				c.Name,
				c.Email,
				string(c.Segment),
				fmt.Sprintf("%d", c.TotalOrders),
				fmtMoney(c.LifetimeValue, store.Currency),
				c.City + ", " + c.Country,
			})
		}
		s.table.SetRows(rows)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Up):
			s.table.MoveUp()
		case key.Matches(msg, s.keys.Down):
			s.table.MoveDown()
		}
	}
	return nil
}

func (s *CustomersScreen) View(width, height int) string {
	if s.loading {
		return DimStyle.Render("Loading customers…")
	}
	if s.err != nil {
		return ErrorStyle.Render("Could not load customers: " + s.err.Error())
	}
	s.table.SetHeight(height - 6)

	view := s.table.View()
	if c := s.table.Cursor(); c < len(s.customers) {
		cust := s.customers[c]
		store := s.container.ActiveStore()
		view += "\n\n" + DimStyle.Render(fmt.Sprintf(
			"avg order %s · last order %s · joined %s",
			fmtMoney(cust.AvgOrderValue, store.Currency),
			fmtDate(cust.LastOrderAt),
			fmtDate(cust.JoinedAt),
		))
	}
	return view
}
