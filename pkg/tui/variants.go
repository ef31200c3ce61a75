package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// VariantsScreen flattens every product variant into one table, the
// quickest way to spot low stock across the catalog.
type VariantsScreen struct {
	deps
	table    *Table
	lowStock int
	loading  bool
	err      error
}

type variantRow struct {
	product string
	title   string
	sku     string
	price   string
	stock   int
}

func NewVariantsScreen(d deps) *VariantsScreen {
	return &VariantsScreen{
		deps: d,
		table: NewTable(
			Column{Title: "PRODUCT", Width: 26},
			Column{Title: "VARIANT", Width: 10},
			Column{Title: "SKU", Width: 12},
			Column{Title: "PRICE", Width: 10},
			Column{Title: "STOCK", Width: 6},
		),
	}
}

func (s *VariantsScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	store := s.container.ActiveStore()
	source := s.source
	return func() tea.Msg {
		products, err := source.Products(context.Background(), store.ID)
		return productsLoadedMsg{products: products, err: err}
	}
}

func (s *VariantsScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		s.loading = false
		s.err = msg.err
		if msg.err != nil {
			return nil
		}
		store := s.container.ActiveStore()
		s.lowStock = 0
		var rows [][]string
		for _, p := range msg.products {
			for _, v := range p.Variants {
				if v.Stock < lowStockThreshold {
					s.lowStock++
				}
				rows = append(rows, []string{
					p.Title, v.Title, v.SKU,
					fmtMoney(v.Price, store.Currency),
					fmt.Sprintf("%d", v.Stock),
				})
			}
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

func (s *VariantsScreen) View(width, height int) string {
	if s.loading {
		return DimStyle.Render("Loading variants…")
	}
	if s.err != nil {
		return ErrorStyle.Render("Could not load variants: " + s.err.Error())
	}
	s.table.SetHeight(height - 6)

	view := s.table.View()
	if s.lowStock > 0 {
		view += "\n\n" + WarningStyle.Render(fmt.Sprintf("⚠ %d variants below stock threshold", s.lowStock))
	}
	return view
}
