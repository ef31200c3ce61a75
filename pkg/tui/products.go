package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// ProductsScreen lists the active store's catalog with a variant drill-in.
type ProductsScreen struct {
	deps
	table    *Table
	products []productRow
	detail   int // index into products shown in the detail pane, -1 when closed
	loading  bool
	err      error
}

type productRow struct {
	id       string
	title    string
	vendor   string
	category string
	status   string
	stock    int
	desc     string
	variants []variantRow
	priceLow string
}

func NewProductsScreen(d deps) *ProductsScreen {
	return &ProductsScreen{
		deps:   d,
		detail: -1,
		table: NewTable(
			Column{Title: "PRODUCT", Width: 28},
			Column{Title: "CATEGORY", Width: 14},
			Column{Title: "VENDOR", Width: 18},
			Column{Title: "PRICE", Width: 10},
			Column{Title: "STOCK", Width: 6},
			Column{Title: "STATUS", Width: 9},
		),
	}
}

func (s *ProductsScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	s.detail = -1
	store := s.container.ActiveStore()
	source := s.source
	return func() tea.Msg {
		products, err := source.Products(context.Background(), store.ID)
		return productsLoadedMsg{products: products, err: err}
	}
}

func (s *ProductsScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		s.loading = false
		s.err = msg.err
		if msg.err != nil {
			return nil
		}
		store := s.container.ActiveStore()
		s.products = s.products[:0]
		rows := make([][]string, 0, len(msg.products))
		for _, p := range msg.products {
			low, _ := p.PriceRange()
			row := productRow{
				id:       p.ID,
				title:    p.Title,
				vendor:   p.Vendor,
				category: p.Category,
				status:   string(p.Status),
				stock:    p.TotalStock(),
				desc:     p.Description,
				priceLow: fmtMoney(low, store.Currency),
			}
			for _, v := range p.Variants {
				row.variants = append(row.variants, variantRow{
					product: p.Title,
					title:   v.Title,
					sku:     v.SKU,
					price:   fmtMoney(v.Price, store.Currency),
					stock:   v.Stock,
				})
			}
			s.products = append(s.products, row)
			rows = append(rows, []string{
				p.Title, p.Category, p.Vendor, row.priceLow,
				fmt.Sprintf("%d", row.stock), row.status,
			})
		}
		s.table.SetRows(rows)

	case tea.KeyMsg:
		if s.detail >= 0 {
			if key.Matches(msg, s.keys.Back) || key.Matches(msg, s.keys.Enter) {
				s.detail = -1
			}
			return nil
		}
		switch {
		case key.Matches(msg, s.keys.Up):
			s.table.MoveUp()
		case key.Matches(msg, s.keys.Down):
			s.table.MoveDown()
		case key.Matches(msg, s.keys.Enter):
			if s.table.Len() > 0 {
				s.detail = s.table.Cursor()
			}
		case key.Matches(msg, s.keys.Copy):
			if s.table.Cursor() < len(s.products) {
				p := s.products[s.table.Cursor()]
				if len(p.variants) > 0 {
					if err := clipboard.WriteAll(p.variants[0].sku); err == nil {
						return statusCmd("Copied SKU " + p.variants[0].sku)
					}
				}
			}
		}
	}
	return nil
}

func (s *ProductsScreen) View(width, height int) string {
	if s.loading {
		return DimStyle.Render("Loading products…")
	}
	if s.err != nil {
		return ErrorStyle.Render("Could not load products: " + s.err.Error())
	}
	if s.detail >= 0 && s.detail < len(s.products) {
		return s.detailView(width)
	}
	s.table.SetHeight(height - 4)
	return s.table.View()
}

func (s *ProductsScreen) detailView(width int) string {
	p := s.products[s.detail]

	var b strings.Builder
	b.WriteString(PageTitleStyle.Render(p.title) + "\n")
	b.WriteString(DimStyle.Render(p.vendor+" · "+p.category+" · "+p.status) + "\n\n")

	wrapWidth := width - 8
	if wrapWidth < 20 {
		wrapWidth = 20
	}
	b.WriteString(NormalStyle.Render(wordwrap.String(p.desc, wrapWidth)) + "\n\n")

	b.WriteString(TableHeaderStyle.Render(pad("VARIANT", 12)+"  "+pad("SKU", 12)+"  "+pad("PRICE", 10)+"  "+pad("STOCK", 6)) + "\n")
	for _, v := range p.variants {
		line := pad(v.title, 12) + "  " + pad(v.sku, 12) + "  " + pad(v.price, 10) + "  " + pad(fmt.Sprintf("%d", v.stock), 6)
		if v.stock < lowStockThreshold {
			b.WriteString(WarningStyle.Render(line) + "\n")
		} else {
			b.WriteString(NormalStyle.Render(line) + "\n")
		}
	}
	b.WriteString("\n" + DimStyle.Render("esc to close"))

	return OverlayStyle.Render(lipgloss.NewStyle().MaxWidth(width - 4).Render(b.String()))
}
