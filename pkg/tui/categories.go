package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// CategoriesScreen lists product categories with their product counts.
type CategoriesScreen struct {
	deps
	table   *Table
	loading bool
	err     error
}

func NewCategoriesScreen(d deps) *CategoriesScreen {
	return &CategoriesScreen{
		deps: d,
		table: NewTable(
			Column{Title: "CATEGORY", Width: 24},
			Column{Title: "SLUG", Width: 24},
			Column{Title: "PRODUCTS", Width: 9},
		),
	}
}

func (s *CategoriesScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	store := s.container.ActiveStore()
	source := s.source
	return func() tea.Msg {
		categories, err := source.Categories(context.Background(), store.ID)
		return categoriesLoadedMsg{categories: categories, err: err}
	}
}

func (s *CategoriesScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		s.loading = false
		s.err = msg.err
		if msg.err != nil {
			return nil
		}
		rows := make([][]string, 0, len(msg.categories))
		for _, c := range msg.categories {
			rows = append(rows, []string{c.Name, c.Slug, fmt.Sprintf("%d", c.ProductCount)})
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

func (s *CategoriesScreen) View(width, height int) string {
	if s.loading {
		return DimStyle.Render("Loading categories…")
	}
	if s.err != nil {
		return ErrorStyle.Render("Could not load categories: " + s.err.Error())
	}
	s.table.SetHeight(height - 4)
	return s.table.View()
}
