package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Column describes one table column.
type Column struct {
	Title string
	Width int
}

// Table is the shared scrolling table used by the list screens. It keeps
// a cursor and a visible window; rows are plain cell strings, styling is
// applied at render time.
type Table struct {
	columns []Column
	rows    [][]string
	cursor  int
	offset  int
	height  int
}

// NewTable creates a table with the given columns.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns, height: 10}
}

// SetRows replaces the rows, clamping the cursor into range.
func (t *Table) SetRows(rows [][]string) {
	t.rows = rows
	if t.cursor >= len(rows) {
		t.cursor = len(rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
	t.scrollIntoView()
}

// SetHeight sets how many rows are visible at once.
func (t *Table) SetHeight(h int) {
	if h < 1 {
		h = 1
	}
	t.height = h
	t.scrollIntoView()
}

// Len returns the row count.
func (t *Table) Len() int { return len(t.rows) }

// Cursor returns the selected row index.
func (t *Table) Cursor() int { return t.cursor }

// SelectedRow returns the selected row's cells, or nil when empty.
func (t *Table) SelectedRow() []string {
	if t.cursor < 0 || t.cursor >= len(t.rows) {
		return nil
	}
	return t.rows[t.cursor]
}

// MoveUp moves the cursor up one row.
func (t *Table) MoveUp() {
	if t.cursor > 0 {
		t.cursor--
	}
	t.scrollIntoView()
}

// MoveDown moves the cursor down one row.
func (t *Table) MoveDown() {
	if t.cursor < len(t.rows)-1 {
		t.cursor++
	}
	t.scrollIntoView()
}

func (t *Table) scrollIntoView() {
	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if t.cursor >= t.offset+t.height {
		t.offset = t.cursor - t.height + 1
	}
	if t.offset < 0 {
		t.offset = 0
	}
}

func (t *Table) renderCells(cells []string) string {
	var b strings.Builder
	for i, col := range t.columns {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(pad(cell, col.Width))
		if i < len(t.columns)-1 {
			b.WriteString("  ")
		}
	}
	return b.String()
}

// View renders the header and the visible row window.
func (t *Table) View() string {
	var lines []string

	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.Title
	}
	lines = append(lines, TableHeaderStyle.Render(t.renderCells(headers)))

	if len(t.rows) == 0 {
		lines = append(lines, DimStyle.Render("  No records for this store"))
		return strings.Join(lines, "\n")
	}

	end := t.offset + t.height
	if end > len(t.rows) {
		end = len(t.rows)
	}
	for i := t.offset; i < end; i++ {
		line := t.renderCells(t.rows[i])
		if i == t.cursor {
			lines = append(lines, SelectedStyle.Render(line))
		} else {
			lines = append(lines, NormalStyle.Render(line))
		}
	}

	if len(t.rows) > t.height {
		lines = append(lines, DimStyle.Render(fmt.Sprintf("  %d/%d", t.cursor+1, len(t.rows))))
	}
	return strings.Join(lines, "\n")
}

// pad truncates or right-pads s to the given display width.
func pad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w > width {
		return runewidth.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-w)
}
