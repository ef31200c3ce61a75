package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nexusadmin/nexus-cli/pkg/models"
)

// commandEntry is one action in the command bar: either a navigation
// target or a store switch.
type commandEntry struct {
	label   string
	route   string
	storeID string
}

// commandEntries builds the full action list: every navigation link plus
// a switch action per connected store.
func commandEntries(navigation []models.NavEntry, stores []models.Store) []commandEntry {
	entries := make([]commandEntry, 0, len(navigation)+len(stores))
	for _, nav := range navigation {
		entries = append(entries, commandEntry{
			label: "Go to " + nav.Label,
			route: nav.Route,
		})
	}
	for _, s := range stores {
		entries = append(entries, commandEntry{
			label:   "Switch to " + s.Name,
			storeID: s.ID,
		})
	}
	return entries
}

// filterEntries keeps entries whose label contains the query,
// case-insensitive. An empty query keeps everything.
func filterEntries(entries []commandEntry, query string) []commandEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return entries
	}
	var out []commandEntry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.label), query) {
			out = append(out, e)
		}
	}
	return out
}

// CommandBar is the ctrl+k overlay. Its open flag lives in the state
// container (ephemeral, never persisted); this model owns only the
// query text and cursor.
type CommandBar struct {
	deps
	input    textinput.Model
	entries  []commandEntry
	filtered []commandEntry
	cursor   int
}

func NewCommandBar(d deps) *CommandBar {
	input := textinput.New()
	input.Placeholder = "Type a command…"
	input.CharLimit = 60
	input.Width = 40
	return &CommandBar{deps: d, input: input}
}

// Open resets the query and flags the overlay open in the container.
func (c *CommandBar) Open() {
	c.entries = commandEntries(c.cfg.Navigation, c.container.Stores())
	c.filtered = c.entries
	c.cursor = 0
	c.input.SetValue("")
	c.input.Focus()
	c.container.SetCommandBarOpen(true)
}

// Close flags the overlay closed.
func (c *CommandBar) Close() {
	c.input.Blur()
	c.container.SetCommandBarOpen(false)
}

// Update handles keys while the overlay is open. Enter executes the
// selected action and returns the command the app should run.
func (c *CommandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, c.keys.Back):
		c.Close()
		return nil

	case key.Matches(msg, c.keys.Up):
		if c.cursor > 0 {
			c.cursor--
		}
		return nil

	case key.Matches(msg, c.keys.Down):
		if c.cursor < len(c.filtered)-1 {
			c.cursor++
		}
		return nil

	case key.Matches(msg, c.keys.Enter):
		if c.cursor >= len(c.filtered) {
			return nil
		}
		entry := c.filtered[c.cursor]
		c.Close()
		if entry.storeID != "" {
			c.container.SetActiveStore(entry.storeID)
			store := c.container.ActiveStore()
			return func() tea.Msg { return StoreSwitchedMsg{Store: store} }
		}
		route := entry.route
		return func() tea.Msg { return NavigateMsg{Route: route} }
	}

	before := c.input.Value()
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	if c.input.Value() != before {
		c.filtered = filterEntries(c.entries, c.input.Value())
		c.cursor = 0
	}
	return cmd
}

func (c *CommandBar) View(width int) string {
	var b strings.Builder
	b.WriteString(c.input.View() + "\n\n")

	shown := c.filtered
	if len(shown) > 8 {
		shown = shown[:8]
	}
	if len(shown) == 0 {
		b.WriteString(DimStyle.Render("No matching commands"))
	}
	for i, e := range shown {
		if i == c.cursor {
			b.WriteString(SelectedStyle.Render("▸ "+e.label) + "\n")
		} else {
			b.WriteString(NormalStyle.Render("  "+e.label) + "\n")
		}
	}
	return OverlayStyle.Width(min(width-4, 50)).Render(b.String())
}
