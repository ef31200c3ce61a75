package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nexusadmin/nexus-cli/pkg/data"
	"github.com/nexusadmin/nexus-cli/pkg/models"
	"github.com/nexusadmin/nexus-cli/pkg/notify"
	"github.com/nexusadmin/nexus-cli/pkg/state"
)

const routeSettings = "/settings"

// deps are the collaborators shared by every screen. The state container
// is injected here once at bootstrap; no screen reaches for a global.
type deps struct {
	cfg       *models.PanelConfig
	container *state.Container
	source    data.Source
	notifier  *notify.Dispatcher
	keys      KeyMap
}

// Screen is one content area of the panel.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}

// App is the root bubbletea model: sidebar, topbar, active screen, and
// the command bar overlay.
type App struct {
	deps
	route      string
	screens    map[string]Screen
	commandBar *CommandBar
	statusMsg  string
	width      int
	height     int
}

// NewApp wires the panel together around the injected collaborators.
func NewApp(cfg *models.PanelConfig, container *state.Container, source data.Source, notifier *notify.Dispatcher) *App {
	d := deps{
		cfg:       cfg,
		container: container,
		source:    source,
		notifier:  notifier,
		keys:      DefaultKeyMap(),
	}

	screens := map[string]Screen{
		"/":           NewDashboardScreen(d),
		"/products":   NewProductsScreen(d),
		"/categories": NewCategoriesScreen(d),
		"/variants":   NewVariantsScreen(d),
		"/orders":     NewOrdersScreen(d),
		"/customers":  NewCustomersScreen(d),
		"/analytics":  NewAnalyticsScreen(d),
		routeSettings: NewSettingsScreen(d),
	}

	return &App{
		deps:       d,
		route:      "/",
		screens:    screens,
		commandBar: NewCommandBar(d),
	}
}

func (a *App) current() Screen {
	if s, ok := a.screens[a.route]; ok {
		return s
	}
	return a.screens["/"]
}

func (a *App) Init() tea.Cmd {
	return a.current().Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case NavigateMsg:
		if _, ok := a.screens[msg.Route]; ok {
			a.route = msg.Route
			return a, a.current().Init()
		}
		return a, nil

	case StoreSwitchedMsg:
		a.statusMsg = "Active store: " + msg.Store.Name
		// The settings form reconciles through its buffer; data screens
		// just reload against the new store.
		if a.route == routeSettings {
			return a, a.current().Update(msg)
		}
		return a, a.current().Init()

	case tea.KeyMsg:
		if a.container.State().CommandBarOpen {
			return a, a.commandBar.Update(msg)
		}

		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, a.keys.CommandBar):
			a.commandBar.Open()
			return a, nil

		case key.Matches(msg, a.keys.Sidebar):
			a.container.ToggleSidebar()
			return a, nil

		case key.Matches(msg, a.keys.NextStore):
			return a, a.cycleStore()
		}

		// Digits jump straight to a navigation entry.
		if n, err := strconv.Atoi(msg.String()); err == nil && a.route != routeSettings {
			if n >= 1 && n <= len(a.cfg.Navigation) {
				route := a.cfg.Navigation[n-1].Route
				return a, func() tea.Msg { return NavigateMsg{Route: route} }
			}
		}
	}

	return a, a.current().Update(msg)
}

// cycleStore activates the next store in the list.
func (a *App) cycleStore() tea.Cmd {
	st := a.container.State()
	if len(st.Stores) < 2 {
		return nil
	}
	idx := 0
	for i, s := range st.Stores {
		if s.ID == st.ActiveStoreID {
			idx = i
			break
		}
	}
	next := st.Stores[(idx+1)%len(st.Stores)]
	a.container.SetActiveStore(next.ID)

	store := a.container.ActiveStore()
	return func() tea.Msg { return StoreSwitchedMsg{Store: store} }
}

func (a *App) View() string {
	if a.width == 0 {
		return "Loading…"
	}

	st := a.container.State()

	sidebar := renderSidebar(a.deps, st, a.route, a.height-1)
	sideW := lipgloss.Width(sidebar)
	contentWidth := a.width - sideW - 2

	topbar := renderTopbar(a.cfg, st.ActiveStore, a.route, contentWidth)

	contentHeight := a.height - 5
	var content string
	if st.CommandBarOpen {
		content = lipgloss.Place(contentWidth, contentHeight, lipgloss.Center, lipgloss.Center,
			a.commandBar.View(contentWidth))
	} else {
		content = a.current().View(contentWidth, contentHeight)
	}

	main := lipgloss.JoinVertical(lipgloss.Left,
		topbar,
		"",
		content,
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " "+main)

	status := a.statusMsg
	if status == "" {
		status = "ctrl+k command bar · ctrl+b sidebar · ctrl+s switch store · ctrl+c quit"
	}
	return body + "\n" + StatusBarStyle.Render(status)
}
