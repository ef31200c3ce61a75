package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nexusadmin/nexus-cli/pkg/data"
	"github.com/nexusadmin/nexus-cli/pkg/models"
	"github.com/nexusadmin/nexus-cli/pkg/notify"
	"github.com/nexusadmin/nexus-cli/pkg/state"
)

func newTestApp() *App {
	cfg := models.DefaultPanelConfig()
	container := state.New(cfg, nil)
	return NewApp(cfg, container, data.NewSource(cfg), notify.NewDispatcher())
}

func TestAppCycleStoreOrder(t *testing.T) {
	a := newTestApp()
	stores := a.container.Stores()

	for i := 1; i <= len(stores); i++ {
		cmd := a.cycleStore()
		if cmd == nil {
			t.Fatal("cycleStore should return a command")
		}
		msg, ok := cmd().(StoreSwitchedMsg)
		if !ok {
			t.Fatalf("command produced %T, want StoreSwitchedMsg", cmd())
		}

		want := stores[i%len(stores)].ID
		if msg.Store.ID != want {
			t.Errorf("cycle %d switched to %q, want %q", i, msg.Store.ID, want)
		}
		if a.container.ActiveStore().ID != want {
			t.Errorf("cycle %d container active = %q, want %q", i, a.container.ActiveStore().ID, want)
		}
	}
}

func TestAppNavigateUnknownRouteIgnored(t *testing.T) {
	a := newTestApp()

	a.Update(NavigateMsg{Route: "/nope"})
	if a.route != "/" {
		t.Errorf("route = %q, want unchanged /", a.route)
	}
}

func TestAppNavigateByMsg(t *testing.T) {
	a := newTestApp()

	a.Update(NavigateMsg{Route: "/orders"})
	if a.route != "/orders" {
		t.Errorf("route = %q, want /orders", a.route)
	}
}

func TestAppDigitNavigation(t *testing.T) {
	a := newTestApp()

	// "3" is the third navigation entry.
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	if cmd == nil {
		t.Fatal("digit key should return a navigation command")
	}
	msg, ok := cmd().(NavigateMsg)
	if !ok {
		t.Fatalf("command produced %T, want NavigateMsg", cmd())
	}
	if want := a.cfg.Navigation[2].Route; msg.Route != want {
		t.Errorf("digit 3 navigates to %q, want %q", msg.Route, want)
	}
}

func TestAppSidebarToggleKey(t *testing.T) {
	a := newTestApp()

	a.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	if !a.container.State().SidebarCollapsed {
		t.Error("ctrl+b should collapse the sidebar")
	}
	a.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	if a.container.State().SidebarCollapsed {
		t.Error("second ctrl+b should expand the sidebar")
	}
}

func TestAppCommandBarKeyOpensOverlay(t *testing.T) {
	a := newTestApp()

	a.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	if !a.container.State().CommandBarOpen {
		t.Error("ctrl+k should open the command bar")
	}

	// While open, keys are routed to the bar; esc closes it.
	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if a.container.State().CommandBarOpen {
		t.Error("esc should close the command bar")
	}
}
