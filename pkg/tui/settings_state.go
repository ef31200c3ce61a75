package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nexusadmin/nexus-cli/pkg/models"
	"github.com/nexusadmin/nexus-cli/pkg/state"
)

// savedDisplayDuration is how long the "Saved" confirmation stays up.
const savedDisplayDuration = 2 * time.Second

type settingsFocus int

const (
	focusName settingsFocus = iota
	focusDomain
	focusCurrency
	focusNotifyOrders
	focusNotifyStock
	focusNotifyCustomers
	focusFieldCount
)

// SettingsScreen edits the active store's profile through a FormBuffer
// plus the notification toggles. The buffer is the arbiter between user
// edits, store switches, and rehydration; this screen only routes events
// into it.
type SettingsScreen struct {
	deps
	form        *state.FormBuffer
	nameInput   textinput.Model
	domainInput textinput.Model
	currencyIdx int
	focus       settingsFocus
}

func NewSettingsScreen(d deps) *SettingsScreen {
	s := &SettingsScreen{
		deps:        d,
		nameInput:   textinput.New(),
		domainInput: textinput.New(),
	}
	s.nameInput.Placeholder = "Store name"
	s.nameInput.CharLimit = 80
	s.nameInput.Width = 40
	s.domainInput.Placeholder = "store.example.com"
	s.domainInput.CharLimit = 255
	s.domainInput.Width = 40
	return s
}

func (s *SettingsScreen) Init() tea.Cmd {
	s.form = state.NewFormBuffer(s.container.ActiveStore())
	s.focus = focusName
	s.mirrorForm()
	s.updateFocus()
	return nil
}

// mirrorForm pushes the buffer's values into the input widgets.
func (s *SettingsScreen) mirrorForm() {
	s.nameInput.SetValue(s.form.Name())
	s.domainInput.SetValue(s.form.Domain())
	s.currencyIdx = 0
	for i, c := range models.Currencies {
		if c.Code == s.form.Currency() {
			s.currencyIdx = i
			break
		}
	}
}

func (s *SettingsScreen) updateFocus() {
	s.nameInput.Blur()
	s.domainInput.Blur()
	switch s.focus {
	case focusName:
		s.nameInput.Focus()
	case focusDomain:
		s.domainInput.Focus()
	}
}

// syncStore reconciles the form with the store now active. The buffer
// decides whether the update is a switch, a rehydration, or suppressed
// by pending edits.
func (s *SettingsScreen) syncStore(store models.Store) {
	s.form.Sync(store)
	if !s.form.Dirty() {
		s.mirrorForm()
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case StoreSwitchedMsg:
		s.syncStore(msg.Store)
		return nil

	case savedTickMsg:
		s.form.ClearSaved()
		return nil

	case tea.KeyMsg:
		// Letters must reach a focused text field before the bindings
		// run: j and k double as Down and Up outside the inputs.
		if msg.Type == tea.KeyRunes {
			switch s.focus {
			case focusName:
				return s.editName(msg)
			case focusDomain:
				return s.editDomain(msg)
			}
		}

		switch {
		case key.Matches(msg, s.keys.Down), key.Matches(msg, s.keys.NextScreen):
			s.focus = (s.focus + 1) % focusFieldCount
			s.updateFocus()
			return nil

		case key.Matches(msg, s.keys.Up):
			s.focus = (s.focus - 1 + focusFieldCount) % focusFieldCount
			s.updateFocus()
			return nil

		case key.Matches(msg, s.keys.Save):
			return s.save()

		case key.Matches(msg, s.keys.Back):
			if s.form.Dirty() {
				s.form.Cancel()
				s.mirrorForm()
				return statusCmd("Changes discarded")
			}
			return nil
		}

		switch s.focus {
		case focusCurrency:
			switch msg.String() {
			case "left", "h":
				s.currencyIdx = (s.currencyIdx - 1 + len(models.Currencies)) % len(models.Currencies)
				s.form.SetCurrency(models.Currencies[s.currencyIdx].Code)
			case "right", "l", " ", "enter":
				s.currencyIdx = (s.currencyIdx + 1) % len(models.Currencies)
				s.form.SetCurrency(models.Currencies[s.currencyIdx].Code)
			}
			return nil

		case focusNotifyOrders, focusNotifyStock, focusNotifyCustomers:
			if msg.String() == " " || msg.String() == "enter" {
				s.togglePref()
			}
			return nil

		case focusName:
			return s.editName(msg)

		case focusDomain:
			return s.editDomain(msg)
		}
	}
	return nil
}

func (s *SettingsScreen) editName(msg tea.Msg) tea.Cmd {
	before := s.nameInput.Value()
	var cmd tea.Cmd
	s.nameInput, cmd = s.nameInput.Update(msg)
	if s.nameInput.Value() != before {
		s.form.SetName(s.nameInput.Value())
	}
	return cmd
}

func (s *SettingsScreen) editDomain(msg tea.Msg) tea.Cmd {
	before := s.domainInput.Value()
	var cmd tea.Cmd
	s.domainInput, cmd = s.domainInput.Update(msg)
	if s.domainInput.Value() != before {
		s.form.SetDomain(s.domainInput.Value())
	}
	return cmd
}

// save commits pending edits through the single mutation entry point.
func (s *SettingsScreen) save() tea.Cmd {
	if !s.form.Dirty() {
		return statusCmd("Nothing to save")
	}

	patch := s.form.Save()
	s.container.UpdateStore(s.form.StoreID(), patch)
	// Blank fields fell back to their previous values; show the result.
	s.mirrorForm()

	return tea.Batch(
		statusCmd("Store profile saved"),
		savedTick(savedDisplayDuration),
	)
}

// togglePref flips the focused notification toggle. Unlike the profile
// fields these commit immediately, no save step.
func (s *SettingsScreen) togglePref() {
	prefs := s.container.State().Notifications
	switch s.focus {
	case focusNotifyOrders:
		prefs.NewOrders = !prefs.NewOrders
	case focusNotifyStock:
		prefs.LowStock = !prefs.LowStock
	case focusNotifyCustomers:
		prefs.NewCustomers = !prefs.NewCustomers
	}
	s.container.SetNotificationPrefs(prefs)
}
