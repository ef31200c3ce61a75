// Package notify delivers desktop alerts for store events, honoring the
// notification toggles from the settings screen.
package notify

import (
	"fmt"
	"strings"

	"github.com/gen2brain/beeep"

	"github.com/nexusadmin/nexus-cli/pkg/state"
)

// EventType classifies a store alert.
type EventType string

const (
	EventNewOrder    EventType = "new_order"
	EventLowStock    EventType = "low_stock"
	EventNewCustomer EventType = "new_customer"
)

// Event is one alert to deliver.
type Event struct {
	Type      EventType
	StoreName string
	Title     string
	Message   string
}

// Dispatcher sends events through the desktop notification channel. The
// send function is swappable for tests.
type Dispatcher struct {
	send func(title, message string) error
}

// NewDispatcher creates a dispatcher backed by the OS notification daemon.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		send: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// Dispatch delivers the event if its type is enabled in prefs. Delivery
// failures are ignored: alerts are advisory and must never disturb the UI.
func (d *Dispatcher) Dispatch(prefs state.NotificationPrefs, event Event) {
	if !enabled(prefs, event.Type) {
		return
	}

	title := strings.TrimSpace(event.Title)
	if title == "" {
		title = event.StoreName
	}
	if title == "" {
		title = "Nexus"
	}

	message := strings.TrimSpace(event.Message)
	if message == "" {
		message = string(event.Type)
	}
	if len(message) > 400 {
		message = message[:400] + "..."
	}

	_ = d.send(title, message)
}

func enabled(prefs state.NotificationPrefs, t EventType) bool {
	switch t {
	case EventNewOrder:
		return prefs.NewOrders
	case EventLowStock:
		return prefs.LowStock
	case EventNewCustomer:
		return prefs.NewCustomers
	}
	return false
}

// LowStockMessage formats the standard low stock alert body.
func LowStockMessage(count int) string {
	if count == 1 {
		return "1 variant is below the stock threshold"
	}
	return fmt.Sprintf("%d variants are below the stock threshold", count)
}
