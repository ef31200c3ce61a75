// Package data supplies catalog, order, customer, and analytics records
// to the panel screens. Every provider is mapped into the unified model
// types, so screens never branch on the store's backend.
package data

import (
	"context"
	"errors"

	"github.com/nexusadmin/nexus-cli/pkg/models"
)

// ErrLiveDataUnavailable is returned by the live source: real provider
// API synchronization is not wired up, deployments run with mock data.
var ErrLiveDataUnavailable = errors.New("live provider data source is not configured")

// Source supplies unified records scoped to one store.
type Source interface {
	Products(ctx context.Context, storeID string) ([]models.Product, error)
	Categories(ctx context.Context, storeID string) ([]models.Category, error)
	Orders(ctx context.Context, storeID string) ([]models.Order, error)
	Customers(ctx context.Context, storeID string) ([]models.Customer, error)
	Analytics(ctx context.Context, storeID string, days int) ([]models.AnalyticsPoint, error)
	KPIs(ctx context.Context, storeID string) (models.KPIData, error)
}

// NewSource selects the data source for the deployment. UseMockData is
// the only supported mode today; the live source exists so screens
// already handle its errors.
func NewSource(cfg *models.PanelConfig) Source {
	if cfg.UseMockData {
		return NewMockSource(cfg.Stores...)
	}
	return liveSource{}
}

// liveSource is the placeholder for real provider adapters.
type liveSource struct{}

func (liveSource) Products(context.Context, string) ([]models.Product, error) {
	return nil, ErrLiveDataUnavailable
}

func (liveSource) Categories(context.Context, string) ([]models.Category, error) {
	return nil, ErrLiveDataUnavailable
}

func (liveSource) Orders(context.Context, string) ([]models.Order, error) {
	return nil, ErrLiveDataUnavailable
}

func (liveSource) Customers(context.Context, string) ([]models.Customer, error) {
	return nil, ErrLiveDataUnavailable
}

func (liveSource) Analytics(context.Context, string, int) ([]models.AnalyticsPoint, error) {
	return nil, ErrLiveDataUnavailable
}

func (liveSource) KPIs(context.Context, string) (models.KPIData, error) {
	return models.KPIData{}, ErrLiveDataUnavailable
}
