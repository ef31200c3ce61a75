package data

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nexusadmin/nexus-cli/pkg/models"
)

func TestMockSourceIsDeterministic(t *testing.T) {
	ctx := context.Background()

	a, err := NewMockSource().Products(ctx, "shopify-1")
	if err != nil {
		t.Fatalf("Products failed: %v", err)
	}
	b, err := NewMockSource().Products(ctx, "shopify-1")
	if err != nil {
		t.Fatalf("Products failed: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("product counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Title != b[i].Title || !a[i].Variants[0].Price.Equal(b[i].Variants[0].Price) {
			t.Errorf("product %d differs between sources", i)
		}
	}
}

func TestMockSourceScopesByStore(t *testing.T) {
	ctx := context.Background()
	src := NewMockSource()

	for _, storeID := range []string{"shopify-1", "medusa-1"} {
		products, err := src.Products(ctx, storeID)
		if err != nil {
			t.Fatalf("Products(%s) failed: %v", storeID, err)
		}
		if len(products) == 0 {
			t.Fatalf("no products for %s", storeID)
		}
		for _, p := range products {
			if p.StoreID != storeID {
				t.Errorf("product %s has store %s, want %s", p.Title, p.StoreID, storeID)
			}
		}
	}

	a, _ := src.Products(ctx, "shopify-1")
	b, _ := src.Products(ctx, "medusa-1")
	if a[0].ID == b[0].ID {
		t.Error("different stores share record ids")
	}
}

func TestOrderTotalsAddUp(t *testing.T) {
	src := NewMockSource()
	orders, err := src.Orders(context.Background(), "shopify-1")
	if err != nil {
		t.Fatalf("Orders failed: %v", err)
	}
	if len(orders) == 0 {
		t.Fatal("no orders generated")
	}

	for _, o := range orders {
		itemSum := decimal.Zero
		for _, li := range o.LineItems {
			want := li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
			if !li.TotalPrice.Equal(want) {
				t.Errorf("order %s line total %s != %s", o.OrderNumber, li.TotalPrice, want)
			}
			itemSum = itemSum.Add(li.TotalPrice)
		}
		if !o.Subtotal.Equal(itemSum) {
			t.Errorf("order %s subtotal %s != line sum %s", o.OrderNumber, o.Subtotal, itemSum)
		}
		want := o.Subtotal.Add(o.ShippingCost).Add(o.Tax)
		if !o.Total.Equal(want) {
			t.Errorf("order %s total %s != %s", o.OrderNumber, o.Total, want)
		}
	}
}

func TestOrdersUseStoreCurrency(t *testing.T) {
	ctx := context.Background()
	src := NewMockSource(
		models.Store{ID: "medusa-1", Currency: "EUR"},
		models.Store{ID: "shopify-1", Currency: "USD"},
	)

	tests := []struct {
		storeID string
		want    string
	}{
		{"medusa-1", "EUR"},
		{"shopify-1", "USD"},
		{"unknown-store", "USD"}, // no config entry falls back
	}

	for _, tt := range tests {
		t.Run(tt.storeID, func(t *testing.T) {
			orders, err := src.Orders(ctx, tt.storeID)
			if err != nil {
				t.Fatalf("Orders failed: %v", err)
			}
			for _, o := range orders {
				if o.Currency != tt.want {
					t.Errorf("order %s currency = %q, want %q", o.OrderNumber, o.Currency, tt.want)
				}
			}
		})
	}
}

func TestNewSourceCarriesConfigCurrencies(t *testing.T) {
	cfg := models.DefaultPanelConfig()
	src := NewSource(cfg)

	orders, err := src.Orders(context.Background(), "medusa-1")
	if err != nil {
		t.Fatalf("Orders failed: %v", err)
	}
	for _, o := range orders {
		if o.Currency != "EUR" {
			t.Errorf("order %s currency = %q, want the store's EUR", o.OrderNumber, o.Currency)
		}
	}
}

func TestCategoriesCoverProducts(t *testing.T) {
	src := NewMockSource()
	ctx := context.Background()

	products, _ := src.Products(ctx, "custom-1")
	categories, err := src.Categories(ctx, "custom-1")
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}

	counted := 0
	for _, c := range categories {
		if c.ProductCount == 0 {
			t.Errorf("category %s has no products", c.Name)
		}
		if c.Slug == "" {
			t.Errorf("category %s has empty slug", c.Name)
		}
		counted += c.ProductCount
	}
	if counted != len(products) {
		t.Errorf("category counts %d != product count %d", counted, len(products))
	}
}

func TestAnalyticsWindowing(t *testing.T) {
	src := NewMockSource()
	ctx := context.Background()

	full, err := src.Analytics(ctx, "shopify-1", 0)
	if err != nil {
		t.Fatalf("Analytics failed: %v", err)
	}
	if len(full) != 60 {
		t.Fatalf("expected 60-day series, got %d", len(full))
	}

	month, err := src.Analytics(ctx, "shopify-1", 30)
	if err != nil {
		t.Fatalf("Analytics failed: %v", err)
	}
	if len(month) != 30 {
		t.Fatalf("expected 30 points, got %d", len(month))
	}
	if !month[len(month)-1].Date.Equal(full[len(full)-1].Date) {
		t.Error("window should end at the most recent point")
	}
	for i := 1; i < len(month); i++ {
		if !month[i].Date.After(month[i-1].Date) {
			t.Error("series not in ascending date order")
		}
	}
}

func TestKPIsMatchAnalytics(t *testing.T) {
	src := NewMockSource()
	ctx := context.Background()

	kpi, err := src.KPIs(ctx, "medusa-1")
	if err != nil {
		t.Fatalf("KPIs failed: %v", err)
	}

	recent, _ := src.Analytics(ctx, "medusa-1", 30)
	revenue := decimal.Zero
	orders := 0
	for _, p := range recent {
		revenue = revenue.Add(p.Revenue)
		orders += p.Orders
	}

	if !kpi.TotalRevenue.Equal(revenue) {
		t.Errorf("KPI revenue %s != series sum %s", kpi.TotalRevenue, revenue)
	}
	if kpi.TotalOrders != orders {
		t.Errorf("KPI orders %d != series sum %d", kpi.TotalOrders, orders)
	}
	if orders > 0 {
		wantAOV := revenue.Div(decimal.NewFromInt(int64(orders))).Round(2)
		if !kpi.AvgOrderValue.Equal(wantAOV) {
			t.Errorf("KPI AOV %s != %s", kpi.AvgOrderValue, wantAOV)
		}
	}
}

func TestLiveSourceNotConfigured(t *testing.T) {
	cfg := models.DefaultPanelConfig()
	cfg.UseMockData = false
	src := NewSource(cfg)

	if _, err := src.Products(context.Background(), "shopify-1"); err != ErrLiveDataUnavailable {
		t.Errorf("expected ErrLiveDataUnavailable, got %v", err)
	}
}

func TestNewSourceSelectsMock(t *testing.T) {
	cfg := models.DefaultPanelConfig()
	if _, ok := NewSource(cfg).(*MockSource); !ok {
		t.Error("UseMockData should select the mock source")
	}
}
