package models

import "testing"

func strptr(s string) *string { return &s }

func TestStorePatchApply(t *testing.T) {
	base := Store{
		ID:       "shopify-1",
		Name:     "Nexus Store",
		Provider: ProviderShopify,
		Domain:   "nexus-store.myshopify.com",
		Currency: "USD",
	}

	tests := []struct {
		name  string
		patch StorePatch
		want  Store
	}{
		{
			"empty patch changes nothing",
			StorePatch{},
			base,
		},
		{
			"single field",
			StorePatch{Name: strptr("Nexus HQ")},
			Store{ID: "shopify-1", Name: "Nexus HQ", Provider: ProviderShopify, Domain: "nexus-store.myshopify.com", Currency: "USD"},
		},
		{
			"all editable fields",
			StorePatch{Name: strptr("N"), Domain: strptr("d.com"), Currency: strptr("EUR"), LogoURL: strptr("https://cdn/x.png")},
			Store{ID: "shopify-1", Name: "N", Provider: ProviderShopify, Domain: "d.com", Currency: "EUR", LogoURL: "https://cdn/x.png"},
		},
		{
			"explicit empty string is applied",
			StorePatch{LogoURL: strptr("")},
			base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.patch.Apply(base)
			if got != tt.want {
				t.Errorf("Apply() = %+v, want %+v", got, tt.want)
			}
			// Apply is by value, the input must be untouched.
			if base.Name != "Nexus Store" {
				t.Error("Apply mutated its input")
			}
		})
	}
}

func TestValidCurrency(t *testing.T) {
	for _, c := range Currencies {
		if !ValidCurrency(c.Code) {
			t.Errorf("listed currency %s rejected", c.Code)
		}
	}
	for _, code := range []string{"", "usd", "JPY"} {
		if ValidCurrency(code) {
			t.Errorf("unexpected currency %q accepted", code)
		}
	}
}

func TestPanelConfigDefaultStore(t *testing.T) {
	cfg := DefaultPanelConfig()

	if got := cfg.DefaultStore().ID; got != "shopify-1" {
		t.Errorf("expected configured default, got %s", got)
	}

	cfg.DefaultStoreID = "unknown"
	if got := cfg.DefaultStore().ID; got != "shopify-1" {
		t.Errorf("expected first-store fallback, got %s", got)
	}
}

func TestPanelConfigNormalize(t *testing.T) {
	cfg := &PanelConfig{DefaultStoreID: "ghost"}
	cfg.Normalize()

	if len(cfg.Stores) == 0 {
		t.Fatal("empty store list not repaired")
	}
	if cfg.DefaultStoreID != cfg.Stores[0].ID {
		t.Errorf("dangling default not repointed: %s", cfg.DefaultStoreID)
	}
	if len(cfg.Navigation) == 0 || len(cfg.PageTitles) == 0 {
		t.Error("navigation defaults not filled in")
	}
}

func TestProductHelpers(t *testing.T) {
	p := Product{Variants: []ProductVariant{
		{Price: mustDecimal(t, "29"), Stock: 4},
		{Price: mustDecimal(t, "35"), Stock: 10},
		{Price: mustDecimal(t, "19"), Stock: 0},
	}}

	if got := p.TotalStock(); got != 14 {
		t.Errorf("TotalStock = %d, want 14", got)
	}
	min, max := p.PriceRange()
	if min.String() != "19" || max.String() != "35" {
		t.Errorf("PriceRange = %s..%s, want 19..35", min, max)
	}
}
