package models

// StoreProvider identifies which commerce backend a store is connected to.
type StoreProvider string

const (
	ProviderShopify StoreProvider = "shopify"
	ProviderMedusa  StoreProvider = "medusa"
	ProviderCustom  StoreProvider = "custom"
)

// Providers lists all supported backends.
var Providers = []StoreProvider{ProviderShopify, ProviderMedusa, ProviderCustom}

// Store is one connected shop the admin panel can manage.
// ID and Provider are immutable once the store is known to the UI.
type Store struct {
	ID       string        `json:"id" yaml:"id"`
	Name     string        `json:"name" yaml:"name"`
	Provider StoreProvider `json:"provider" yaml:"provider"`
	Domain   string        `json:"domain" yaml:"domain"`
	Currency string        `json:"currency" yaml:"currency"`
	LogoURL  string        `json:"logoUrl,omitempty" yaml:"logo_url,omitempty"`
}

// StorePatch is a partial update to a store's editable fields.
// ID and Provider are deliberately not representable here.
type StorePatch struct {
	Name     *string
	Domain   *string
	Currency *string
	LogoURL  *string
}

// Apply returns a copy of s with every set field of the patch applied.
func (p StorePatch) Apply(s Store) Store {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Domain != nil {
		s.Domain = *p.Domain
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.LogoURL != nil {
		s.LogoURL = *p.LogoURL
	}
	return s
}

// Currency describes one selectable currency in the settings screen.
type Currency struct {
	Code  string
	Label string
}

// Currencies is the fixed list offered by the store profile form.
var Currencies = []Currency{
	{Code: "USD", Label: "US Dollar"},
	{Code: "EUR", Label: "Euro"},
	{Code: "GBP", Label: "British Pound"},
}

// ValidCurrency reports whether code is one of the selectable currencies.
func ValidCurrency(code string) bool {
	for _, c := range Currencies {
		if c.Code == code {
			return true
		}
	}
	return false
}
