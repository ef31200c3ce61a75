package models

// PanelConfig is the deployment configuration for the admin panel.
// It is read once at startup and never mutated; runtime changes to the
// store list or selection live in the state container instead.
type PanelConfig struct {
	Branding       PanelBranding        `yaml:"branding"`
	Admin          PanelAdmin           `yaml:"admin"`
	Metadata       PanelMetadata        `yaml:"metadata"`
	Stores         []Store              `yaml:"stores"`
	DefaultStoreID string               `yaml:"default_store_id"`
	Navigation     []NavEntry           `yaml:"navigation"`
	PageTitles     map[string]PageTitle `yaml:"page_titles"`
	UseMockData    bool                 `yaml:"use_mock_data"`
}

// PanelBranding is the client branding shown in the sidebar header.
type PanelBranding struct {
	AppName string `yaml:"app_name"`
	Tagline string `yaml:"tagline"`
}

// PanelAdmin is the admin user info shown in the sidebar footer.
type PanelAdmin struct {
	DisplayName string `yaml:"display_name"`
	Email       string `yaml:"email"`
	Initials    string `yaml:"initials"`
}

// PanelMetadata is used for the terminal window title and CLI descriptions.
type PanelMetadata struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// NavEntry is one sidebar navigation link.
type NavEntry struct {
	Route string `yaml:"route"`
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
}

// PageTitle is the topbar heading for a route.
type PageTitle struct {
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
}

// DefaultStore resolves DefaultStoreID against the store list. An unknown
// or empty id falls back to the first store rather than failing.
func (c *PanelConfig) DefaultStore() Store {
	for _, s := range c.Stores {
		if s.ID == c.DefaultStoreID {
			return s
		}
	}
	return c.Stores[0]
}

// PageTitle returns the heading for route, falling back to the route string.
func (c *PanelConfig) PageTitle(route string) PageTitle {
	if pt, ok := c.PageTitles[route]; ok {
		return pt
	}
	return PageTitle{Title: route}
}

// DefaultPanelConfig returns the built-in demo deployment.
func DefaultPanelConfig() *PanelConfig {
	return &PanelConfig{
		Branding: PanelBranding{
			AppName: "Nexus",
			Tagline: "Mission Control",
		},
		Admin: PanelAdmin{
			DisplayName: "Admin User",
			Email:       "admin@nexus.ai",
			Initials:    "NA",
		},
		Metadata: PanelMetadata{
			Title:       "Nexus – Universal eCommerce Admin",
			Description: "Mission Control for your eCommerce ecosystem. Manage Shopify, Medusa, and custom stores from one unified interface.",
		},
		Stores: []Store{
			{
				ID:       "shopify-1",
				Name:     "Nexus Store",
				Provider: ProviderShopify,
				Domain:   "nexus-store.myshopify.com",
				Currency: "USD",
			},
			{
				ID:       "medusa-1",
				Name:     "EU Warehouse",
				Provider: ProviderMedusa,
				Domain:   "eu.nexus-store.com",
				Currency: "EUR",
			},
			{
				ID:       "custom-1",
				Name:     "Wholesale Portal",
				Provider: ProviderCustom,
				Domain:   "wholesale.nexus-store.com",
				Currency: "USD",
			},
		},
		DefaultStoreID: "shopify-1",
		Navigation: []NavEntry{
			{Route: "/", Label: "Dashboard", Icon: "◆"},
			{Route: "/customers", Label: "Customers", Icon: "◉"},
			{Route: "/products", Label: "Products", Icon: "▣"},
			{Route: "/categories", Label: "Categories", Icon: "☰"},
			{Route: "/variants", Label: "Variants", Icon: "◫"},
			{Route: "/orders", Label: "Orders", Icon: "✎"},
			{Route: "/analytics", Label: "Analytics", Icon: "↗"},
			{Route: "/settings", Label: "Settings", Icon: "⚙"},
		},
		PageTitles: map[string]PageTitle{
			"/":           {Title: "Dashboard", Desc: "Overview of your store performance"},
			"/products":   {Title: "Products", Desc: "Manage your product catalog"},
			"/categories": {Title: "Categories", Desc: "Manage product categories"},
			"/variants":   {Title: "Variants", Desc: "Manage product variants and options"},
			"/orders":     {Title: "Orders", Desc: "Track and manage customer orders"},
			"/customers":  {Title: "Customers", Desc: "Customer profiles and management"},
			"/analytics":  {Title: "Analytics", Desc: "Revenue and performance insights"},
			"/settings":   {Title: "Settings", Desc: "Store configuration and preferences"},
		},
		UseMockData: true,
	}
}

// Normalize repairs a loaded config so the panel can always render:
// an empty store list or navigation falls back to the built-in defaults,
// and a dangling DefaultStoreID is repointed at the first store.
func (c *PanelConfig) Normalize() {
	def := DefaultPanelConfig()
	if len(c.Stores) == 0 {
		c.Stores = def.Stores
	}
	if len(c.Navigation) == 0 {
		c.Navigation = def.Navigation
	}
	if len(c.PageTitles) == 0 {
		c.PageTitles = def.PageTitles
	}
	if c.Branding.AppName == "" {
		c.Branding = def.Branding
	}
	found := false
	for _, s := range c.Stores {
		if s.ID == c.DefaultStoreID {
			found = true
			break
		}
	}
	if !found {
		c.DefaultStoreID = c.Stores[0].ID
	}
}
