package data

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nexusadmin/nexus-cli/pkg/models"
)

// MockSource generates a deterministic demo dataset per store. The same
// store id always yields the same records, so tables, analytics, and
// tests are stable across runs.
type MockSource struct {
	mu         sync.Mutex
	currencies map[string]string
	datasets   map[string]*dataset
}

type dataset struct {
	products  []models.Product
	orders    []models.Order
	customers []models.Customer
	analytics []models.AnalyticsPoint
}

// NewMockSource creates an empty source; datasets are generated lazily.
// The given stores supply each dataset's currency.
func NewMockSource(stores ...models.Store) *MockSource {
	currencies := make(map[string]string, len(stores))
	for _, s := range stores {
		currencies[s.ID] = s.Currency
	}
	return &MockSource{currencies: currencies, datasets: make(map[string]*dataset)}
}

func (m *MockSource) Products(_ context.Context, storeID string) ([]models.Product, error) {
	ds := m.dataset(storeID)
	return append([]models.Product(nil), ds.products...), nil
}

func (m *MockSource) Categories(_ context.Context, storeID string) ([]models.Category, error) {
	ds := m.dataset(storeID)

	counts := make(map[string]int)
	var order []string
	for _, p := range ds.products {
		if counts[p.Category] == 0 {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}

	categories := make([]models.Category, len(order))
	for i, name := range order {
		categories[i] = models.Category{
			ID:           mockID(storeID, "category", name),
			Name:         name,
			Slug:         slugify(name),
			ProductCount: counts[name],
			StoreID:      storeID,
		}
	}
	return categories, nil
}

func (m *MockSource) Orders(_ context.Context, storeID string) ([]models.Order, error) {
	ds := m.dataset(storeID)
	return append([]models.Order(nil), ds.orders...), nil
}

func (m *MockSource) Customers(_ context.Context, storeID string) ([]models.Customer, error) {
	ds := m.dataset(storeID)
	return append([]models.Customer(nil), ds.customers...), nil
}

func (m *MockSource) Analytics(_ context.Context, storeID string, days int) ([]models.AnalyticsPoint, error) {
	ds := m.dataset(storeID)
	if days <= 0 || days > len(ds.analytics) {
		days = len(ds.analytics)
	}
	points := ds.analytics[len(ds.analytics)-days:]
	return append([]models.AnalyticsPoint(nil), points...), nil
}

func (m *MockSource) KPIs(_ context.Context, storeID string) (models.KPIData, error) {
	ds := m.dataset(storeID)

	// Current period is the most recent 30 days, compared to the 30 before.
	half := len(ds.analytics) / 2
	previous, current := ds.analytics[:half], ds.analytics[half:]

	curRevenue, curOrders, curCustomers := sumPeriod(current)
	prevRevenue, prevOrders, prevCustomers := sumPeriod(previous)

	kpi := models.KPIData{
		TotalRevenue:    curRevenue,
		TotalOrders:     curOrders,
		TotalCustomers:  curCustomers,
		RevenueChange:   percentChange(prevRevenue, curRevenue),
		OrdersChange:    percentChange(decimal.NewFromInt(int64(prevOrders)), decimal.NewFromInt(int64(curOrders))),
		CustomersChange: percentChange(decimal.NewFromInt(int64(prevCustomers)), decimal.NewFromInt(int64(curCustomers))),
	}
	if curOrders > 0 {
		kpi.AvgOrderValue = curRevenue.Div(decimal.NewFromInt(int64(curOrders))).Round(2)
	}
	if prevOrders > 0 {
		prevAOV := prevRevenue.Div(decimal.NewFromInt(int64(prevOrders)))
		kpi.AOVChange = percentChange(prevAOV, kpi.AvgOrderValue)
	}
	return kpi, nil
}

func sumPeriod(points []models.AnalyticsPoint) (revenue decimal.Decimal, orders, customers int) {
	for _, p := range points {
		revenue = revenue.Add(p.Revenue)
		orders += p.Orders
		customers += p.Customers
	}
	return revenue, orders, customers
}

func percentChange(prev, cur decimal.Decimal) decimal.Decimal {
	if prev.IsZero() {
		return decimal.Zero
	}
	return cur.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Round(1)
}

func (m *MockSource) dataset(storeID string) *dataset {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ds, ok := m.datasets[storeID]; ok {
		return ds
	}
	ds := generateDataset(storeID, m.currencyFor(storeID))
	m.datasets[storeID] = ds
	return ds
}

func (m *MockSource) currencyFor(storeID string) string {
	if c, ok := m.currencies[storeID]; ok && c != "" {
		return c
	}
	return "USD"
}

// mockID derives a stable v5 UUID from the store id and record key.
func mockID(storeID, kind, key string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("nexus/"+storeID+"/"+kind+"/"+key)).String()
}

func slugify(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ' || r == '-':
			out = append(out, '-')
		}
	}
	return string(out)
}

var (
	productNames = []string{
		"Aurora Desk Lamp", "Drift Ceramic Mug", "Linen Throw Blanket", "Oak Serving Board",
		"Canvas Weekender", "Matte Water Bottle", "Wool Lounge Socks", "Brass Pour-Over Kettle",
		"Slate Coaster Set", "Field Notebook", "Juniper Candle", "Cedar Incense Kit",
	}
	productCategories = []string{"Lighting", "Kitchen", "Textiles", "Travel", "Stationery", "Home Fragrance"}
	vendors           = []string{"Northwind Goods", "Atelier Form", "Harbor Supply", "Meridian Works"}
	variantSizes      = []string{"Small", "Medium", "Large"}
	variantColors     = []string{"Charcoal", "Sand", "Forest"}
	customerNames     = []string{
		"Ava Thompson", "Liam Carter", "Maja Lindqvist", "Noah Fischer", "Emma Novak",
		"Lucas Moreau", "Sofia Rossi", "Oskar Jensen", "Isla Murphy", "Mateo Silva",
		"Hanna Virtanen", "Jonas Weber", "Clara Dubois", "Felix Bauer", "Nora Haugen",
	}
	cities = []struct{ city, country string }{
		{"Portland", "US"}, {"Austin", "US"}, {"Berlin", "DE"}, {"Amsterdam", "NL"},
		{"Copenhagen", "DK"}, {"Lyon", "FR"}, {"Milan", "IT"}, {"Dublin", "IE"},
	}
	segments = []models.CustomerSegment{
		models.SegmentVIP, models.SegmentLoyal, models.SegmentAtRisk,
		models.SegmentNew, models.SegmentLost,
	}
	orderStatuses = []models.OrderStatus{
		models.OrderPending, models.OrderProcessing, models.OrderFulfilled,
		models.OrderFulfilled, models.OrderFulfilled, models.OrderCancelled,
	}
)

func generateDataset(storeID, currency string) *dataset {
	h := fnv.New64a()
	h.Write([]byte(storeID))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	// Anchor times to a fixed date so datasets never drift between runs.
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	ds := &dataset{}
	ds.products = generateProducts(storeID, rng, now)
	ds.customers = generateCustomers(storeID, rng, now)
	ds.orders = generateOrders(storeID, currency, rng, now, ds.products, ds.customers)
	ds.analytics = generateAnalytics(rng, now)
	return ds
}

func generateProducts(storeID string, rng *rand.Rand, now time.Time) []models.Product {
	count := 8 + rng.Intn(3)
	products := make([]models.Product, 0, count)

	for i := 0; i < count; i++ {
		name := productNames[i%len(productNames)]
		base := decimal.NewFromInt(int64(18 + rng.Intn(90)))

		var variants []models.ProductVariant
		for v, size := range variantSizes[:1+rng.Intn(3)] {
			price := base.Add(decimal.NewFromInt(int64(v * 6)))
			variant := models.ProductVariant{
				ID:    mockID(storeID, "variant", fmt.Sprintf("%d-%d", i, v)),
				Title: size,
				SKU:   fmt.Sprintf("NX-%03d-%s", i+1, size[:1]),
				Price: price,
				Stock: rng.Intn(120),
				Options: map[string]string{
					"Size":  size,
					"Color": variantColors[v%len(variantColors)],
				},
			}
			if rng.Intn(4) == 0 {
				variant.CompareAtPrice = price.Add(decimal.NewFromInt(10))
			}
			if rng.Intn(5) == 0 {
				variant.Stock = rng.Intn(5) // occasional low stock
			}
			variants = append(variants, variant)
		}

		status := models.ProductActive
		if rng.Intn(6) == 0 {
			status = models.ProductDraft
		} else if rng.Intn(12) == 0 {
			status = models.ProductArchived
		}

		created := now.AddDate(0, 0, -(30 + rng.Intn(300)))
		products = append(products, models.Product{
			ID:          mockID(storeID, "product", fmt.Sprintf("%d", i)),
			Title:       name,
			Description: fmt.Sprintf("%s from %s. Part of the unified catalog demo dataset.", name, vendors[i%len(vendors)]),
			Vendor:      vendors[i%len(vendors)],
			Category:    productCategories[i%len(productCategories)],
			Status:      status,
			Variants:    variants,
			Tags:        []string{slugify(productCategories[i%len(productCategories)]), "demo"},
			CreatedAt:   created,
			UpdatedAt:   created.AddDate(0, 0, rng.Intn(30)),
			StoreID:     storeID,
		})
	}
	return products
}

func generateCustomers(storeID string, rng *rand.Rand, now time.Time) []models.Customer {
	count := 10 + rng.Intn(5)
	customers := make([]models.Customer, 0, count)

	for i := 0; i < count; i++ {
		name := customerNames[i%len(customerNames)]
		place := cities[rng.Intn(len(cities))]
		orders := 1 + rng.Intn(14)
		aov := decimal.NewFromInt(int64(25 + rng.Intn(110)))

		customers = append(customers, models.Customer{
			ID:            mockID(storeID, "customer", fmt.Sprintf("%d", i)),
			Name:          name,
			Email:         slugify(name) + "@example.com",
			Segment:       segments[rng.Intn(len(segments))],
			TotalOrders:   orders,
			AvgOrderValue: aov,
			LifetimeValue: aov.Mul(decimal.NewFromInt(int64(orders))),
			LastOrderAt:   now.AddDate(0, 0, -rng.Intn(90)),
			JoinedAt:      now.AddDate(0, 0, -(90 + rng.Intn(500))),
			City:          place.city,
			Country:       place.country,
			StoreID:       storeID,
		})
	}
	return customers
}

func generateOrders(storeID, currency string, rng *rand.Rand, now time.Time, products []models.Product, customers []models.Customer) []models.Order {
	count := 14 + rng.Intn(8)
	orders := make([]models.Order, 0, count)

	for i := 0; i < count; i++ {
		customer := customers[rng.Intn(len(customers))]
		place := cities[rng.Intn(len(cities))]

		var items []models.OrderLineItem
		subtotal := decimal.Zero
		for n := 0; n < 1+rng.Intn(3); n++ {
			p := products[rng.Intn(len(products))]
			v := p.Variants[rng.Intn(len(p.Variants))]
			qty := 1 + rng.Intn(3)
			total := v.Price.Mul(decimal.NewFromInt(int64(qty)))
			items = append(items, models.OrderLineItem{
				ProductID:    p.ID,
				ProductTitle: p.Title,
				VariantTitle: v.Title,
				Quantity:     qty,
				UnitPrice:    v.Price,
				TotalPrice:   total,
			})
			subtotal = subtotal.Add(total)
		}

		shipping := decimal.NewFromInt(int64(5 + rng.Intn(10)))
		tax := subtotal.Mul(decimal.NewFromFloat(0.08)).Round(2)
		status := orderStatuses[rng.Intn(len(orderStatuses))]

		fulfillment := models.FulfillmentNone
		payment := models.PaymentPending
		switch status {
		case models.OrderFulfilled:
			fulfillment = models.FulfillmentDone
			payment = models.PaymentPaid
		case models.OrderProcessing:
			fulfillment = models.FulfillmentPartial
			payment = models.PaymentPaid
		case models.OrderRefunded:
			payment = models.PaymentRefunded
		}

		created := now.AddDate(0, 0, -rng.Intn(60))
		orders = append(orders, models.Order{
			ID:                mockID(storeID, "order", fmt.Sprintf("%d", i)),
			OrderNumber:       fmt.Sprintf("#%d", 1000+i),
			Status:            status,
			FulfillmentStatus: fulfillment,
			PaymentStatus:     payment,
			Customer: models.OrderCustomer{
				ID:    customer.ID,
				Name:  customer.Name,
				Email: customer.Email,
			},
			LineItems:       items,
			Subtotal:        subtotal,
			ShippingCost:    shipping,
			Tax:             tax,
			Total:           subtotal.Add(shipping).Add(tax),
			Currency:        currency,
			ShippingAddress: models.ShippingAddress{City: place.city, Country: place.country, Zip: fmt.Sprintf("%05d", 10000+rng.Intn(89999))},
			CreatedAt:       created,
			UpdatedAt:       created.Add(6 * time.Hour),
			StoreID:         storeID,
		})
	}
	return orders
}

func generateAnalytics(rng *rand.Rand, now time.Time) []models.AnalyticsPoint {
	const days = 60
	points := make([]models.AnalyticsPoint, 0, days)

	base := 400 + rng.Intn(600)
	for d := days - 1; d >= 0; d-- {
		// Gentle upward trend with weekend dips.
		date := now.AddDate(0, 0, -d)
		trend := (days - d) * 3
		weekend := 0
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekend = -120
		}
		revenue := base + trend + weekend + rng.Intn(150)
		if revenue < 50 {
			revenue = 50
		}

		points = append(points, models.AnalyticsPoint{
			Date:      date,
			Revenue:   decimal.NewFromInt(int64(revenue)),
			Orders:    revenue / 60,
			Customers: revenue / 150,
		})
	}
	return points
}
