package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unified catalog/commerce types. Records from every provider are mapped
// into these shapes so the panel renders them identically.

type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductDraft    ProductStatus = "draft"
	ProductArchived ProductStatus = "archived"
)

type ProductVariant struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	SKU            string            `json:"sku"`
	Price          decimal.Decimal   `json:"price"`
	CompareAtPrice decimal.Decimal   `json:"compareAtPrice,omitempty"`
	Stock          int               `json:"stock"`
	Options        map[string]string `json:"options,omitempty"`
}

type Product struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Vendor      string           `json:"vendor"`
	Category    string           `json:"category"`
	Status      ProductStatus    `json:"status"`
	ImageURL    string           `json:"imageUrl,omitempty"`
	Variants    []ProductVariant `json:"variants"`
	Tags        []string         `json:"tags,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	StoreID     string           `json:"storeId"`
}

// TotalStock sums stock across all variants.
func (p Product) TotalStock() int {
	total := 0
	for _, v := range p.Variants {
		total += v.Stock
	}
	return total
}

// PriceRange returns the lowest and highest variant price.
func (p Product) PriceRange() (min, max decimal.Decimal) {
	for i, v := range p.Variants {
		if i == 0 || v.Price.LessThan(min) {
			min = v.Price
		}
		if v.Price.GreaterThan(max) {
			max = v.Price
		}
	}
	return min, max
}

type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProductCount int    `json:"productCount"`
	StoreID      string `json:"storeId"`
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderFulfilled  OrderStatus = "fulfilled"
	OrderCancelled  OrderStatus = "cancelled"
	OrderRefunded   OrderStatus = "refunded"
)

type FulfillmentStatus string

const (
	FulfillmentNone    FulfillmentStatus = "unfulfilled"
	FulfillmentPartial FulfillmentStatus = "partial"
	FulfillmentDone    FulfillmentStatus = "fulfilled"
)

type PaymentStatus string

const (
	PaymentPending           PaymentStatus = "pending"
	PaymentPaid              PaymentStatus = "paid"
	PaymentRefunded          PaymentStatus = "refunded"
	PaymentPartiallyRefunded PaymentStatus = "partially_refunded"
)

type OrderLineItem struct {
	ProductID    string          `json:"productId"`
	ProductTitle string          `json:"productTitle"`
	VariantTitle string          `json:"variantTitle"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
}

type OrderCustomer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ShippingAddress struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
}

type Order struct {
	ID                string            `json:"id"`
	OrderNumber       string            `json:"orderNumber"`
	Status            OrderStatus       `json:"status"`
	FulfillmentStatus FulfillmentStatus `json:"fulfillmentStatus"`
	PaymentStatus     PaymentStatus     `json:"paymentStatus"`
	Customer          OrderCustomer     `json:"customer"`
	LineItems         []OrderLineItem   `json:"lineItems"`
	Subtotal          decimal.Decimal   `json:"subtotal"`
	ShippingCost      decimal.Decimal   `json:"shippingCost"`
	Tax               decimal.Decimal   `json:"tax"`
	Total             decimal.Decimal   `json:"total"`
	Currency          string            `json:"currency"`
	ShippingAddress   ShippingAddress   `json:"shippingAddress"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
	StoreID           string            `json:"storeId"`
}

type CustomerSegment string

const (
	SegmentVIP    CustomerSegment = "vip"
	SegmentLoyal  CustomerSegment = "loyal"
	SegmentAtRisk CustomerSegment = "at_risk"
	SegmentNew    CustomerSegment = "new"
	SegmentLost   CustomerSegment = "lost"
)

type Customer struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone,omitempty"`
	Segment       CustomerSegment `json:"segment"`
	TotalOrders   int             `json:"totalOrders"`
	LifetimeValue decimal.Decimal `json:"ltv"`
	AvgOrderValue decimal.Decimal `json:"avgOrderValue"`
	LastOrderAt   time.Time       `json:"lastOrderAt"`
	JoinedAt      time.Time       `json:"joinedAt"`
	City          string          `json:"city"`
	Country       string          `json:"country"`
	Tags          []string        `json:"tags,omitempty"`
	StoreID       string          `json:"storeId"`
}

// AnalyticsPoint is one day of aggregated store performance.
type AnalyticsPoint struct {
	Date      time.Time       `json:"date"`
	Revenue   decimal.Decimal `json:"revenue"`
	Orders    int             `json:"orders"`
	Customers int             `json:"customers"`
}

// KPIData holds headline metrics with period-over-period change percentages.
type KPIData struct {
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	RevenueChange   decimal.Decimal `json:"revenueChange"`
	TotalOrders     int             `json:"totalOrders"`
	OrdersChange    decimal.Decimal `json:"ordersChange"`
	TotalCustomers  int             `json:"totalCustomers"`
	CustomersChange decimal.Decimal `json:"customersChange"`
	AvgOrderValue   decimal.Decimal `json:"avgOrderValue"`
	AOVChange       decimal.Decimal `json:"aovChange"`
}
