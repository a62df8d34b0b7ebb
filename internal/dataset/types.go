package dataset

import "github.com/shopspring/decimal"

// Product is a single catalog item with per-size stock levels.
type Product struct {
	ID       string          `json:"product_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Colors   []string        `json:"colors"`
	Location string          `json:"location"`
	Sizes    map[string]int  `json:"sizes"`
}

// SizeStock returns the stock count for the given size label.
// An absent size is 0 units, not an error.
func (p Product) SizeStock(size string) int {
	return p.Sizes[size]
}

// TotalStock sums stock across all sizes.
func (p Product) TotalStock() int {
	total := 0
	for _, n := range p.Sizes {
		total += n
	}
	return total
}

// Purchase is a summary line in a customer's recent purchase history.
type Purchase struct {
	OrderID string          `json:"order_id"`
	Date    string          `json:"date"`
	Status  string          `json:"status"`
	Total   decimal.Decimal `json:"total"`
}

// Customer is a retail customer profile.
type Customer struct {
	ID              string          `json:"customer_id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Tier            string          `json:"tier"`
	TotalOrders     int             `json:"total_orders"`
	LifetimeValue   decimal.Decimal `json:"lifetime_value"`
	RecentPurchases []Purchase      `json:"recent_purchases"`
}

// LineItem is a single item on an order.
type LineItem struct {
	Name  string          `json:"name"`
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
}

// Order is a placed order. CustomerID is not validated against the customer
// set; an order naming an unknown customer simply never shows up in that
// customer's order list.
type Order struct {
	ID              string          `json:"order_id"`
	CustomerID      string          `json:"customer_id"`
	Date            string          `json:"date"`
	Status          string          `json:"status"`
	Items           []LineItem      `json:"items"`
	Total           decimal.Decimal `json:"total"`
	ShippingAddress string          `json:"shipping_address"`
	Tracking        string          `json:"tracking,omitempty"`
}

// Stats holds collection counts for the status surface.
type Stats struct {
	Products  int `json:"products"`
	Customers int `json:"customers"`
	Orders    int `json:"orders"`
}
