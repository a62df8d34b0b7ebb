// Package tools holds the deterministic lookup tools over the retail
// snapshot and the dispatcher that picks between them. Tools never mutate
// the dataset; each call produces a fresh tagged Result that the formatter
// consumes.
package tools

import (
	"log/slog"

	"github.com/kalambet/clerk/internal/dataset"
)

// Toolset exposes the three retail tools over a read-only snapshot.
type Toolset struct {
	data *dataset.Snapshot
}

// NewToolset creates a Toolset over the given snapshot.
func NewToolset(data *dataset.Snapshot) *Toolset {
	return &Toolset{data: data}
}

// CheckInventory searches products by name, optionally narrowing to a single
// size. The result is always KindInventory; an empty product list is a valid
// answer, not an error.
func (t *Toolset) CheckInventory(productName, size string) Result {
	matches := t.data.FindProductsByName(productName)
	views := make([]ProductView, 0, len(matches))
	for _, p := range matches {
		view := ProductView{Product: p}
		if size != "" {
			stock := p.SizeStock(size)
			view.Size = size
			view.Stock = stock
			view.Available = stock > 0
		} else {
			view.TotalStock = p.TotalStock()
		}
		views = append(views, view)
	}
	slog.Debug("inventory checked", "query", productName, "size", size, "matches", len(views))
	return Result{Kind: KindInventory, Products: views}
}

// CustomerInfo looks up a customer profile by name fragment.
func (t *Toolset) CustomerInfo(customerName string) Result {
	c, ok := t.data.FindCustomerByName(customerName)
	if !ok {
		return notFound("customer '" + customerName + "' not found")
	}
	return Result{Kind: KindCustomer, Customer: &c}
}

// OrderStatus looks up orders either by order id or by customer name. An
// order id takes precedence; with only a name, the customer is resolved
// first and all of their orders are returned.
func (t *Toolset) OrderStatus(orderID, customerName string) Result {
	if orderID != "" {
		o, ok := t.data.FindOrderByID(orderID)
		if !ok {
			return notFound("order '" + orderID + "' not found")
		}
		return Result{Kind: KindOrder, Order: &o}
	}

	if customerName != "" {
		c, ok := t.data.FindCustomerByName(customerName)
		if !ok {
			return notFound("customer '" + customerName + "' not found")
		}
		return Result{
			Kind:         KindOrders,
			CustomerName: customerName,
			Orders:       t.data.FindOrdersByCustomerID(c.ID),
		}
	}

	return notFound("provide either an order id or a customer name")
}
