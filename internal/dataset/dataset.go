// Package dataset holds the read-only retail data snapshot and its lookup
// operations. The snapshot is loaded once at startup and never mutated, so
// concurrent lookups need no locking. A future reload would have to swap the
// whole *Snapshot atomically rather than mutate in place.
package dataset

import (
	_ "embed"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
)

//go:embed seed.json
var seedJSON []byte

// Snapshot is an immutable view over the three retail collections.
// Collection order is preserved from the source document; lookup results
// follow that order.
type Snapshot struct {
	Products  []Product
	Customers []Customer
	Orders    []Order
}

type document struct {
	Inventory []Product  `json:"inventory"`
	Customers []Customer `json:"customers"`
	Orders    []Order    `json:"orders"`
}

// Load reads the retail dataset from the given JSON file. An empty path loads
// the embedded seed dataset. A missing or unreadable file degrades to an
// empty snapshot with a warning: every lookup then behaves as not-found, and
// the assistant keeps answering.
func Load(path string) *Snapshot {
	if path == "" {
		return parse(seedJSON, "embedded seed")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("could not read dataset, starting with empty collections", "path", path, "error", err)
		return &Snapshot{}
	}
	return parse(data, path)
}

func parse(data []byte, source string) *Snapshot {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("could not parse dataset, starting with empty collections", "source", source, "error", err)
		return &Snapshot{}
	}
	slog.Info("retail dataset loaded",
		"source", source,
		"products", len(doc.Inventory),
		"customers", len(doc.Customers),
		"orders", len(doc.Orders),
	)
	return &Snapshot{
		Products:  doc.Inventory,
		Customers: doc.Customers,
		Orders:    doc.Orders,
	}
}

// FindProductsByName returns every product whose name contains the query,
// case-insensitively, in dataset order. Product names are not unique; zero or
// more matches is normal.
func (s *Snapshot) FindProductsByName(query string) []Product {
	q := strings.ToLower(query)
	var matches []Product
	for _, p := range s.Products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			matches = append(matches, p)
		}
	}
	return matches
}

// FindCustomerByName returns the first customer whose name contains the
// query, case-insensitively. Multiple customers can share a name fragment;
// first match in dataset order wins and ambiguity is not reported.
func (s *Snapshot) FindCustomerByName(query string) (Customer, bool) {
	q := strings.ToLower(query)
	for _, c := range s.Customers {
		if strings.Contains(strings.ToLower(c.Name), q) {
			return c, true
		}
	}
	return Customer{}, false
}

// FindOrderByID returns the order with the given identifier, matched
// case-insensitively and exactly.
func (s *Snapshot) FindOrderByID(id string) (Order, bool) {
	for _, o := range s.Orders {
		if strings.EqualFold(o.ID, id) {
			return o, true
		}
	}
	return Order{}, false
}

// FindOrdersByCustomerID returns all orders belonging to the customer, in
// dataset order.
func (s *Snapshot) FindOrdersByCustomerID(customerID string) []Order {
	var orders []Order
	for _, o := range s.Orders {
		if o.CustomerID == customerID {
			orders = append(orders, o)
		}
	}
	return orders
}

// Stats returns collection counts.
func (s *Snapshot) Stats() Stats {
	return Stats{
		Products:  len(s.Products),
		Customers: len(s.Customers),
		Orders:    len(s.Orders),
	}
}
