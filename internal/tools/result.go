package tools

import "github.com/kalambet/clerk/internal/dataset"

// Kind tags the shape of a Result. The formatter switches exhaustively on it;
// an unknown kind falls through to a generic acknowledgement there.
type Kind string

const (
	KindInventory Kind = "inventory"
	KindCustomer  Kind = "customer"
	KindOrder     Kind = "order"
	KindOrders    Kind = "orders"
	KindNotFound  Kind = "not_found"
)

// Result is the tagged outcome of a tool invocation. Only the fields for its
// Kind are populated. A zero Result (empty Kind) means no tool ran.
type Result struct {
	Kind Kind `json:"kind"`

	// KindInventory. May be empty when the search matched nothing; the
	// formatter treats that as "no products found".
	Products []ProductView `json:"products,omitempty"`

	// KindCustomer.
	Customer *dataset.Customer `json:"customer,omitempty"`

	// KindOrder.
	Order *dataset.Order `json:"order,omitempty"`

	// KindOrders.
	CustomerName string          `json:"customer_name,omitempty"`
	Orders       []dataset.Order `json:"orders,omitempty"`

	// KindNotFound.
	Reason string `json:"reason,omitempty"`
}

// ProductView is a product as seen through an inventory query. When a
// specific size was asked for, Size/Stock/Available carry the answer;
// otherwise TotalStock sums the full size map on the product.
type ProductView struct {
	Product    dataset.Product `json:"product"`
	Size       string          `json:"size,omitempty"`
	Stock      int             `json:"stock,omitempty"`
	Available  bool            `json:"available,omitempty"`
	TotalStock int             `json:"total_stock,omitempty"`
}

// SizeQueried reports whether this view answers a specific-size question.
func (v ProductView) SizeQueried() bool {
	return v.Size != ""
}

func notFound(reason string) Result {
	return Result{Kind: KindNotFound, Reason: reason}
}
