package format

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kalambet/clerk/internal/dataset"
	"github.com/kalambet/clerk/internal/intent"
	"github.com/kalambet/clerk/internal/tools"
)

func nikeProduct() dataset.Product {
	return dataset.Product{
		ID:       "P1",
		Name:     "Test Nike Shoes",
		Price:    decimal.NewFromFloat(129.99),
		Colors:   []string{"White", "Black"},
		Location: "Warehouse A",
		Sizes:    map[string]int{"8": 5, "9": 10, "10": 0},
	}
}

func TestRender_InventoryEmptyProducts(t *testing.T) {
	res := tools.Result{Kind: tools.KindInventory}
	got := Render(res, intent.Inventory)
	if !strings.Contains(got, "couldn't find any products matching") {
		t.Errorf("got %q, want the inventory not-found message", got)
	}
}

func TestRender_InventoryNotFoundReason(t *testing.T) {
	// "could not identify product" renders the same not-found line, not the
	// generic acknowledgement.
	res := tools.Result{Kind: tools.KindNotFound, Reason: "could not identify product"}
	got := Render(res, intent.Inventory)
	if !strings.Contains(got, "couldn't find any products matching") {
		t.Errorf("got %q, want the inventory not-found message", got)
	}
}

func TestRender_InventorySizeOutOfStockSuggestsAlternatives(t *testing.T) {
	res := tools.Result{
		Kind: tools.KindInventory,
		Products: []tools.ProductView{
			{Product: nikeProduct(), Size: "10", Stock: 0, Available: false},
		},
	}
	got := Render(res, intent.Inventory)

	if !strings.Contains(got, "Size 10") || !strings.Contains(got, "Out of stock") {
		t.Errorf("missing out-of-stock line:\n%s", got)
	}
	if !strings.Contains(got, "Alternative sizes available: 8, 9") {
		t.Errorf("missing sorted alternatives:\n%s", got)
	}
	if !strings.Contains(got, "$129.99") || !strings.Contains(got, "Warehouse A") || !strings.Contains(got, "White, Black") {
		t.Errorf("missing product header fields:\n%s", got)
	}
}

func TestRender_InventorySizeInStock(t *testing.T) {
	res := tools.Result{
		Kind: tools.KindInventory,
		Products: []tools.ProductView{
			{Product: nikeProduct(), Size: "9", Stock: 10, Available: true},
		},
	}
	got := Render(res, intent.Inventory)
	if !strings.Contains(got, "Size 9: **10 units** in stock") {
		t.Errorf("missing in-stock line:\n%s", got)
	}
	if strings.Contains(got, "Alternative sizes") {
		t.Errorf("alternatives must only show for out-of-stock sizes:\n%s", got)
	}
}

func TestRender_InventoryFullBreakdown(t *testing.T) {
	res := tools.Result{
		Kind: tools.KindInventory,
		Products: []tools.ProductView{
			{Product: nikeProduct(), TotalStock: 15},
		},
	}
	got := Render(res, intent.Inventory)

	if !strings.Contains(got, "Stock levels by size") {
		t.Fatalf("missing breakdown header:\n%s", got)
	}
	// Sizes listed in sorted order, with per-size stock markers.
	i8 := strings.Index(got, "Size 8: 5 units")
	i9 := strings.Index(got, "Size 9: 10 units")
	i10 := strings.Index(got, "Size 10: 0 units")
	if i8 < 0 || i9 < 0 || i10 < 0 {
		t.Fatalf("missing per-size lines:\n%s", got)
	}
	if !(i8 < i9 && i9 < i10) {
		t.Errorf("sizes out of order:\n%s", got)
	}
}

func TestRender_CustomerProfile(t *testing.T) {
	c := dataset.Customer{
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "+1-555-0142",
		Tier:          "Gold",
		TotalOrders:   14,
		LifetimeValue: decimal.NewFromFloat(2847.53),
		RecentPurchases: []dataset.Purchase{
			{OrderID: "ORD-001", Date: "2025-08-14", Status: "Shipped", Total: decimal.NewFromFloat(259.98)},
		},
	}
	got := Render(tools.Result{Kind: tools.KindCustomer, Customer: &c}, intent.Customer)

	for _, want := range []string{
		"Customer Profile: Jane Doe",
		"Tier: Gold Customer",
		"jane@example.com",
		"Total Orders: 14",
		"Lifetime Value: $2,847.53",
		"Order ORD-001",
		"Status: Shipped | Total: $259.98",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestRender_CustomerProfileEmptyHistory(t *testing.T) {
	c := dataset.Customer{Name: "Test Customer", Tier: "Bronze", LifetimeValue: decimal.Zero}
	got := Render(tools.Result{Kind: tools.KindCustomer, Customer: &c}, intent.Customer)

	if !strings.Contains(got, "Customer Profile: Test Customer") {
		t.Errorf("missing profile header:\n%s", got)
	}
	// The history section renders even with zero purchases.
	if !strings.Contains(got, "Recent Purchase History:") {
		t.Errorf("missing history header:\n%s", got)
	}
	if !strings.Contains(got, "Lifetime Value: $0.00") {
		t.Errorf("zero lifetime value misformatted:\n%s", got)
	}
}

func TestRender_Order(t *testing.T) {
	o := dataset.Order{
		ID:              "ORD-001",
		Date:            "2025-08-14",
		Status:          "Shipped",
		Total:           decimal.NewFromFloat(259.98),
		ShippingAddress: "742 Maple Street",
		Tracking:        "1Z999",
		Items: []dataset.LineItem{
			{Name: "Test Nike Shoes", Size: "9", Price: decimal.NewFromFloat(129.99)},
		},
	}
	got := Render(tools.Result{Kind: tools.KindOrder, Order: &o}, intent.Customer)

	for _, want := range []string{
		"Order Details: ORD-001",
		"Status: **Shipped**",
		"Tracking: 1Z999",
		"Shipping: 742 Maple Street",
		"Test Nike Shoes (Size 9) - $129.99",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestRender_OrderWithoutTracking(t *testing.T) {
	o := dataset.Order{ID: "ORD-002", Status: "Processing", Total: decimal.Zero}
	got := Render(tools.Result{Kind: tools.KindOrder, Order: &o}, intent.Customer)
	if strings.Contains(got, "Tracking") {
		t.Errorf("tracking line must be omitted when absent:\n%s", got)
	}
}

func TestRender_OrderList(t *testing.T) {
	res := tools.Result{
		Kind:         tools.KindOrders,
		CustomerName: "Jane Doe",
		Orders: []dataset.Order{
			{ID: "ORD-001", Date: "2025-08-14", Total: decimal.NewFromFloat(259.98), Status: "Shipped"},
			{ID: "ORD-003", Date: "2025-07-02", Total: decimal.NewFromFloat(69.5), Status: "Delivered"},
		},
	}
	got := Render(res, intent.Customer)

	if !strings.Contains(got, "Recent Orders for Jane Doe") {
		t.Errorf("missing header:\n%s", got)
	}
	if !strings.Contains(got, "**ORD-001** (2025-08-14) - $259.98 - Shipped") {
		t.Errorf("missing order line:\n%s", got)
	}
	if !strings.Contains(got, "$69.50") {
		t.Errorf("total not rendered with two decimals:\n%s", got)
	}
}

func TestRender_CustomerNotFound(t *testing.T) {
	res := tools.Result{Kind: tools.KindNotFound, Reason: "could not identify customer or order"}
	got := Render(res, intent.Customer)
	if !strings.Contains(got, "couldn't find that customer or order") {
		t.Errorf("got %q", got)
	}
}

func TestRender_General(t *testing.T) {
	if got := Render(tools.Result{}, intent.General); got != Greeting {
		t.Errorf("got %q, want greeting", got)
	}
}

func TestRender_UnknownShapeFallsThrough(t *testing.T) {
	// A result shape no branch understands gets the generic acknowledgement.
	res := tools.Result{Kind: tools.Kind("mystery")}
	got := Render(res, intent.Customer)
	if !strings.Contains(got, "I've processed your request") {
		t.Errorf("got %q, want generic acknowledgement", got)
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{999.9, "999.90"},
		{2847.53, "2,847.53"},
		{1234567.891, "1,234,567.89"},
		{-1200, "-1,200.00"},
	}
	for _, tt := range tests {
		if got := money(decimal.NewFromFloat(tt.in)); got != tt.want {
			t.Errorf("money(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
