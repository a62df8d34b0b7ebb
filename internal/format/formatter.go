// Package format renders tagged tool results into the final natural-language
// reply. Render is a pure function; given the same result and intent it
// always produces the same string.
package format

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kalambet/clerk/internal/dataset"
	"github.com/kalambet/clerk/internal/intent"
	"github.com/kalambet/clerk/internal/tools"
)

const (
	// Greeting is the static capability message for general intent.
	Greeting = "I'm ready to help with your retail operations! Ask me about inventory or customer service."

	inventoryNotFound = "I couldn't find any products matching your search. Could you try a different product name or brand?"
	customerNotFound  = "I couldn't find that customer or order. Could you double-check the name or order number?"
	genericAck        = "I've processed your request. Is there anything specific you'd like me to explain further?"
)

// Render turns a tool result and its originating intent into the reply text.
// Inventory and customer intents switch on the result kind; any shape that
// doesn't match a known branch falls through to a generic acknowledgement,
// which is the designed catch-all rather than an error path.
func Render(res tools.Result, in intent.Intent) string {
	switch in {
	case intent.Inventory:
		return renderInventory(res)
	case intent.Customer:
		return renderCustomer(res)
	case intent.General:
		return Greeting
	}
	return genericAck
}

func renderInventory(res tools.Result) string {
	if res.Kind != tools.KindInventory || len(res.Products) == 0 {
		return inventoryNotFound
	}

	var sb strings.Builder
	sb.WriteString("Here's what I found in our inventory:\n\n")

	for _, v := range res.Products {
		p := v.Product
		fmt.Fprintf(&sb, "**%s** - $%s\n", p.Name, p.Price.StringFixed(2))
		fmt.Fprintf(&sb, "📍 Location: %s\n", p.Location)
		fmt.Fprintf(&sb, "🎨 Available colors: %s\n", strings.Join(p.Colors, ", "))

		if v.SizeQueried() {
			if v.Available {
				fmt.Fprintf(&sb, "✅ Size %s: **%d units** in stock\n", v.Size, v.Stock)
			} else {
				fmt.Fprintf(&sb, "❌ Size %s: **Out of stock**\n", v.Size)
				if alternatives := inStockSizes(p); len(alternatives) > 0 {
					fmt.Fprintf(&sb, "💡 Alternative sizes available: %s\n", strings.Join(alternatives, ", "))
				}
			}
		} else {
			sb.WriteString("📦 **Stock levels by size:**\n")
			for _, size := range sortedSizes(p.Sizes) {
				status := "✅"
				if p.Sizes[size] == 0 {
					status = "❌"
				}
				fmt.Fprintf(&sb, "   %s Size %s: %d units\n", status, size, p.Sizes[size])
			}
		}

		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String())
}

func renderCustomer(res tools.Result) string {
	switch res.Kind {
	case tools.KindCustomer:
		return renderProfile(*res.Customer)
	case tools.KindOrder:
		return renderOrder(*res.Order)
	case tools.KindOrders:
		return renderOrderList(res.CustomerName, res.Orders)
	case tools.KindNotFound:
		return customerNotFound
	}
	return genericAck
}

func renderProfile(c dataset.Customer) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Customer Profile: %s**\n\n", c.Name)
	fmt.Fprintf(&sb, "🏆 Tier: %s Customer\n", c.Tier)
	fmt.Fprintf(&sb, "📧 Email: %s\n", c.Email)
	fmt.Fprintf(&sb, "📞 Phone: %s\n", c.Phone)
	fmt.Fprintf(&sb, "🛒 Total Orders: %d\n", c.TotalOrders)
	fmt.Fprintf(&sb, "💰 Lifetime Value: $%s\n\n", money(c.LifetimeValue))

	sb.WriteString("**Recent Purchase History:**\n")
	for _, purchase := range c.RecentPurchases {
		fmt.Fprintf(&sb, "• **Order %s** (%s)\n", purchase.OrderID, purchase.Date)
		fmt.Fprintf(&sb, "  Status: %s | Total: $%s\n", purchase.Status, purchase.Total.StringFixed(2))
	}

	return sb.String()
}

func renderOrder(o dataset.Order) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Order Details: %s**\n\n", o.ID)
	fmt.Fprintf(&sb, "📅 Date: %s\n", o.Date)
	fmt.Fprintf(&sb, "📦 Status: **%s**\n", o.Status)
	fmt.Fprintf(&sb, "💵 Total: $%s\n", o.Total.StringFixed(2))
	if o.Tracking != "" {
		fmt.Fprintf(&sb, "🚚 Tracking: %s\n", o.Tracking)
	}
	fmt.Fprintf(&sb, "📍 Shipping: %s\n\n", o.ShippingAddress)

	sb.WriteString("**Items:**\n")
	for _, item := range o.Items {
		fmt.Fprintf(&sb, "• %s (Size %s) - $%s\n", item.Name, item.Size, item.Price.StringFixed(2))
	}

	return sb.String()
}

func renderOrderList(customerName string, orders []dataset.Order) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Recent Orders for %s:**\n\n", customerName)
	for _, o := range orders {
		fmt.Fprintf(&sb, "• **%s** (%s) - $%s - %s\n", o.ID, o.Date, o.Total.StringFixed(2), o.Status)
	}
	return sb.String()
}

// inStockSizes returns the sizes with stock, sorted.
func inStockSizes(p dataset.Product) []string {
	var sizes []string
	for size, stock := range p.Sizes {
		if stock > 0 {
			sizes = append(sizes, size)
		}
	}
	sortSizes(sizes)
	return sizes
}

// sortedSizes returns all size labels in deterministic order.
func sortedSizes(m map[string]int) []string {
	sizes := make([]string, 0, len(m))
	for size := range m {
		sizes = append(sizes, size)
	}
	sortSizes(sizes)
	return sizes
}

// sortSizes orders numerically when both labels parse as numbers, falling
// back to lexical order for labels like "os" or "XL".
func sortSizes(sizes []string) {
	sort.Slice(sizes, func(i, j int) bool {
		a, errA := strconv.Atoi(sizes[i])
		b, errB := strconv.Atoi(sizes[j])
		if errA == nil && errB == nil {
			return a < b
		}
		if errA == nil {
			return true
		}
		if errB == nil {
			return false
		}
		return sizes[i] < sizes[j]
	})
}

// money formats an amount with thousands separators and two decimals.
func money(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ",") + "." + fracPart
	if neg {
		return "-" + out
	}
	return out
}
