package tools

import (
	"github.com/kalambet/clerk/internal/extract"
	"github.com/kalambet/clerk/internal/intent"
)

// Dispatcher routes a classified message to the right tool, applying the
// fixed fallback order when primary extraction yields nothing usable.
type Dispatcher struct {
	tools     *Toolset
	extractor *extract.Extractor
}

// NewDispatcher wires a Dispatcher to its toolset and extractor.
func NewDispatcher(tools *Toolset, extractor *extract.Extractor) *Dispatcher {
	return &Dispatcher{tools: tools, extractor: extractor}
}

// Dispatch extracts entities from the message and invokes the tool for the
// given intent. General intent runs no tool and returns a zero Result.
func (d *Dispatcher) Dispatch(in intent.Intent, message string) Result {
	switch in {
	case intent.Inventory:
		return d.dispatchInventory(message)
	case intent.Customer:
		return d.dispatchCustomer(message)
	default:
		return Result{}
	}
}

func (d *Dispatcher) dispatchInventory(message string) Result {
	brand := d.extractor.Brand(message)
	if brand == "" {
		// No recognizable product keyword; skip the accessor entirely.
		return notFound("could not identify product")
	}
	size := d.extractor.Size(message)
	return d.tools.CheckInventory(brand, size)
}

// dispatchCustomer resolves via the order id when one was extracted (a
// message carrying both an order id and a name always takes the id path).
// Without an id it tries each name candidate against the customer lookup,
// then each candidate against order-by-customer-name; first success wins.
func (d *Dispatcher) dispatchCustomer(message string) Result {
	orderID := d.extractor.OrderID(message)
	if orderID != "" {
		// An extracted order id settles the query either way; a miss is
		// reported as not-found rather than falling back to name lookups.
		return d.tools.OrderStatus(orderID, "")
	}

	names := d.extractor.NameCandidates(message)
	for _, name := range names {
		if res := d.tools.CustomerInfo(name); res.Kind != KindNotFound {
			return res
		}
	}
	for _, name := range names {
		if res := d.tools.OrderStatus("", name); res.Kind != KindNotFound {
			return res
		}
	}

	return notFound("could not identify customer or order")
}
