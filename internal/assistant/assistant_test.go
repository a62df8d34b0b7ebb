package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kalambet/clerk/internal/dataset"
	"github.com/kalambet/clerk/internal/extract"
	"github.com/kalambet/clerk/internal/format"
	"github.com/kalambet/clerk/internal/intent"
	"github.com/kalambet/clerk/internal/storage"
	"github.com/kalambet/clerk/internal/tools"
)

func testSnapshot() *dataset.Snapshot {
	return &dataset.Snapshot{
		Products: []dataset.Product{
			{
				ID:       "P1",
				Name:     "Nike Air Max 90",
				Price:    decimal.NewFromFloat(129.99),
				Colors:   []string{"White", "Black"},
				Location: "Aisle 3",
				Sizes:    map[string]int{"8": 5, "9": 12, "10": 0},
			},
		},
		Customers: []dataset.Customer{
			{
				ID:    "CUST-001",
				Name:  "Jane Doe",
				Email: "jane@example.com",
				Tier:  "Gold",
			},
		},
		Orders: []dataset.Order{
			{
				ID:         "ORD-001",
				CustomerID: "CUST-001",
				Status:     "Shipped",
				Total:      decimal.NewFromFloat(129.99),
			},
		},
	}
}

func newTestAssistant(store InteractionStore) *Assistant {
	classifier := intent.New(nil)
	extractor := extract.New(extract.DefaultConfig())
	dispatcher := tools.NewDispatcher(tools.NewToolset(testSnapshot()), extractor)
	return New(classifier, dispatcher, NewSimulated(0), store)
}

// errGenerator always fails generation.
type errGenerator struct{ err error }

func (g errGenerator) Generate(context.Context, string, GenContext) (string, error) {
	return "", g.err
}

// panicGenerator exercises the recover path.
type panicGenerator struct{}

func (panicGenerator) Generate(context.Context, string, GenContext) (string, error) {
	panic("boom")
}

// recordingStore captures saved interactions and can fail on demand.
type recordingStore struct {
	saved []storage.Interaction
	err   error
}

func (s *recordingStore) SaveInteraction(i storage.Interaction) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, i)
	return nil
}

func TestProcessQuery_Deterministic(t *testing.T) {
	a := newTestAssistant(nil)
	ctx := context.Background()

	msg := "do you have nike in size 9"
	first := a.ProcessQuery(ctx, msg)
	second := a.ProcessQuery(ctx, msg)

	if first != second {
		t.Errorf("replies differ:\n%q\n%q", first, second)
	}
	if !strings.Contains(first, "Size 9: **12 units** in stock") {
		t.Errorf("reply missing stock line: %q", first)
	}
}

func TestProcessQuery_OutOfStockAlternatives(t *testing.T) {
	a := newTestAssistant(nil)

	reply := a.ProcessQuery(context.Background(), "do you have nike in size 10")

	if !strings.Contains(reply, "Size 10: **Out of stock**") {
		t.Errorf("reply missing out-of-stock line: %q", reply)
	}
	if !strings.Contains(reply, "Alternative sizes available: 8, 9") {
		t.Errorf("reply missing alternatives: %q", reply)
	}
}

func TestProcessQuery_OrderByID(t *testing.T) {
	a := newTestAssistant(nil)

	reply := a.ProcessQuery(context.Background(), "What's the status of ORD-001 please")

	if !strings.Contains(reply, "Order Details: ORD-001") {
		t.Errorf("reply missing order details: %q", reply)
	}
	if !strings.Contains(reply, "Shipped") {
		t.Errorf("reply missing status: %q", reply)
	}
}

func TestProcessQuery_GeneralGreeting(t *testing.T) {
	a := newTestAssistant(nil)

	reply := a.ProcessQuery(context.Background(), "hello there")

	if reply != format.Greeting {
		t.Errorf("reply = %q, want greeting", reply)
	}
}

func TestProcessQuery_GeneratorError(t *testing.T) {
	classifier := intent.New(nil)
	extractor := extract.New(extract.DefaultConfig())
	dispatcher := tools.NewDispatcher(tools.NewToolset(testSnapshot()), extractor)
	a := New(classifier, dispatcher, errGenerator{err: errors.New("backend down")}, nil)

	reply := a.ProcessQuery(context.Background(), "do you have nike")

	if reply != Apology {
		t.Errorf("reply = %q, want apology", reply)
	}
}

func TestProcessQuery_RecoversFromPanic(t *testing.T) {
	classifier := intent.New(nil)
	extractor := extract.New(extract.DefaultConfig())
	dispatcher := tools.NewDispatcher(tools.NewToolset(testSnapshot()), extractor)
	a := New(classifier, dispatcher, panicGenerator{}, nil)

	reply := a.ProcessQuery(context.Background(), "do you have nike")

	if reply != Apology {
		t.Errorf("reply = %q, want apology", reply)
	}
}

func TestProcessQuery_CanceledContext(t *testing.T) {
	classifier := intent.New(nil)
	extractor := extract.New(extract.DefaultConfig())
	dispatcher := tools.NewDispatcher(tools.NewToolset(testSnapshot()), extractor)
	a := New(classifier, dispatcher, NewSimulated(time.Second), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if reply := a.ProcessQuery(ctx, "do you have nike"); reply != Apology {
		t.Errorf("reply = %q, want apology", reply)
	}
}

func TestProcessQuery_RecordsInteraction(t *testing.T) {
	store := &recordingStore{}
	a := newTestAssistant(store)

	reply := a.ProcessQuery(context.Background(), "do you have nike in size 9")

	if len(store.saved) != 1 {
		t.Fatalf("saved %d interactions, want 1", len(store.saved))
	}
	ix := store.saved[0]
	if ix.ID == "" {
		t.Error("interaction id is empty")
	}
	if ix.Message != "do you have nike in size 9" {
		t.Errorf("Message = %q", ix.Message)
	}
	if ix.Intent != string(intent.Inventory) {
		t.Errorf("Intent = %q, want inventory", ix.Intent)
	}
	if ix.ResultKind != string(tools.KindInventory) {
		t.Errorf("ResultKind = %q, want inventory", ix.ResultKind)
	}
	if ix.Response != reply {
		t.Errorf("Response = %q, want %q", ix.Response, reply)
	}
}

func TestProcessQuery_StoreFailureDoesNotBreakReply(t *testing.T) {
	store := &recordingStore{err: errors.New("disk full")}
	a := newTestAssistant(store)

	reply := a.ProcessQuery(context.Background(), "hello")

	if reply != format.Greeting {
		t.Errorf("reply = %q, want greeting despite store failure", reply)
	}
}
