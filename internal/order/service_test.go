package order

import (
	"testing"
	"time"

	"github.com/Prasadpatil1508/simple-shoping-cart-fullstack/internal/product"
)

func testCatalog() *product.Service {
	seed := []product.Product{
		{ID: 1, Name: "Wireless Bluetooth Headphones", Price: 99.99},
		{ID: 2, Name: "Smart Watch Series 5", Price: 299.99},
	}
	return product.NewService(product.NewInMemoryRepository(seed))
}

func TestCalculateCartTotal(t *testing.T) {
	s := NewService(testCatalog())

	total := s.CalculateCartTotal([]product.CartLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	})
	if total != 499.97 {
		t.Fatalf("expected 499.97, got %v", total)
	}
}

func TestCalculateCartTotal_Empty(t *testing.T) {
	s := NewService(testCatalog())

	if total := s.CalculateCartTotal(nil); total != 0 {
		t.Fatalf("expected 0 for empty cart, got %v", total)
	}
}

func TestCalculateCartTotal_FullyInvalid(t *testing.T) {
	s := NewService(testCatalog())

	if total := s.CalculateCartTotal([]product.CartLine{{ProductID: 999, Quantity: 1}}); total != 0 {
		t.Fatalf("expected 0 for fully invalid cart, got %v", total)
	}
}

func TestProcessOrder_PartialCart(t *testing.T) {
	s := NewService(testCatalog())

	ord, invalid := s.ProcessOrder([]product.CartLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 999, Quantity: 1},
	})

	if len(ord.Items) != 1 || ord.Items[0].ProductID != 1 || ord.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", ord.Items)
	}
	if ord.TotalAmount != 199.98 {
		t.Fatalf("expected total 199.98, got %v", ord.TotalAmount)
	}
	if len(invalid) != 1 || invalid[0] != 999 {
		t.Fatalf("expected invalid ids [999], got %v", invalid)
	}
}

func TestProcessOrder_Empty(t *testing.T) {
	s := NewService(testCatalog())

	ord, invalid := s.ProcessOrder(nil)
	if len(ord.Items) != 0 {
		t.Fatalf("expected no items, got %+v", ord.Items)
	}
	if ord.TotalAmount != 0 {
		t.Fatalf("expected zero total, got %v", ord.TotalAmount)
	}
	if len(invalid) != 0 {
		t.Fatalf("expected no invalid ids, got %v", invalid)
	}
}

func TestProcessOrder_OrderMetadata(t *testing.T) {
	s := NewService(testCatalog())

	ord, _ := s.ProcessOrder([]product.CartLine{{ProductID: 1, Quantity: 1}})
	if ord.ID == "" {
		t.Fatal("expected an order id")
	}
	if _, err := time.Parse(time.RFC3339, ord.CreatedAt); err != nil {
		t.Fatalf("createdAt is not RFC 3339: %q", ord.CreatedAt)
	}

	again, _ := s.ProcessOrder([]product.CartLine{{ProductID: 1, Quantity: 1}})
	if again.ID == ord.ID {
		t.Fatal("expected distinct order ids per call")
	}
}

func TestProcessOrder_LineAccounting(t *testing.T) {
	// every submitted line ends up either in the order or in the invalid list
	s := NewService(testCatalog())

	carts := [][]product.CartLine{
		nil,
		{{ProductID: 1, Quantity: 1}},
		{{ProductID: 999, Quantity: 1}},
		{{ProductID: 1, Quantity: 2}, {ProductID: 999, Quantity: 1}, {ProductID: 2, Quantity: 3}, {ProductID: 7, Quantity: 1}},
	}
	for _, lines := range carts {
		ord, invalid := s.ProcessOrder(lines)
		if len(ord.Items)+len(invalid) != len(lines) {
			t.Fatalf("lines=%v: items(%d) + invalid(%d) != %d", lines, len(ord.Items), len(invalid), len(lines))
		}
		if total := s.CalculateCartTotal(lines); total != ord.TotalAmount {
			t.Fatalf("lines=%v: preview total %v != order total %v", lines, total, ord.TotalAmount)
		}
	}
}

func TestProcessOrder_RepeatedCallsAgree(t *testing.T) {
	s := NewService(testCatalog())
	lines := []product.CartLine{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}}

	first, _ := s.ProcessOrder(lines)
	second, _ := s.ProcessOrder(lines)
	if first.TotalAmount != second.TotalAmount || len(first.Items) != len(second.Items) {
		t.Fatalf("repeated calls disagree: %+v vs %+v", first, second)
	}
}

func TestObserver_InvokedAfterConstruction(t *testing.T) {
	var seen *Order
	var seenLines int
	s := NewService(testCatalog()).WithObserver(func(ord Order, resolved []product.ResolvedLine) {
		seen = &ord
		seenLines = len(resolved)
	})

	ord, _ := s.ProcessOrder([]product.CartLine{{ProductID: 2, Quantity: 1}})
	if seen == nil {
		t.Fatal("observer was not invoked")
	}
	if seen.ID != ord.ID || seen.TotalAmount != ord.TotalAmount {
		t.Fatalf("observer saw %+v, caller got %+v", seen, ord)
	}
	if seenLines != 1 {
		t.Fatalf("expected 1 resolved line, observer saw %d", seenLines)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{499.97000000000003, 499.97},
		{1.2345, 1.23},
		{1.125, 1.13},   // exact half rounds away from zero
		{-1.125, -1.13}, // symmetric for negatives
		{39.999, 40},
	}
	for _, c := range cases {
		if got := round2(c.in); got != c.want {
			t.Fatalf("round2(%v) = %v, want %v", c.in, got, c.want)
		}
		// idempotence
		if got := round2(round2(c.in)); got != round2(c.in) {
			t.Fatalf("round2 not idempotent for %v", c.in)
		}
	}
}
