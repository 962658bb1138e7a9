package order

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Prasadpatil1508/simple-shoping-cart-fullstack/internal/product"
)

// Observer is notified after an order has been built. It runs for its side
// effects only (diagnostic logging); the returned order is already complete
// and observers cannot change it.
type Observer func(ord Order, resolved []product.ResolvedLine)

// Service computes cart totals and builds orders. It holds no state beyond
// its collaborators, so concurrent calls need no coordination.
type Service struct {
	products product.ServiceInterface
	observer Observer
}

func NewService(products product.ServiceInterface) *Service {
	return &Service{products: products}
}

// WithObserver attaches a post-construction callback and returns the service
// for chaining. A nil observer is allowed and means "no logging".
func (s *Service) WithObserver(obs Observer) *Service {
	s.observer = obs
	return s
}

// round2 rounds to the cent, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// cartTotal sums price×quantity over resolved lines and rounds to 2 places.
func cartTotal(resolved []product.ResolvedLine) float64 {
	total := 0.0
	for _, line := range resolved {
		total += line.Product.Price * float64(line.Quantity)
	}
	return round2(total)
}

// ProcessOrder validates the submitted lines, prices the resolved subset and
// assembles an order from it. Lines with unknown product ids are dropped
// from the order and reported in the second return value; deciding whether
// their presence fails the request is the caller's policy, not ours. The
// order is always populated — an all-invalid cart yields empty items and a
// zero total.
func (s *Service) ProcessOrder(lines []product.CartLine) (Order, []int) {
	resolved, invalidIDs := s.products.ValidateCart(lines)

	items := make([]product.CartLine, 0, len(resolved))
	for _, line := range resolved {
		items = append(items, product.CartLine{ProductID: line.Product.ID, Quantity: line.Quantity})
	}

	ord := Order{
		ID:          uuid.NewString(),
		Items:       items,
		TotalAmount: cartTotal(resolved),
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if s.observer != nil {
		s.observer(ord, resolved)
	}
	return ord, invalidIDs
}

// CalculateCartTotal returns the preview total for the submitted lines.
// Unknown product ids contribute nothing and are not reported.
func (s *Service) CalculateCartTotal(lines []product.CartLine) float64 {
	resolved, _ := s.products.ValidateCart(lines)
	return cartTotal(resolved)
}
