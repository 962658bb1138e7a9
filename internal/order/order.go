package order

import "github.com/Prasadpatil1508/simple-shoping-cart-fullstack/internal/product"

// Order is the immutable record produced by a checkout computation. It is
// returned to the caller and logged, never persisted. The timestamp wire
// name predates this service and is kept for client compatibility.
type Order struct {
	ID          string             `json:"orderId"`
	Items       []product.CartLine `json:"items"`
	TotalAmount float64            `json:"totalAmount"`
	CreatedAt   string             `json:"timestamp"`
}
