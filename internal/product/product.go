package product

// Product is a catalog entry. The catalog is seed data defined at process
// start and never mutated, so there are no create/update/delete operations.
// JSON tags follow the camelCase convention used by the API.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}

// CartLine is a raw (productId, quantity) pair submitted by a client.
// Nothing about it is trusted until it has been through ValidateCart.
type CartLine struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// ResolvedLine is a cart line matched to its catalog product. Quantity is
// carried through unchanged; positivity is enforced at the HTTP layer.
type ResolvedLine struct {
	Product  Product
	Quantity int
}
