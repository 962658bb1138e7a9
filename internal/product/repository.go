package product

import "errors"

var (
	ErrNotFound = errors.New("product not found")
)

// Repository provides read access to the product catalog. Absence of a
// product is a normal outcome, reported as ErrNotFound.
type Repository interface {
	List() []Product
	GetByID(id int) (Product, error)
}

// InMemoryRepository holds the catalog in a slice seeded at construction.
// The catalog never changes after that, so reads need no locking.
type InMemoryRepository struct {
	storage []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Product, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

// List returns the full catalog in seed order. It copies the backing slice
// so callers cannot reorder or overwrite the shared data.
func (r *InMemoryRepository) List() []Product {
	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetByID(id int) (Product, error) {
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}
