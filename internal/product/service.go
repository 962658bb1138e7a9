package product

// ServiceInterface lets other packages depend on the product service
// without pinning the concrete type (tests inject alternate catalogs).
type ServiceInterface interface {
	List() []Product
	GetByID(id int) (Product, error)
	ValidateCart(lines []CartLine) ([]ResolvedLine, []int)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

// ValidateCart partitions raw cart lines into lines resolved against the
// catalog and the product ids that matched nothing. Input order is preserved
// on both sides and duplicate unknown ids are reported once per occurrence.
// It never fails: every outcome is represented in the return values.
//
// Quantities pass through untouched — the HTTP layer rejects non-positive
// values before they get here.
func (s *Service) ValidateCart(lines []CartLine) ([]ResolvedLine, []int) {
	resolved := make([]ResolvedLine, 0, len(lines))
	invalidIDs := make([]int, 0)
	for _, line := range lines {
		p, err := s.repo.GetByID(line.ProductID)
		if err != nil {
			invalidIDs = append(invalidIDs, line.ProductID)
			continue
		}
		resolved = append(resolved, ResolvedLine{Product: p, Quantity: line.Quantity})
	}
	return resolved, invalidIDs
}

var _ ServiceInterface = (*Service)(nil)
