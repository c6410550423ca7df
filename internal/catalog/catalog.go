// Package catalog holds the sellable product set and the pure
// filter/sort queries the shop listing is built from.
package catalog

import (
	"sync"

	"github.com/esenmoda/esen/internal/domain"
)

// Service owns the product and category set. Products mutate only
// through the admin Update path; cart and order flows read snapshots.
type Service struct {
	mu         sync.RWMutex
	products   []domain.Product
	byID       map[int64]int
	categories []domain.Category
}

// NewService creates a catalog seeded with the given products and
// categories. Pass DefaultProducts()/DefaultCategories() for the
// standard storefront set.
func NewService(products []domain.Product, categories []domain.Category) *Service {
	s := &Service{
		products:   make([]domain.Product, len(products)),
		byID:       make(map[int64]int, len(products)),
		categories: make([]domain.Category, len(categories)),
	}
	copy(s.products, products)
	copy(s.categories, categories)
	for i, p := range s.products {
		s.byID[p.ID] = i
	}
	return s
}

// List returns all products in catalog order. The returned slice is a copy.
func (s *Service) List() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given id.
func (s *Service) Get(id int64) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return s.products[i], nil
}

// Categories returns the browsable category list.
func (s *Service) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Update replaces the product with the same id (admin editing path).
// Open carts keep their snapshot prices; only future adds see the change.
func (s *Service) Update(p domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[p.ID]
	if !ok {
		return domain.ErrProductNotFound
	}
	s.products[i] = p
	return nil
}
