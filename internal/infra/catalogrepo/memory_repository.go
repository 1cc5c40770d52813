package catalogrepo

import (
	"context"
	"sync"

	"github.com/skintrack/skintrack/internal/domain/catalog"
)

// MemoryRepository serves products from process memory for tests/dev.
type MemoryRepository struct {
	mu      sync.RWMutex
	ordered []catalog.Product
	byID    map[string]catalog.Product
}

// NewMemoryRepository constructs a repo holding the given products.
func NewMemoryRepository(products []catalog.Product) *MemoryRepository {
	repo := &MemoryRepository{
		ordered: append([]catalog.Product(nil), products...),
		byID:    make(map[string]catalog.Product, len(products)),
	}
	for _, p := range products {
		repo.byID[p.ID] = p
	}
	return repo
}

// List implements catalog.Repository.
func (r *MemoryRepository) List(_ context.Context) ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]catalog.Product(nil), r.ordered...), nil
}

// Get implements catalog.Repository.
func (r *MemoryRepository) Get(_ context.Context, id string) (catalog.Product, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.byID[id]
	return product, ok, nil
}

var _ catalog.Repository = (*MemoryRepository)(nil)
