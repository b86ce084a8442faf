package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
)

// ErrNotFound is returned when a product id is absent from the catalog.
var ErrNotFound = errors.New("product not found")

// Repository exposes read access to the product catalog plus the bulk
// replace used by the seed loader.
type Repository interface {
	FindByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, filters Filters) ([]Product, error)
	ReplaceAll(ctx context.Context, products []Product) error
	Count(ctx context.Context) (int64, error)
}

// MemoryRepository keeps the catalog in process memory, indexed by id.
type MemoryRepository struct {
	mu       sync.RWMutex
	byID     map[string]Product
	ordering []string
}

// NewMemoryRepository builds an empty in-memory catalog.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]Product)}
}

// FindByID returns a copy of the product or ErrNotFound.
func (r *MemoryRepository) FindByID(_ context.Context, id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := product
	return &out, nil
}

// List returns the products matching the filters in seed order.
func (r *MemoryRepository) List(_ context.Context, filters Filters) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, len(r.ordering))
	for _, id := range r.ordering {
		product := r.byID[id]
		if matchesFilters(product, filters) {
			out = append(out, product)
		}
	}
	return out, nil
}

// ReplaceAll swaps the full catalog contents.
func (r *MemoryRepository) ReplaceAll(_ context.Context, products []Product) error {
	byID := make(map[string]Product, len(products))
	ordering := make([]string, 0, len(products))
	for _, product := range products {
		if _, seen := byID[product.ID]; seen {
			continue
		}
		byID[product.ID] = product
		ordering = append(ordering, product.ID)
	}

	r.mu.Lock()
	r.byID = byID
	r.ordering = ordering
	r.mu.Unlock()
	return nil
}

// Count returns the number of catalog entries.
func (r *MemoryRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.byID)), nil
}

func matchesFilters(product Product, filters Filters) bool {
	if category := strings.TrimSpace(filters.Category); category != "" {
		if !strings.EqualFold(product.Category, category) && !strings.EqualFold(product.Sport, category) {
			return false
		}
	}
	if search := strings.ToLower(strings.TrimSpace(filters.Search)); search != "" {
		name := strings.ToLower(product.Name)
		description := strings.ToLower(product.Description)
		if !strings.Contains(name, search) && !strings.Contains(description, search) {
			return false
		}
	}
	return true
}

// sortByID is used by tests that need deterministic output regardless of
// seed ordering.
func sortByID(products []Product) {
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
}
