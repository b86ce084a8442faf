package orders

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when no order exists for the given id.
var ErrNotFound = errors.New("order not found")

// Repository persists order aggregates keyed by order id. Lookups by id are
// subject-agnostic; ownership is enforced at the boundary.
type Repository interface {
	Find(ctx context.Context, orderID string) (*Order, error)
	FindBySubject(ctx context.Context, subjectID string) ([]*Order, error)
	Save(ctx context.Context, order *Order) error
}

// MemoryRepository keeps orders in a process-local map.
type MemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]*Order
}

// NewMemoryRepository builds an empty in-memory order store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{orders: make(map[string]*Order)}
}

func (r *MemoryRepository) Find(_ context.Context, orderID string) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok {
		return nil, ErrNotFound
	}
	return order.Clone(), nil
}

func (r *MemoryRepository) FindBySubject(_ context.Context, subjectID string) ([]*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Order, 0)
	for _, order := range r.orders {
		if order.SubjectID == subjectID {
			out = append(out, order.Clone())
		}
	}
	return out, nil
}

func (r *MemoryRepository) Save(_ context.Context, order *Order) error {
	if order == nil {
		return errors.New("order is required")
	}
	r.mu.Lock()
	r.orders[order.ID] = order.Clone()
	r.mu.Unlock()
	return nil
}
