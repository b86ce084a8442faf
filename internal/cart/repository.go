package cart

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when no cart exists for a subject yet.
var ErrNotFound = errors.New("cart not found")

// Repository persists cart aggregates keyed by subject id. Implementations
// do not synchronize read-modify-write sequences; the service serializes
// those per subject before touching the repository.
type Repository interface {
	Find(ctx context.Context, subjectID string) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
}

// MemoryRepository keeps carts in a process-local map.
type MemoryRepository struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

// NewMemoryRepository builds an empty in-memory cart store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{carts: make(map[string]*Cart)}
}

func (r *MemoryRepository) Find(_ context.Context, subjectID string) (*Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[subjectID]
	if !ok {
		return nil, ErrNotFound
	}
	return cart.Clone(), nil
}

func (r *MemoryRepository) Save(_ context.Context, cart *Cart) error {
	if cart == nil {
		return errors.New("cart is required")
	}
	r.mu.Lock()
	r.carts[cart.SubjectID] = cart.Clone()
	r.mu.Unlock()
	return nil
}
