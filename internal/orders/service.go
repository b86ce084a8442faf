package orders

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/sportshoplabs/sportshop-backend/pkg/enums"
	pkgerrors "github.com/sportshoplabs/sportshop-backend/pkg/errors"
	"github.com/sportshoplabs/sportshop-backend/pkg/keylock"
	"github.com/sportshoplabs/sportshop-backend/pkg/types"
)

// Service exposes the order lifecycle. Orders are immutable snapshots;
// the only mutation after creation is a forward-only status transition.
type Service interface {
	Create(ctx context.Context, subjectID string, items []Item, total float64, address *types.Address) (*Order, error)
	ListBySubject(ctx context.Context, subjectID string) ([]*Order, error)
	GetByID(ctx context.Context, orderID string) (*Order, error)
	SetStatus(ctx context.Context, orderID string, status enums.OrderStatus) (*Order, error)
	Cancel(ctx context.Context, orderID string) (*Order, error)
}

type service struct {
	repo  Repository
	locks *keylock.KeyLock
	now   func() time.Time
	newID func() string
}

// NewService builds an order service backed by the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	return &service{
		repo:  repo,
		locks: keylock.New(),
		now:   time.Now,
		newID: func() string { return "order_" + uuid.NewString() },
	}, nil
}

func (s *service) Create(ctx context.Context, subjectID string, items []Item, total float64, address *types.Address) (*Order, error) {
	if subjectID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "subject id is required")
	}
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order items are required")
	}

	now := s.now()
	order := &Order{
		ID:        s.newID(),
		SubjectID: subjectID,
		Items:     append([]Item(nil), items...),
		Status:    enums.OrderStatusPending,
		Total:     total,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if address != nil {
		addr := *address
		order.ShippingAddress = &addr
	}

	if err := s.repo.Save(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save order")
	}
	return order, nil
}

func (s *service) ListBySubject(ctx context.Context, subjectID string) ([]*Order, error) {
	if subjectID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "subject id is required")
	}

	out, err := s.repo.FindBySubject(ctx, subjectID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *service) GetByID(ctx context.Context, orderID string) (*Order, error) {
	if orderID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}

	order, err := s.repo.Find(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

func (s *service) SetStatus(ctx context.Context, orderID string, status enums.OrderStatus) (*Order, error) {
	if orderID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status").
			WithDetails(map[string]any{"status": status.String()})
	}

	unlock := s.locks.Lock(orderID)
	defer unlock()

	order, err := s.repo.Find(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	// Setting the current status again is a no-op.
	if order.Status == status {
		return order, nil
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order status transition not allowed").
			WithDetails(map[string]any{
				"from": order.Status.String(),
				"to":   status.String(),
			})
	}

	order.Status = status
	order.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save order")
	}
	return order, nil
}

func (s *service) Cancel(ctx context.Context, orderID string) (*Order, error) {
	return s.SetStatus(ctx, orderID, enums.OrderStatusCancelled)
}
