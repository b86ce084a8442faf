package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sportshoplabs/sportshop-backend/internal/catalog"
	pkgerrors "github.com/sportshoplabs/sportshop-backend/pkg/errors"
	"github.com/sportshoplabs/sportshop-backend/pkg/keylock"
)

type productLoader interface {
	GetProduct(ctx context.Context, id string) (*catalog.Product, error)
}

// Service exposes the cart mutations. Every mutation is a serialized
// read-modify-write over the subject's aggregate and recomputes the total
// from scratch, so the total invariant can never drift.
type Service interface {
	GetOrCreate(ctx context.Context, subjectID string) (*Cart, error)
	AddLine(ctx context.Context, subjectID, productID string, quantity int) (*Cart, error)
	SetQuantity(ctx context.Context, subjectID, productID string, quantity int) (*Cart, error)
	RemoveLine(ctx context.Context, subjectID, productID string) (*Cart, error)
	Clear(ctx context.Context, subjectID string) (*Cart, error)
}

type service struct {
	repo     Repository
	products productLoader
	locks    *keylock.KeyLock
	now      func() time.Time
}

// NewService builds a cart service backed by the provided stack.
func NewService(repo Repository, products productLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{
		repo:     repo,
		products: products,
		locks:    keylock.New(),
		now:      time.Now,
	}, nil
}

func (s *service) GetOrCreate(ctx context.Context, subjectID string) (*Cart, error) {
	if subjectID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "subject id is required")
	}

	unlock := s.locks.Lock(subjectID)
	defer unlock()

	return s.loadOrCreate(ctx, subjectID)
}

func (s *service) AddLine(ctx context.Context, subjectID, productID string, quantity int) (*Cart, error) {
	if subjectID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "subject id is required")
	}
	if productID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	// Resolve the product before taking the subject lock; the lock is never
	// held across a catalog call.
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(subjectID)
	defer unlock()

	cart, err := s.loadOrCreate(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Lines {
		if cart.Lines[i].ProductID == product.ID {
			cart.Lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Lines = append(cart.Lines, Line{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  quantity,
			ImageURL:  product.ImageURL,
		})
	}

	return s.persist(ctx, cart)
}

func (s *service) SetQuantity(ctx context.Context, subjectID, productID string, quantity int) (*Cart, error) {
	if subjectID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "subject id is required")
	}
	if productID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	unlock := s.locks.Lock(subjectID)
	defer unlock()

	cart, err := s.loadOrCreate(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range cart.Lines {
		if cart.Lines[i].ProductID == productID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found in cart")
	}

	if quantity <= 0 {
		cart.Lines = append(cart.Lines[:index], cart.Lines[index+1:]...)
	} else {
		cart.Lines[index].Quantity = quantity
	}

	return s.persist(ctx, cart)
}

func (s *service) RemoveLine(ctx context.Context, subjectID, productID string) (*Cart, error) {
	if subjectID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "subject id is required")
	}
	if productID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	unlock := s.locks.Lock(subjectID)
	defer unlock()

	cart, err := s.loadOrCreate(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	// Removing an absent line is a no-op, not an error.
	for i := range cart.Lines {
		if cart.Lines[i].ProductID == productID {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			return s.persist(ctx, cart)
		}
	}
	return cart, nil
}

func (s *service) Clear(ctx context.Context, subjectID string) (*Cart, error) {
	if subjectID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "subject id is required")
	}

	unlock := s.locks.Lock(subjectID)
	defer unlock()

	cart, err := s.loadOrCreate(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	cart.Lines = cart.Lines[:0]
	return s.persist(ctx, cart)
}

// loadOrCreate fetches the subject's cart, lazily creating the empty
// aggregate on first access. Callers must hold the subject lock.
func (s *service) loadOrCreate(ctx context.Context, subjectID string) (*Cart, error) {
	cart, err := s.repo.Find(ctx, subjectID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	now := s.now()
	cart = &Cart{
		ID:        "cart_" + subjectID,
		SubjectID: subjectID,
		Lines:     []Line{},
		Total:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create cart")
	}
	return cart, nil
}

func (s *service) persist(ctx context.Context, cart *Cart) (*Cart, error) {
	cart.Total = recomputeTotal(cart.Lines)
	cart.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return cart, nil
}

// recomputeTotal rebuilds the total from the lines using decimal math so
// repeated float additions cannot accumulate drift.
func recomputeTotal(lines []Line) float64 {
	total := decimal.Zero
	for _, line := range lines {
		price := decimal.NewFromFloat(line.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	out, _ := total.Float64()
	return out
}
