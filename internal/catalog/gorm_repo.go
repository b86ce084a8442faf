package catalog

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// GormRepository serves the catalog from a relational backend. It satisfies
// the same contract as MemoryRepository so the two are interchangeable.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository constructs a catalog repository bound to the provided DB.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) FindByID(ctx context.Context, id string) (*Product, error) {
	var product Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *GormRepository) List(ctx context.Context, filters Filters) ([]Product, error) {
	query := r.db.WithContext(ctx).Model(&Product{})

	if category := strings.ToLower(strings.TrimSpace(filters.Category)); category != "" {
		query = query.Where("LOWER(category) = ? OR LOWER(sport) = ?", category, category)
	}
	if search := strings.ToLower(strings.TrimSpace(filters.Search)); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var products []Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ReplaceAll swaps the catalog contents atomically.
func (r *GormRepository) ReplaceAll(ctx context.Context, products []Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Product{}).Error; err != nil {
			return err
		}
		if len(products) == 0 {
			return nil
		}
		return tx.Create(&products).Error
	})
}

func (r *GormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
