package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/j4rl/barcraft/internal/ports/outbound"
)

// IngredientRepository implements the ingredient repository interface using GORM
type IngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) outbound.IngredientRepository {
	return &IngredientRepository{db: db}
}

// FindAllKeys returns every known normalized ingredient key, sorted
func (r *IngredientRepository) FindAllKeys(ctx context.Context) ([]string, error) {
	var keys []string

	result := r.db.WithContext(ctx).
		Model(&IngredientModel{}).
		Order("key ASC").
		Pluck("key", &keys)
	if result.Error != nil {
		return nil, result.Error
	}

	return keys, nil
}

// Count returns the number of distinct ingredients
func (r *IngredientRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&IngredientModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}
