package gorm

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/j4rl/barcraft/internal/ports/outbound"
)

// PantryRepository implements the pantry repository interface using GORM
type PantryRepository struct {
	db *gorm.DB
}

// NewPantryRepository creates a new pantry repository
func NewPantryRepository(db *gorm.DB) outbound.PantryRepository {
	return &PantryRepository{db: db}
}

// FindKeys returns the user's stored pantry keys
func (r *PantryRepository) FindKeys(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var keys []string

	result := r.db.WithContext(ctx).
		Model(&PantryItemModel{}).
		Where("user_id = ?", userID).
		Order("key ASC").
		Pluck("key", &keys)
	if result.Error != nil {
		return nil, result.Error
	}

	return keys, nil
}

// Replace swaps the user's whole pantry for the given keys in one
// transaction. A failed insert rolls back the delete, so a pantry is never
// lost to a partial write.
func (r *PantryRepository) Replace(ctx context.Context, userID uuid.UUID, keys []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&PantryItemModel{}).Error; err != nil {
			return err
		}

		if len(keys) == 0 {
			return nil
		}

		items := make([]PantryItemModel, 0, len(keys))
		seen := make(map[string]struct{}, len(keys))
		for _, key := range keys {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			items = append(items, PantryItemModel{UserID: userID, Key: key})
		}

		return tx.Create(&items).Error
	})
}
