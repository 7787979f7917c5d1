// Package gorm provides GORM-based repository implementations
package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/j4rl/barcraft/internal/domain/drink"
	"github.com/j4rl/barcraft/internal/ports/outbound"
)

// DrinkRepository implements the drink repository interface using GORM
type DrinkRepository struct {
	db *gorm.DB
}

// NewDrinkRepository creates a new drink repository
func NewDrinkRepository(db *gorm.DB) outbound.DrinkRepository {
	return &DrinkRepository{db: db}
}

// Create stores a drink, its ingredient links and any new master ingredient
// rows in one transaction.
func (r *DrinkRepository) Create(ctx context.Context, d *drink.Drink) error {
	model := DrinkToModel(d)
	links := model.Ingredients
	model.Ingredients = nil

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		return r.insertLinks(tx, model.ID, links, d.RequiredKeys())
	})
}

// Update rewrites a drink and its ingredient list in one transaction
func (r *DrinkRepository) Update(ctx context.Context, d *drink.Drink) error {
	model := DrinkToModel(d)
	links := model.Ingredients
	model.Ingredients = nil

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&DrinkModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
			"name":         model.Name,
			"description":  model.Description,
			"instructions": model.Instructions,
			"quote":        model.Quote,
			"is_classic":   model.IsClassic,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return drink.ErrNotFound
		}

		if err := tx.Where("drink_id = ?", model.ID).Delete(&DrinkIngredientModel{}).Error; err != nil {
			return err
		}
		return r.insertLinks(tx, model.ID, links, d.RequiredKeys())
	})
}

// Delete removes a drink together with its ingredient links
func (r *DrinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("drink_id = ?", id).Delete(&DrinkIngredientModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&DrinkModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return drink.ErrNotFound
		}
		return nil
	})
}

// FindByID loads a drink with its ingredient links
func (r *DrinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*drink.Drink, error) {
	var model DrinkModel

	result := r.db.WithContext(ctx).
		Preload("Ingredients").
		First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, drink.ErrNotFound
		}
		return nil, result.Error
	}

	return ModelToDrink(&model), nil
}

// FindAll returns the whole catalog in display order: classics first, then
// alphabetically by name.
func (r *DrinkRepository) FindAll(ctx context.Context) ([]*drink.Drink, error) {
	var models []DrinkModel

	result := r.db.WithContext(ctx).
		Preload("Ingredients").
		Order("is_classic DESC, name ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	drinks := make([]*drink.Drink, len(models))
	for i := range models {
		drinks[i] = ModelToDrink(&models[i])
	}
	return drinks, nil
}

// Count returns the catalog size and how many entries are classics
func (r *DrinkRepository) Count(ctx context.Context) (int, int, error) {
	var total, classics int64

	if err := r.db.WithContext(ctx).Model(&DrinkModel{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).Model(&DrinkModel{}).Where("is_classic = ?", true).Count(&classics).Error; err != nil {
		return 0, 0, err
	}

	return int(total), int(classics), nil
}

// insertLinks upserts the master ingredient rows by normalized key and writes
// the link rows. links and keys are parallel: both follow the drink's
// deduplicated ingredient order.
func (r *DrinkRepository) insertLinks(tx *gorm.DB, drinkID uuid.UUID, links []DrinkIngredientModel, keys []string) error {
	for i := range links {
		master := IngredientModel{
			ID:   uuid.New(),
			Key:  keys[i],
			Name: links[i].Name,
		}
		// first writer wins; an existing row keeps its original display name
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).Create(&master).Error; err != nil {
			return err
		}

		var existing IngredientModel
		if err := tx.Where("key = ?", keys[i]).First(&existing).Error; err != nil {
			return err
		}

		links[i].DrinkID = drinkID
		links[i].IngredientID = existing.ID
		if err := tx.Create(&links[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
