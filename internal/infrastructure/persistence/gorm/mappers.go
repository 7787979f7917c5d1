// Package gorm provides mapping between domain entities and GORM models
package gorm

import (
	"sort"

	"github.com/j4rl/barcraft/internal/domain/drink"
	"github.com/j4rl/barcraft/internal/domain/ingredient"
	"github.com/j4rl/barcraft/internal/domain/user"
)

// UserToModel converts a domain user to a GORM model
func UserToModel(u *user.User) *UserModel {
	return &UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		Name:         u.Name(),
		PasswordHash: u.PasswordHash(),
		IsAdmin:      u.IsAdmin(),
		IsApproved:   u.IsApproved(),
		Language:     u.Language(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

// ModelToUser converts a GORM model to a domain user
func ModelToUser(model *UserModel) *user.User {
	return user.Reconstitute(
		model.ID,
		model.Name,
		model.Email,
		model.PasswordHash,
		model.IsAdmin,
		model.IsApproved,
		model.Language,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// DrinkToModel converts a domain drink to a GORM model. Ingredient link rows
// carry the ingredient ID only after the repository has upserted the master
// rows, so IngredientID is left zero here.
func DrinkToModel(d *drink.Drink) *DrinkModel {
	items := d.Ingredients()
	links := make([]DrinkIngredientModel, len(items))
	for i, item := range items {
		links[i] = DrinkIngredientModel{
			DrinkID:  d.ID(),
			Name:     item.Name,
			Amount:   item.Amount,
			Position: i,
		}
	}

	return &DrinkModel{
		ID:           d.ID(),
		Name:         d.Name(),
		Description:  d.Description(),
		Instructions: d.Instructions(),
		Quote:        d.Quote(),
		IsClassic:    d.IsClassic(),
		CreatedAt:    d.CreatedAt(),
		Ingredients:  links,
	}
}

// ModelToDrink converts a GORM model to a domain drink. Link rows are sorted
// by position so the author's ordering survives the round trip.
func ModelToDrink(model *DrinkModel) *drink.Drink {
	links := make([]DrinkIngredientModel, len(model.Ingredients))
	copy(links, model.Ingredients)
	sort.Slice(links, func(i, j int) bool { return links[i].Position < links[j].Position })

	items := make([]ingredient.Ingredient, len(links))
	for i, link := range links {
		items[i] = ingredient.Ingredient{
			Name:   link.Name,
			Amount: link.Amount,
		}
	}

	return drink.Reconstitute(
		model.ID,
		model.Name,
		model.Description,
		model.Instructions,
		model.Quote,
		model.IsClassic,
		items,
		model.CreatedAt,
	)
}
