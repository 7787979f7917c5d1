// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"
)

// DrinkService defines the use cases for catalog management
// This is the primary port that HTTP handlers and other driving adapters will use
type DrinkService interface {
	// Commands
	CreateDrink(ctx context.Context, cmd CreateDrinkCommand) (*DrinkDTO, error)
	DeleteDrink(ctx context.Context, drinkID uuid.UUID) error
	SetClassic(ctx context.Context, drinkID uuid.UUID, classic bool) (*DrinkDTO, error)

	// Queries
	GetDrinkByID(ctx context.Context, drinkID uuid.UUID) (*DrinkDTO, error)
	ListDrinks(ctx context.Context, query string) ([]DrinkDTO, error)
	ListIngredientKeys(ctx context.Context) ([]string, error)
	GetCatalogStats(ctx context.Context) (*CatalogStatsDTO, error)
}

// CreateDrinkCommand contains data for adding a drink to the catalog.
// Ingredients carries the raw multi-line text exactly as the user typed it;
// parsing and deduplication happen inside the service.
type CreateDrinkCommand struct {
	Name         string
	Description  string
	Instructions string
	Quote        string
	Classic      bool
	Ingredients  string
}

// DrinkDTO is the data transfer object for drinks
type DrinkDTO struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Instructions string          `json:"instructions"`
	Quote        string          `json:"quote,omitempty"`
	IsClassic    bool            `json:"is_classic"`
	Ingredients  []IngredientDTO `json:"ingredients"`
	CreatedAt    string          `json:"created_at"`
}

// IngredientDTO carries one ingredient line as stored, plus its normalized key.
type IngredientDTO struct {
	Name   string `json:"name"`
	Amount string `json:"amount,omitempty"`
	Key    string `json:"key"`
}

// CatalogStatsDTO summarizes the catalog for the admin dashboard.
type CatalogStatsDTO struct {
	Drinks      int `json:"drinks"`
	Classics    int `json:"classics"`
	Ingredients int `json:"ingredients"`
}
