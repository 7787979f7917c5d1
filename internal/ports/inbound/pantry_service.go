package inbound

import (
	"context"

	"github.com/google/uuid"
)

// PantryService defines the use cases for pantry management and matching
type PantryService interface {
	GetPantry(ctx context.Context, userID uuid.UUID) ([]string, error)
	// UpdatePantry replaces the user's pantry with the ingredients parsed
	// from the raw text and returns the resulting key set.
	UpdatePantry(ctx context.Context, userID uuid.UUID, raw string) ([]string, error)
	GetMatches(ctx context.Context, userID uuid.UUID) (*MatchesDTO, error)
}

// MatchesDTO is the full classification of the catalog against a pantry.
// Almost is keyed by how many ingredients are missing; Counts always carries
// an entry for every bucket, zero included.
type MatchesDTO struct {
	PantryEmpty bool                 `json:"pantry_empty"`
	Possible    []DrinkDTO           `json:"possible"`
	Almost      map[int][]AlmostDTO  `json:"almost"`
	Counts      map[int]int          `json:"counts"`
}

// AlmostDTO pairs a drink with the pantry keys it still needs.
type AlmostDTO struct {
	Drink   DrinkDTO `json:"drink"`
	Missing []string `json:"missing"`
}
