package outbound

import (
	"context"
	"errors"
)

// DrinkGenerator asks a language model for a cocktail suggestion. Implementations
// must return one of the sentinel errors below so callers can map failures to
// stable error codes.
type DrinkGenerator interface {
	GenerateDrink(ctx context.Context, prompt string) (*GeneratedDrink, error)
}

// GeneratedDrink is the model's suggestion before any validation or persistence.
type GeneratedDrink struct {
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	Instructions string                `json:"instructions"`
	Quote        string                `json:"quote"`
	Ingredients  []GeneratedIngredient `json:"ingredients"`
}

// GeneratedIngredient mirrors the schema the model is asked to fill.
type GeneratedIngredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// Sentinel errors for drink generation failures.
var (
	// ErrMissingAPIKey means no API key is configured; generation is disabled.
	ErrMissingAPIKey = errors.New("ai: api key not configured")
	// ErrRequestFailed covers transport errors and non-2xx responses.
	ErrRequestFailed = errors.New("ai: request failed")
	// ErrInvalidJSON means the model's output could not be parsed as JSON.
	ErrInvalidJSON = errors.New("ai: response is not valid json")
	// ErrInvalidShape means the JSON parsed but required fields are missing.
	ErrInvalidShape = errors.New("ai: response is missing required fields")
	// ErrEmptyOutput means the response carried no output text at all.
	ErrEmptyOutput = errors.New("ai: response contained no output")
)
