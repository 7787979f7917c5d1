package inbound

import "context"

// AIService defines the use case for model-assisted drink suggestions
type AIService interface {
	Enabled() bool
	// SuggestDrink asks the model for a cocktail built around the given
	// ingredients or theme. The suggestion is not persisted; the caller
	// decides whether to submit it through DrinkService.CreateDrink.
	SuggestDrink(ctx context.Context, cmd SuggestDrinkCommand) (*SuggestionDTO, error)
}

// SuggestDrinkCommand describes what the user wants the model to work with
type SuggestDrinkCommand struct {
	Ingredients string
	Theme       string
	Language    string
}

// SuggestionDTO is a generated drink before it enters the catalog
type SuggestionDTO struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Instructions string          `json:"instructions"`
	Quote        string          `json:"quote,omitempty"`
	Ingredients  []IngredientDTO `json:"ingredients"`
}
