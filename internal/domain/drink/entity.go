// Package drink contains the core domain logic for the cocktail catalog.
package drink

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/j4rl/barcraft/internal/domain/ingredient"
)

// Drink represents a cocktail recipe in the catalog. Ingredients keep the
// author's ordering and casing; the required-key set is derived from them at
// construction and is what the matching engine compares against a pantry.
type Drink struct {
	id           uuid.UUID
	name         string
	description  string
	instructions string
	quote        string
	classic      bool
	ingredients  []ingredient.Ingredient
	requiredKeys []string
	createdAt    time.Time
}

// New creates a new Drink with validation. The ingredient list must
// contain at least one entry whose name normalizes to a non-empty key.
func New(name, description, instructions, quote string, classic bool, ingredients []ingredient.Ingredient) (*Drink, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	instructions = strings.TrimSpace(instructions)
	if instructions == "" {
		return nil, ErrInstructionsRequired
	}

	items, keys := dedupeIngredients(ingredients)
	if len(keys) == 0 {
		return nil, ErrNoIngredients
	}

	return &Drink{
		id:           uuid.New(),
		name:         name,
		description:  strings.TrimSpace(description),
		instructions: instructions,
		quote:        strings.TrimSpace(quote),
		classic:      classic,
		ingredients:  items,
		requiredKeys: keys,
		createdAt:    time.Now(),
	}, nil
}

// Reconstitute rebuilds a Drink from persisted state. It recomputes the
// required-key set from the stored ingredient list rather than trusting a
// cached copy, so stale keys can never leak into matching.
func Reconstitute(id uuid.UUID, name, description, instructions, quote string, classic bool, ingredients []ingredient.Ingredient, createdAt time.Time) *Drink {
	items, keys := dedupeIngredients(ingredients)

	return &Drink{
		id:           id,
		name:         name,
		description:  description,
		instructions: instructions,
		quote:        quote,
		classic:      classic,
		ingredients:  items,
		requiredKeys: keys,
		createdAt:    createdAt,
	}
}

// dedupeIngredients drops blank-keyed entries and later duplicates, keeping
// first-occurrence order for both the display list and the key set.
func dedupeIngredients(in []ingredient.Ingredient) ([]ingredient.Ingredient, []string) {
	items := make([]ingredient.Ingredient, 0, len(in))
	keys := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))

	for _, item := range in {
		key := item.Key()
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		items = append(items, item)
		keys = append(keys, key)
	}

	return items, keys
}

// ID returns the drink's unique identifier.
func (d *Drink) ID() uuid.UUID {
	return d.id
}

// Name returns the drink's display name.
func (d *Drink) Name() string {
	return d.name
}

// Description returns the drink's description.
func (d *Drink) Description() string {
	return d.description
}

// Instructions returns the preparation instructions.
func (d *Drink) Instructions() string {
	return d.instructions
}

// Quote returns the drink's tagline.
func (d *Drink) Quote() string {
	return d.quote
}

// IsClassic reports whether the drink is a house classic rather than a user
// submission.
func (d *Drink) IsClassic() bool {
	return d.classic
}

// Ingredients returns the ordered ingredient list.
func (d *Drink) Ingredients() []ingredient.Ingredient {
	return d.ingredients
}

// RequiredKeys returns the deduplicated normalized keys this drink needs,
// in first-occurrence order.
func (d *Drink) RequiredKeys() []string {
	return d.requiredKeys
}

// CreatedAt returns when the drink was created.
func (d *Drink) CreatedAt() time.Time {
	return d.createdAt
}
