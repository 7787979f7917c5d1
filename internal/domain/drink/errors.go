package drink

import "errors"

// Domain errors for drink operations

var (
	ErrNameRequired         = errors.New("drink name is required")
	ErrInstructionsRequired = errors.New("drink instructions are required")
	ErrNoIngredients        = errors.New("drink must have at least one ingredient")
	ErrNotFound             = errors.New("drink not found")
)
