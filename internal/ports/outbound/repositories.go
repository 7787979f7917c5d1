// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/j4rl/barcraft/internal/domain/drink"
	"github.com/j4rl/barcraft/internal/domain/user"
)

// DrinkRepository defines the interface for drink persistence.
// FindAll returns the catalog in display order: classics first, then by name.
type DrinkRepository interface {
	Create(ctx context.Context, d *drink.Drink) error
	Update(ctx context.Context, d *drink.Drink) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*drink.Drink, error)
	FindAll(ctx context.Context) ([]*drink.Drink, error)
	Count(ctx context.Context) (total, classics int, err error)
}

// IngredientRepository exposes the master ingredient list built up from every
// stored drink. Ingredients are identified by their normalized key.
type IngredientRepository interface {
	FindAllKeys(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}

// PantryRepository persists each user's pantry as a set of normalized keys.
type PantryRepository interface {
	FindKeys(ctx context.Context, userID uuid.UUID) ([]string, error)
	// Replace swaps the user's entire pantry for the given keys in one
	// transaction. An empty slice clears the pantry.
	Replace(ctx context.Context, userID uuid.UUID, keys []string) error
}

// UserRepository defines the interface for user persistence
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindAll(ctx context.Context) ([]*user.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CreatePasswordResetRequest(ctx context.Context, req PasswordResetRequest) error
	FindPasswordResetRequests(ctx context.Context) ([]PasswordResetRequest, error)
}

// PasswordResetRequest is a stored request waiting for an admin to act on.
// No email goes out; admins review these from the user list.
type PasswordResetRequest struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
