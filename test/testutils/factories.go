package testutils

import (
	"fmt"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/j4rl/barcraft/internal/domain/drink"
	"github.com/j4rl/barcraft/internal/domain/ingredient"
	"github.com/j4rl/barcraft/internal/domain/user"
)

// DrinkBuilder provides a fluent interface for building test drinks
type DrinkBuilder struct {
	name         string
	description  string
	instructions string
	quote        string
	classic      bool
	ingredients  []ingredient.Ingredient
}

// NewDrinkBuilder creates a drink builder seeded with fake but valid data
func NewDrinkBuilder() *DrinkBuilder {
	faker := gofakeit.New(0)
	return &DrinkBuilder{
		name:         faker.BeerName(),
		description:  faker.Sentence(8),
		instructions: faker.Sentence(12),
		quote:        faker.Quote(),
		ingredients: []ingredient.Ingredient{
			{Name: "Gin", Amount: "4cl"},
			{Name: "Lime Juice", Amount: "2cl"},
		},
	}
}

// WithName sets the drink name
func (b *DrinkBuilder) WithName(name string) *DrinkBuilder {
	b.name = name
	return b
}

// WithClassic flags the drink as a house classic
func (b *DrinkBuilder) WithClassic(classic bool) *DrinkBuilder {
	b.classic = classic
	return b
}

// WithIngredients replaces the ingredient list with bare names
func (b *DrinkBuilder) WithIngredients(names ...string) *DrinkBuilder {
	b.ingredients = make([]ingredient.Ingredient, len(names))
	for i, n := range names {
		b.ingredients[i] = ingredient.Ingredient{Name: n}
	}
	return b
}

// Build constructs the drink, failing the test on invalid data
func (b *DrinkBuilder) Build(t *testing.T) *drink.Drink {
	t.Helper()
	d, err := drink.New(b.name, b.description, b.instructions, b.quote, b.classic, b.ingredients)
	require.NoError(t, err)
	return d
}

// UserBuilder provides a fluent interface for building test users
type UserBuilder struct {
	name     string
	email    string
	password string
	language string
	admin    bool
	approved bool
}

// NewUserBuilder creates a user builder seeded with fake but valid data
func NewUserBuilder() *UserBuilder {
	faker := gofakeit.New(0)
	return &UserBuilder{
		name:     faker.Name(),
		email:    fmt.Sprintf("%s@example.com", strings.ToLower(faker.Username())),
		password: "test-password",
		language: user.DefaultLanguage,
	}
}

// WithEmail sets the email address
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithAdmin makes the user an approved admin
func (b *UserBuilder) WithAdmin() *UserBuilder {
	b.admin = true
	b.approved = true
	return b
}

// Approved marks the account as approved
func (b *UserBuilder) Approved() *UserBuilder {
	b.approved = true
	return b
}

// Build constructs the user, failing the test on invalid data
func (b *UserBuilder) Build(t *testing.T) *user.User {
	t.Helper()
	u, err := user.New(b.name, b.email, b.password, b.language)
	require.NoError(t, err)
	if b.approved {
		u.Approve()
	}
	if b.admin {
		u.SetAdmin(true)
	}
	return u
}
