// Package sqlite provides SQLite database setup and configuration
package sqlite

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/j4rl/barcraft/internal/domain/drink"
	"github.com/j4rl/barcraft/internal/domain/ingredient"
	"github.com/j4rl/barcraft/internal/domain/user"
	gormModels "github.com/j4rl/barcraft/internal/infrastructure/persistence/gorm"
)

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&gormModels.UserModel{},
		&gormModels.DrinkModel{},
		&gormModels.IngredientModel{},
		&gormModels.DrinkIngredientModel{},
		&gormModels.PantryItemModel{},
		&gormModels.PasswordResetRequestModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedDatabase populates an empty database with the house classics and a
// bootstrap admin account (admin@barcraft.local / barcraft, approved). Change
// the password after first sign-in.
func SeedDatabase(db *gorm.DB) error {
	var drinkCount int64
	db.Model(&gormModels.DrinkModel{}).Count(&drinkCount)
	if drinkCount > 0 {
		return nil
	}

	ctx := context.Background()

	admin, err := user.New("Admin", "admin@barcraft.local", "barcraft", "")
	if err != nil {
		return fmt.Errorf("failed to build admin account: %w", err)
	}
	admin.Approve()
	admin.SetAdmin(true)

	if err := gormModels.NewUserRepository(db).Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	classics := []struct {
		name         string
		description  string
		instructions string
		quote        string
		ingredients  []ingredient.Ingredient
	}{
		{
			name:         "Gin Rickey",
			description:  "A dry, fizzy highball from the 1880s.",
			instructions: "Build over ice in a highball glass, squeeze in the lime half, top with soda water.",
			quote:        "The drink that survives the summer.",
			ingredients: []ingredient.Ingredient{
				{Name: "Gin", Amount: "5cl"},
				{Name: "Lime Juice", Amount: "2cl"},
				{Name: "Soda Water", Amount: "top up"},
			},
		},
		{
			name:         "Negroni",
			description:  "Equal parts, endless arguments about the garnish.",
			instructions: "Stir all ingredients with ice, strain over a large cube, garnish with an orange peel.",
			quote:        "Bitter is better.",
			ingredients: []ingredient.Ingredient{
				{Name: "Gin", Amount: "3cl"},
				{Name: "Campari", Amount: "3cl"},
				{Name: "Sweet Vermouth", Amount: "3cl"},
			},
		},
		{
			name:         "Whiskey Sour",
			description:  "The template every other sour is measured against.",
			instructions: "Shake hard with ice, strain into a chilled coupe. Dry shake first if using egg white.",
			quote:        "Sharp enough to wake you, soft enough to stay.",
			ingredients: []ingredient.Ingredient{
				{Name: "Bourbon", Amount: "5cl"},
				{Name: "Lemon Juice", Amount: "2.5cl"},
				{Name: "Sugar Syrup", Amount: "1.5cl"},
			},
		},
	}

	drinkRepo := gormModels.NewDrinkRepository(db)
	for _, c := range classics {
		d, err := drink.New(c.name, c.description, c.instructions, c.quote, true, c.ingredients)
		if err != nil {
			return fmt.Errorf("failed to build classic %q: %w", c.name, err)
		}
		if err := drinkRepo.Create(ctx, d); err != nil {
			return fmt.Errorf("failed to seed classic %q: %w", c.name, err)
		}
	}

	return nil
}
