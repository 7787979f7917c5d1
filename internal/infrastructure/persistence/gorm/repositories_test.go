package gorm_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormdb "gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/j4rl/barcraft/internal/domain/drink"
	"github.com/j4rl/barcraft/internal/domain/ingredient"
	"github.com/j4rl/barcraft/internal/domain/user"
	gormrepo "github.com/j4rl/barcraft/internal/infrastructure/persistence/gorm"
	"github.com/j4rl/barcraft/internal/infrastructure/persistence/sqlite"
	"github.com/j4rl/barcraft/internal/ports/outbound"
	"github.com/j4rl/barcraft/test/testutils"
)

func newTestDB(t *testing.T) *gormdb.DB {
	t.Helper()

	db, err := sqlite.SetupDatabase(":memory:", logger.Silent)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a second connection would get its own empty in-memory database
	sqlDB.SetMaxOpenConns(1)

	return db
}

func buildDrink(t *testing.T, name string, classic bool, ingredients ...ingredient.Ingredient) *drink.Drink {
	t.Helper()
	d, err := drink.New(name, "A test drink.", "Mix everything.", "", classic, ingredients)
	require.NoError(t, err)
	return d
}

func TestDrinkRepositoryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := gormrepo.NewDrinkRepository(db)
	ctx := context.Background()

	d := buildDrink(t, "Gin Rickey", true,
		ingredient.Ingredient{Name: "Gin", Amount: "5cl"},
		ingredient.Ingredient{Name: "Lime Juice", Amount: "2cl"},
		ingredient.Ingredient{Name: "Soda Water", Amount: "top up"},
	)

	require.NoError(t, repo.Create(ctx, d))

	loaded, err := repo.FindByID(ctx, d.ID())
	require.NoError(t, err)

	assert.Equal(t, "Gin Rickey", loaded.Name())
	assert.True(t, loaded.IsClassic())
	require.Len(t, loaded.Ingredients(), 3)
	assert.Equal(t, "Gin", loaded.Ingredients()[0].Name)
	assert.Equal(t, "top up", loaded.Ingredients()[2].Amount)
	assert.Equal(t, []string{"gin", "lime juice", "soda water"}, loaded.RequiredKeys())
}

func TestDrinkRepositoryFindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := gormrepo.NewDrinkRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, drink.ErrNotFound)
}

func TestDrinkRepositoryFindAllOrder(t *testing.T) {
	db := newTestDB(t)
	repo := gormrepo.NewDrinkRepository(db)
	ctx := context.Background()

	gin := ingredient.Ingredient{Name: "Gin", Amount: "4cl"}
	require.NoError(t, repo.Create(ctx, buildDrink(t, "Vesper", false, gin)))
	require.NoError(t, repo.Create(ctx, buildDrink(t, "Negroni", true, gin)))
	require.NoError(t, repo.Create(ctx, buildDrink(t, "Aviation", false, gin)))
	require.NoError(t, repo.Create(ctx, buildDrink(t, "Gimlet", true, gin)))

	drinks, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, drinks, 4)

	names := make([]string, len(drinks))
	for i, d := range drinks {
		names[i] = d.Name()
	}
	assert.Equal(t, []string{"Gimlet", "Negroni", "Aviation", "Vesper"}, names)
}

func TestDrinkRepositoryUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := gormrepo.NewDrinkRepository(db)
	ctx := context.Background()

	d := buildDrink(t, "Negroni", false,
		ingredient.Ingredient{Name: "Gin", Amount: "3cl"},
	)
	require.NoError(t, repo.Create(ctx, d))

	updated := drink.Reconstitute(d.ID(), "Negroni", "Equal parts.", "Stir.", "", true,
		[]ingredient.Ingredient{
			{Name: "Gin", Amount: "3cl"},
			{Name: "Campari", Amount: "3cl"},
		}, d.CreatedAt())
	require.NoError(t, repo.Update(ctx, updated))

	loaded, err := repo.FindByID(ctx, d.ID())
	require.NoError(t, err)
	assert.True(t, loaded.IsClassic())
	assert.Equal(t, []string{"gin", "campari"}, loaded.RequiredKeys())
}

func TestDrinkRepositoryUpdateMissing(t *testing.T) {
	db := newTestDB(t)
	repo := gormrepo.NewDrinkRepository(db)

	ghost := testutils.NewDrinkBuilder().Build(t)
	err := repo.Update(context.Background(), ghost)
	assert.ErrorIs(t, err, drink.ErrNotFound)
}

func TestDrinkRepositoryDelete(t *testing.T) {
	db := newTestDB(t)
	repo := gormrepo.NewDrinkRepository(db)
	ctx := context.Background()

	d := buildDrink(t, "Negroni", false, ingredient.Ingredient{Name: "Gin"})
	require.NoError(t, repo.Create(ctx, d))
	require.NoError(t, repo.Delete(ctx, d.ID()))

	_, err := repo.FindByID(ctx, d.ID())
	assert.ErrorIs(t, err, drink.ErrNotFound)

	var links int64
	db.Model(&gormrepo.DrinkIngredientModel{}).Where("drink_id = ?", d.ID()).Count(&links)
	assert.Zero(t, links)

	assert.ErrorIs(t, repo.Delete(ctx, d.ID()), drink.ErrNotFound)
}

func TestDrinkRepositoryCount(t *testing.T) {
	db := newTestDB(t)
	repo := gormrepo.NewDrinkRepository(db)
	ctx := context.Background()

	gin := ingredient.Ingredient{Name: "Gin"}
	require.NoError(t, repo.Create(ctx, buildDrink(t, "Negroni", true, gin)))
	require.NoError(t, repo.Create(ctx, buildDrink(t, "Vesper", false, gin)))

	total, classics, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, classics)
}

func TestIngredientMasterRowsSharedAcrossDrinks(t *testing.T) {
	db := newTestDB(t)
	drinkRepo := gormrepo.NewDrinkRepository(db)
	ingredientRepo := gormrepo.NewIngredientRepository(db)
	ctx := context.Background()

	require.NoError(t, drinkRepo.Create(ctx, buildDrink(t, "Gimlet", false,
		ingredient.Ingredient{Name: "Gin", Amount: "5cl"},
		ingredient.Ingredient{Name: "Lime Juice", Amount: "2cl"},
	)))
	require.NoError(t, drinkRepo.Create(ctx, buildDrink(t, "Rickey", false,
		ingredient.Ingredient{Name: "GIN", Amount: "4cl"},
		ingredient.Ingredient{Name: "Soda Water"},
	)))

	keys, err := ingredientRepo.FindAllKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"gin", "lime juice", "soda water"}, keys)

	count, err := ingredientRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// the first writer's display name sticks
	var master gormrepo.IngredientModel
	require.NoError(t, db.Where("key = ?", "gin").First(&master).Error)
	assert.Equal(t, "Gin", master.Name)
}

func TestPantryRepositoryReplaceAndFind(t *testing.T) {
	db := newTestDB(t)
	userRepo := gormrepo.NewUserRepository(db)
	pantryRepo := gormrepo.NewPantryRepository(db)
	ctx := context.Background()

	u := testutils.NewUserBuilder().Approved().Build(t)
	require.NoError(t, userRepo.Create(ctx, u))

	require.NoError(t, pantryRepo.Replace(ctx, u.ID(), []string{"gin", "lime juice", "gin"}))

	keys, err := pantryRepo.FindKeys(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, []string{"gin", "lime juice"}, keys)

	require.NoError(t, pantryRepo.Replace(ctx, u.ID(), []string{"vodka"}))
	keys, err = pantryRepo.FindKeys(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, []string{"vodka"}, keys)

	require.NoError(t, pantryRepo.Replace(ctx, u.ID(), nil))
	keys, err = pantryRepo.FindKeys(ctx, u.ID())
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestUserRepositoryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := gormrepo.NewUserRepository(db)
	ctx := context.Background()

	u := testutils.NewUserBuilder().WithEmail("taylor@example.com").Approved().Build(t)
	require.NoError(t, repo.Create(ctx, u))

	byEmail, err := repo.FindByEmail(ctx, "taylor@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID(), byEmail.ID())
	assert.True(t, byEmail.IsApproved())
	assert.NoError(t, byEmail.CheckPassword("test-password"))

	exists, err := repo.ExistsByEmail(ctx, "taylor@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "other@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := gormrepo.NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutils.NewUserBuilder().WithEmail("dup@example.com").Build(t)))

	err := repo.Create(ctx, testutils.NewUserBuilder().WithEmail("dup@example.com").Build(t))
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestUserRepositoryDeleteRemovesPantry(t *testing.T) {
	db := newTestDB(t)
	userRepo := gormrepo.NewUserRepository(db)
	pantryRepo := gormrepo.NewPantryRepository(db)
	ctx := context.Background()

	u := testutils.NewUserBuilder().Build(t)
	require.NoError(t, userRepo.Create(ctx, u))
	require.NoError(t, pantryRepo.Replace(ctx, u.ID(), []string{"gin"}))

	require.NoError(t, userRepo.Delete(ctx, u.ID()))

	_, err := userRepo.FindByID(ctx, u.ID())
	assert.ErrorIs(t, err, user.ErrNotFound)

	var items int64
	db.Model(&gormrepo.PantryItemModel{}).Where("user_id = ?", u.ID()).Count(&items)
	assert.Zero(t, items)
}

func TestPasswordResetRequests(t *testing.T) {
	db := newTestDB(t)
	repo := gormrepo.NewUserRepository(db)
	ctx := context.Background()

	for _, email := range []string{"taylor@example.com", "casey@example.com"} {
		req := outbound.PasswordResetRequest{ID: uuid.New(), Email: email, CreatedAt: time.Now()}
		require.NoError(t, repo.CreatePasswordResetRequest(ctx, req))
	}

	requests, err := repo.FindPasswordResetRequests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 2)

	emails := []string{requests[0].Email, requests[1].Email}
	assert.Contains(t, emails, "taylor@example.com")
	assert.Contains(t, emails, "casey@example.com")
}

func TestSeedDatabase(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, sqlite.SeedDatabase(db))

	drinkRepo := gormrepo.NewDrinkRepository(db)
	total, classics, err := drinkRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 3, classics)

	userRepo := gormrepo.NewUserRepository(db)
	admin, err := userRepo.FindByEmail(context.Background(), "admin@barcraft.local")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.IsApproved())

	// seeding twice must not duplicate anything
	require.NoError(t, sqlite.SeedDatabase(db))
	total, _, err = drinkRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}
