package pantry

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j4rl/barcraft/internal/domain/drink"
	"github.com/j4rl/barcraft/internal/domain/ingredient"
)

func mkDrink(t *testing.T, name string, classic bool, ingredients ...string) *drink.Drink {
	t.Helper()

	items := make([]ingredient.Ingredient, len(ingredients))
	for i, n := range ingredients {
		items[i] = ingredient.Ingredient{Name: n}
	}

	d, err := drink.New(name, "", "Mix well.", "", classic, items)
	require.NoError(t, err)
	return d
}

func TestClassify(t *testing.T) {
	t.Run("buckets by missing count", func(t *testing.T) {
		catalog := []*drink.Drink{
			mkDrink(t, "Rickey", false, "gin", "lime", "soda"),
			mkDrink(t, "Vodka Tonic", false, "vodka", "tonic"),
		}
		p := New("gin", "lime")

		result := Classify(catalog, p)

		assert.Empty(t, result.Possible)

		require.Len(t, result.Almost[1], 1)
		assert.Equal(t, "Rickey", result.Almost[1][0].Drink.Name())
		assert.Equal(t, []string{"soda"}, result.Almost[1][0].Missing)

		require.Len(t, result.Almost[2], 1)
		assert.Equal(t, "Vodka Tonic", result.Almost[2][0].Drink.Name())
		assert.Equal(t, []string{"vodka", "tonic"}, result.Almost[2][0].Missing)

		assert.Equal(t, map[int]int{1: 1, 2: 1}, result.Counts)
	})

	t.Run("possible when all required keys present", func(t *testing.T) {
		catalog := []*drink.Drink{mkDrink(t, "Gin Sour", false, "gin", "lemon")}
		p := New("gin", "lemon", "sugar")

		result := Classify(catalog, p)

		require.Len(t, result.Possible, 1)
		assert.Equal(t, "Gin Sour", result.Possible[0].Name())
		assert.Empty(t, result.Almost[1])
		assert.Empty(t, result.Almost[2])
	})

	t.Run("empty pantry classifies nothing", func(t *testing.T) {
		catalog := []*drink.Drink{
			mkDrink(t, "Rickey", false, "gin", "lime", "soda"),
			mkDrink(t, "Shot", false, "vodka"),
		}

		result := Classify(catalog, New())

		assert.Empty(t, result.Possible)
		assert.Empty(t, result.Almost[1])
		assert.Empty(t, result.Almost[2])
		assert.Equal(t, map[int]int{1: 0, 2: 0}, result.Counts)
	})

	t.Run("three or more missing dropped", func(t *testing.T) {
		catalog := []*drink.Drink{
			mkDrink(t, "Zombie", false, "light rum", "dark rum", "apricot brandy", "lime"),
		}
		p := New("lime")

		result := Classify(catalog, p)

		assert.Empty(t, result.Possible)
		assert.Empty(t, result.Almost[1])
		assert.Empty(t, result.Almost[2])
	})

	t.Run("empty required set excluded from every bucket", func(t *testing.T) {
		// only reachable through reconstitution of bad stored data; the
		// constructor rejects drinks without ingredients
		hollow := drink.Reconstitute(uuid.New(), "Hollow", "", "Stare at the glass.", "", false,
			[]ingredient.Ingredient{{Name: "   "}}, time.Now())
		catalog := []*drink.Drink{hollow, mkDrink(t, "Gin Neat", false, "gin")}
		p := New("gin")

		result := Classify(catalog, p)

		require.Len(t, result.Possible, 1)
		assert.Equal(t, "Gin Neat", result.Possible[0].Name())
		assert.Empty(t, result.Almost[1])
		assert.Empty(t, result.Almost[2])
	})

	t.Run("buckets are mutually exclusive", func(t *testing.T) {
		catalog := []*drink.Drink{
			mkDrink(t, "A", false, "gin"),
			mkDrink(t, "B", false, "gin", "x"),
			mkDrink(t, "C", false, "gin", "x", "y"),
		}
		p := New("gin")

		result := Classify(catalog, p)

		seen := map[string]int{}
		for _, d := range result.Possible {
			seen[d.Name()]++
		}
		for n := 1; n <= MaxMissing; n++ {
			for _, a := range result.Almost[n] {
				seen[a.Drink.Name()]++
			}
		}
		for name, count := range seen {
			assert.Equal(t, 1, count, "drink %s appears in more than one bucket", name)
		}
		assert.Len(t, seen, 3)
	})

	t.Run("catalog order preserved within buckets", func(t *testing.T) {
		catalog := []*drink.Drink{
			mkDrink(t, "Bravo", true, "gin", "x1"),
			mkDrink(t, "Alpha", false, "gin", "x2"),
			mkDrink(t, "Charlie", false, "gin", "x3"),
		}
		p := New("gin")

		result := Classify(catalog, p)

		require.Len(t, result.Almost[1], 3)
		assert.Equal(t, "Bravo", result.Almost[1][0].Drink.Name())
		assert.Equal(t, "Alpha", result.Almost[1][1].Drink.Name())
		assert.Equal(t, "Charlie", result.Almost[1][2].Drink.Name())
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		catalog := []*drink.Drink{
			mkDrink(t, "Rickey", false, "gin", "lime", "soda"),
			mkDrink(t, "Martini", true, "gin", "dry vermouth"),
			mkDrink(t, "Gin Neat", false, "gin"),
		}
		p := New("gin", "lime")

		first := Classify(catalog, p)
		second := Classify(catalog, p)

		assert.Equal(t, first, second)
	})

	t.Run("possible subset property", func(t *testing.T) {
		catalog := []*drink.Drink{
			mkDrink(t, "A", false, "gin", "lime"),
			mkDrink(t, "B", false, "gin", "tonic"),
			mkDrink(t, "C", false, "rum"),
		}
		p := New("gin", "lime", "rum")

		result := Classify(catalog, p)

		for _, d := range result.Possible {
			for _, key := range d.RequiredKeys() {
				assert.True(t, p.Has(key), "possible drink %s missing %s", d.Name(), key)
			}
		}
		for _, a := range result.Almost[1] {
			assert.Len(t, a.Missing, 1)
		}
		for _, a := range result.Almost[2] {
			assert.Len(t, a.Missing, 2)
		}
	})
}
