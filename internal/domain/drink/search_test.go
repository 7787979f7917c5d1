package drink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j4rl/barcraft/internal/domain/ingredient"
)

func searchCatalog(t *testing.T) []*Drink {
	t.Helper()

	mk := func(name, description, instructions, quote string) *Drink {
		d, err := New(name, description, instructions, quote, false, []ingredient.Ingredient{{Name: "gin"}})
		require.NoError(t, err)
		return d
	}

	return []*Drink{
		mk("Tom Collins", "A tall gin fizz for warm evenings", "Build over ice.", ""),
		mk("Moscow Mule", "Vodka and ginger beer", "Serve in a copper mug.", "As cold as Moscow"),
		mk("Negroni", "Bitter and bold", "Stir with ice.", "One is never enough"),
	}
}

func TestSearch(t *testing.T) {
	catalog := searchCatalog(t)

	t.Run("blank query returns catalog unchanged", func(t *testing.T) {
		assert.Equal(t, catalog, Search(catalog, ""))
		assert.Equal(t, catalog, Search(catalog, "   "))
	})

	t.Run("case-insensitive match in description", func(t *testing.T) {
		results := Search(catalog, "GIN")

		require.Len(t, results, 2)
		assert.Equal(t, "Tom Collins", results[0].Name())
		assert.Equal(t, "Moscow Mule", results[1].Name())
	})

	t.Run("matches quote field", func(t *testing.T) {
		results := Search(catalog, "never enough")

		require.Len(t, results, 1)
		assert.Equal(t, "Negroni", results[0].Name())
	})

	t.Run("matches instructions field", func(t *testing.T) {
		results := Search(catalog, "copper mug")

		require.Len(t, results, 1)
		assert.Equal(t, "Moscow Mule", results[0].Name())
	})

	t.Run("no whitespace collapsing in search", func(t *testing.T) {
		// "gin  fizz" (two spaces) does not appear verbatim anywhere
		assert.Empty(t, Search(catalog, "gin  fizz"))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, Search(catalog, "absinthe"))
	})

	t.Run("preserves catalog order", func(t *testing.T) {
		results := Search(catalog, "ice")

		require.Len(t, results, 2)
		assert.Equal(t, "Tom Collins", results[0].Name())
		assert.Equal(t, "Negroni", results[1].Name())
	})
}
