package pantry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("normalizes and deduplicates", func(t *testing.T) {
		p := New("Lime", "lime", "LIME ", "Gin")

		assert.Equal(t, 2, p.Len())
		assert.True(t, p.Has("lime"))
		assert.True(t, p.Has("gin"))
		assert.False(t, p.Has("Lime"))
	})

	t.Run("drops blanks", func(t *testing.T) {
		p := New("", "  ", "\t")

		assert.True(t, p.IsEmpty())
	})

	t.Run("keys sorted ascending", func(t *testing.T) {
		p := New("soda water", "gin", "lime juice")

		assert.Equal(t, []string{"gin", "lime juice", "soda water"}, p.Keys())
	})
}
