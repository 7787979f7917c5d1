package pantry

import (
	"github.com/j4rl/barcraft/internal/domain/drink"
)

// MaxMissing is the largest number of missing ingredients for which a drink
// still appears in the "almost" views. Drinks missing more are dropped from
// matching results entirely.
const MaxMissing = 2

// AlmostDrink pairs a drink with the normalized keys it is missing from the
// pantry, in the drink's required-key order.
type AlmostDrink struct {
	Drink   *drink.Drink
	Missing []string
}

// MatchResult is the classification of a catalog against a pantry. Each
// drink appears in at most one bucket. Counts always cover the full catalog,
// independent of any display-side bucket filter.
type MatchResult struct {
	Possible []*drink.Drink
	Almost   map[int][]AlmostDrink
	Counts   map[int]int
}

// Classify walks the catalog in order and buckets every drink by how many of
// its required ingredients the pantry lacks: zero missing is possible, one or
// two missing land in the almost bucket of that size, and anything beyond
// MaxMissing is dropped. Drinks with an empty required set are skipped
// entirely, and an empty pantry classifies nothing at all. Classify is a pure
// function of its inputs; bucket order is catalog order.
func Classify(catalog []*drink.Drink, p Pantry) MatchResult {
	result := MatchResult{
		Almost: make(map[int][]AlmostDrink, MaxMissing),
		Counts: make(map[int]int, MaxMissing),
	}
	for n := 1; n <= MaxMissing; n++ {
		result.Counts[n] = 0
	}

	// An empty pantry would leave every drink fully missing; nothing is
	// surfaced rather than flooding the almost views.
	if p.IsEmpty() {
		return result
	}

	for _, d := range catalog {
		required := d.RequiredKeys()
		if len(required) == 0 {
			continue
		}

		var missing []string
		for _, key := range required {
			if !p.Has(key) {
				missing = append(missing, key)
			}
		}

		switch n := len(missing); {
		case n == 0:
			result.Possible = append(result.Possible, d)
		case n <= MaxMissing:
			result.Almost[n] = append(result.Almost[n], AlmostDrink{Drink: d, Missing: missing})
			result.Counts[n]++
		}
	}

	return result
}
