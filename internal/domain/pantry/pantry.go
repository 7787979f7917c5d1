// Package pantry contains the per-user ingredient set and the matching
// engine that classifies the catalog against it.
package pantry

import (
	"sort"

	"github.com/j4rl/barcraft/internal/domain/ingredient"
)

// Pantry is a user's current set of normalized ingredient keys. A pantry is
// always the most recently saved set in full; it is never a union of
// historical submissions.
type Pantry struct {
	keys map[string]struct{}
}

// New builds a Pantry from raw ingredient names. Entries are normalized,
// blanks dropped, and duplicates collapsed.
func New(raw ...string) Pantry {
	keys := make(map[string]struct{}, len(raw))
	for _, k := range ingredient.Keys(raw) {
		keys[k] = struct{}{}
	}
	return Pantry{keys: keys}
}

// Len returns the number of distinct keys in the pantry.
func (p Pantry) Len() int {
	return len(p.keys)
}

// IsEmpty reports whether the pantry holds no ingredients.
func (p Pantry) IsEmpty() bool {
	return len(p.keys) == 0
}

// Has reports whether the pantry contains the given normalized key.
func (p Pantry) Has(key string) bool {
	_, ok := p.keys[key]
	return ok
}

// Keys returns the pantry's keys sorted ascending. The ordering is cosmetic;
// matching only uses membership.
func (p Pantry) Keys() []string {
	keys := make([]string, 0, len(p.keys))
	for k := range p.keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
