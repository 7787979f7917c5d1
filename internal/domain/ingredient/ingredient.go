// Package ingredient contains the core domain logic for ingredient identity.
// Every equality comparison in the catalog, the pantry, and the matching
// engine goes through the normalized key produced here.
package ingredient

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// Ingredient is a single recipe line: the free-form display name the author
// typed plus an optional amount. Identity is the normalized key of Name,
// never Name itself.
type Ingredient struct {
	Name   string
	Amount string
}

// Key returns the normalized key for the ingredient's name.
func (i Ingredient) Key() string {
	return Normalize(i.Name)
}

// Normalize canonicalizes a raw ingredient name: Unicode case folding,
// leading/trailing whitespace trimmed, and internal whitespace runs collapsed
// to a single ASCII space. Blank input yields "", which callers must treat as
// "no ingredient" and exclude from any set. Normalize is idempotent and total.
func Normalize(raw string) string {
	folded := cases.Fold().String(raw)
	return strings.Join(strings.Fields(folded), " ")
}

var (
	lineSplit = regexp.MustCompile(`[\r\n,;]+`)

	// amountSplit separates a line into name and amount on the first
	// "- | :" occurrence. The separator must be followed by whitespace so
	// hyphenated names like "7-up" survive intact.
	amountSplit = regexp.MustCompile(`\s*[-|:]\s+`)
)

// ParseLines turns free-text ingredient input into structured entries.
// Input is split on newlines, commas, and semicolons; within each segment the
// first "name - amount" style separator splits off the amount. Entries whose
// name normalizes to "" are dropped, and later duplicates of an already seen
// normalized key are silently skipped (the first occurrence keeps its casing
// and amount). ParseLines never fails; an empty result is a valid outcome
// that creation flows must reject themselves.
func ParseLines(input string) []Ingredient {
	var items []Ingredient
	seen := make(map[string]struct{})

	for _, line := range lineSplit.Split(input, -1) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		name, amount := line, ""
		if parts := amountSplit.Split(line, 2); len(parts) == 2 {
			name = strings.TrimSpace(parts[0])
			amount = strings.TrimSpace(parts[1])
		}

		key := Normalize(name)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		items = append(items, Ingredient{Name: name, Amount: amount})
	}

	return items
}

// Keys normalizes every raw entry, drops blanks, and deduplicates while
// preserving first-occurrence order.
func Keys(raw []string) []string {
	keys := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, r := range raw {
		k := Normalize(r)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	return keys
}
