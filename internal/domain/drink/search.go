package drink

import (
	"strings"

	"golang.org/x/text/cases"
)

// Search filters the catalog by a case-insensitive substring match against
// the concatenation of name, description, instructions, and quote. The same
// Unicode case folding as ingredient normalization is used, but whitespace is
// left untouched. A blank query returns the catalog unchanged, and matches
// preserve catalog order.
func Search(catalog []*Drink, query string) []*Drink {
	fold := cases.Fold()

	needle := fold.String(strings.TrimSpace(query))
	if needle == "" {
		return catalog
	}

	var results []*Drink
	for _, d := range catalog {
		haystack := fold.String(d.name + " " + d.description + " " + d.instructions + " " + d.quote)
		if strings.Contains(haystack, needle) {
			results = append(results, d)
		}
	}

	return results
}
