package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterBySearch returns the subsequence of products whose name, brand or
// description contains the query, case-insensitively. An empty query
// returns the input content unchanged. Pure substring containment, no
// tokenization or ranking.
func FilterBySearch(products []Product, query string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products
	}
	matches := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Brand), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			matches = append(matches, p)
		}
	}
	return matches
}

// Sort returns a new slice ordered by the given key. The input is never
// mutated; an unrecognized key keeps the input order. Ties keep their
// relative order (stable sort).
func Sort(products []Product, key SortKey) []Product {
	out := make([]Product, len(products))
	copy(out, products)

	switch key {
	case SortRatingHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortRatingLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating < out[j].Rating })
	case SortNameAsc:
		byName(out, false)
	case SortNameDesc:
		byName(out, true)
	}
	return out
}

func byName(products []Product, descending bool) {
	collator := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(products, func(i, j int) bool {
		cmp := collator.CompareString(products[i].Name, products[j].Name)
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
}
