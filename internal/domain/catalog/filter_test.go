package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleProducts() []Product {
	return []Product{
		{ID: "p1", Name: "Niacinamide Serum", Brand: "The Ordinary", Rating: 88, Description: "Brightening serum"},
		{ID: "p2", Name: "Ceramide Cream", Brand: "CeraVe", Rating: 75, Description: "Barrier repair moisturizer"},
		{ID: "p3", Name: "Azelaic Acid", Brand: "Paula's Choice", Rating: 82, Description: "Redness relief"},
		{ID: "p4", Name: "Alcohol Toner", Brand: "Generic", Rating: 30, Description: "Drying astringent"},
	}
}

func TestFilterBySearchEmptyQuery(t *testing.T) {
	products := sampleProducts()
	require.Equal(t, products, FilterBySearch(products, ""))
	require.Equal(t, products, FilterBySearch(products, "   "))
}

func TestFilterBySearchCaseInsensitiveSubstring(t *testing.T) {
	got := FilterBySearch(sampleProducts(), "niacin")
	require.Len(t, got, 1)
	require.Equal(t, "p1", got[0].ID)

	got = FilterBySearch(sampleProducts(), "CERAVE")
	require.Len(t, got, 1)
	require.Equal(t, "p2", got[0].ID)

	got = FilterBySearch(sampleProducts(), "moisturizer")
	require.Len(t, got, 1)
	require.Equal(t, "p2", got[0].ID)
}

func TestFilterBySearchNoMatch(t *testing.T) {
	require.Empty(t, FilterBySearch(sampleProducts(), "retinol"))
}

func TestSortByRating(t *testing.T) {
	high := Sort(sampleProducts(), SortRatingHigh)
	require.Equal(t, []string{"p1", "p3", "p2", "p4"}, ids(high))

	low := Sort(high, SortRatingLow)
	require.Equal(t, []string{"p4", "p2", "p3", "p1"}, ids(low))
}

func TestSortByName(t *testing.T) {
	asc := Sort(sampleProducts(), SortNameAsc)
	require.Equal(t, []string{"p4", "p3", "p2", "p1"}, ids(asc))

	desc := Sort(sampleProducts(), SortNameDesc)
	require.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids(desc))
}

func TestSortUnknownKeyKeepsOrder(t *testing.T) {
	products := sampleProducts()
	require.Equal(t, ids(products), ids(Sort(products, SortKey("popularity"))))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	_ = Sort(products, SortRatingHigh)
	require.Equal(t, ids(sampleProducts()), ids(products))
}

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
