package productcontroller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipd-emporium/emporium-api/models"
)

func catalogFixture() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Wireless Headphones", Description: "Noise cancelling over-ear", Price: 45000, Category: "electronics", Rating: 4.5, Featured: true, Stock: 10},
		{ID: 2, Name: "Leather Wallet", Description: "Handmade brown leather", Price: 12000, SalePrice: 9500, Category: "accessories", Rating: 4.8, Stock: 25},
		{ID: 3, Name: "Running Shoes", Description: "Lightweight trainers", Price: 38000, Category: "footwear", Rating: 4.2, Featured: true, Stock: 8},
		{ID: 4, Name: "Desk Lamp", Description: "LED with wireless charging pad", Price: 15500, Category: "electronics", Rating: 3.9, Stock: 40},
		{ID: 5, Name: "Silk Scarf", Description: "Printed silk", Price: 9500, Category: "accessories", Rating: 4.8, Stock: 0},
	}
}

func ids(products []models.Product) []uint {
	out := make([]uint, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterProductsNoParamsReturnsAll(t *testing.T) {
	catalog := catalogFixture()
	got := FilterProducts(catalog, FilterParams{})
	assert.Equal(t, []uint{1, 2, 3, 4, 5}, ids(got))
}

func TestFilterProductsIsIdempotent(t *testing.T) {
	catalog := catalogFixture()
	params := FilterParams{Category: "electronics", SortBy: SortPriceLow}

	once := FilterProducts(catalog, params)
	twice := FilterProducts(once, params)
	assert.Equal(t, once, twice)
}

func TestFilterProductsDoesNotMutateInput(t *testing.T) {
	catalog := catalogFixture()
	original := catalogFixture()

	FilterProducts(catalog, FilterParams{SortBy: SortPriceHigh})
	assert.Equal(t, original, catalog)
}

func TestFilterProductsSearchMatchesNameAndDescription(t *testing.T) {
	catalog := catalogFixture()

	// "wireless" appears in one name and one description
	got := FilterProducts(catalog, FilterParams{Query: "  WIRELESS "})
	assert.Equal(t, []uint{1, 4}, ids(got))

	got = FilterProducts(catalog, FilterParams{Query: "no such thing"})
	assert.Empty(t, got)
}

func TestFilterProductsCategory(t *testing.T) {
	catalog := catalogFixture()

	got := FilterProducts(catalog, FilterParams{Category: "accessories"})
	assert.Equal(t, []uint{2, 5}, ids(got))

	// "all" and "" both mean no category filter
	assert.Len(t, FilterProducts(catalog, FilterParams{Category: "all"}), 5)
	assert.Len(t, FilterProducts(catalog, FilterParams{Category: ""}), 5)
}

func TestFilterProductsPriceRangeUsesEffectivePrice(t *testing.T) {
	catalog := catalogFixture()

	// The wallet lists at 12000 but sells at 9500, so a 10000 ceiling keeps it.
	got := FilterProducts(catalog, FilterParams{MaxPrice: 10000})
	assert.Equal(t, []uint{2, 5}, ids(got))

	got = FilterProducts(catalog, FilterParams{MinPrice: 10000, MaxPrice: 40000})
	assert.Equal(t, []uint{3, 4}, ids(got))

	// MaxPrice zero means unbounded, not "free items only".
	got = FilterProducts(catalog, FilterParams{MinPrice: 0, MaxPrice: 0})
	assert.Len(t, got, 5)
}

func TestFilterProductsSortPriceLowAndHighAreReverses(t *testing.T) {
	// Reversal only holds when all effective prices are distinct; with a
	// tie, stable sorting keeps catalog order in both directions.
	catalog := []models.Product{
		{ID: 1, Name: "Headphones", Price: 45000},
		{ID: 2, Name: "Wallet", Price: 12000, SalePrice: 9500},
		{ID: 3, Name: "Shoes", Price: 38000},
		{ID: 4, Name: "Lamp", Price: 15500},
	}

	low := FilterProducts(catalog, FilterParams{SortBy: SortPriceLow})
	high := FilterProducts(catalog, FilterParams{SortBy: SortPriceHigh})
	require.Len(t, low, 4)

	assert.Equal(t, []uint{2, 4, 3, 1}, ids(low))
	for i := range low {
		assert.Equal(t, low[i].ID, high[len(high)-1-i].ID)
	}
}

func TestFilterProductsSortPriceLowTiesKeepCatalogOrder(t *testing.T) {
	catalog := catalogFixture()

	// Wallet (sale 9500) and scarf (9500) tie on effective price; the wallet
	// comes first in the catalog so it must stay first.
	got := FilterProducts(catalog, FilterParams{SortBy: SortPriceLow})
	require.Len(t, got, 5)
	assert.Equal(t, uint(2), got[0].ID)
	assert.Equal(t, uint(5), got[1].ID)
}

func TestFilterProductsSortRatingTiesKeepCatalogOrder(t *testing.T) {
	catalog := catalogFixture()

	got := FilterProducts(catalog, FilterParams{SortBy: SortRating})
	require.Len(t, got, 5)
	// Two products share 4.8; catalog order breaks the tie.
	assert.Equal(t, []uint{2, 5, 1, 3, 4}, ids(got))
}

func TestFilterProductsSortFeaturedFirst(t *testing.T) {
	catalog := catalogFixture()

	got := FilterProducts(catalog, FilterParams{SortBy: SortFeatured})
	assert.Equal(t, []uint{1, 3, 2, 4, 5}, ids(got))
}

func TestFilterProductsSortNewestKeepsCatalogOrder(t *testing.T) {
	catalog := catalogFixture()

	got := FilterProducts(catalog, FilterParams{SortBy: SortNewest})
	assert.Equal(t, []uint{1, 2, 3, 4, 5}, ids(got))
}

func TestFilterProductsComposedFilters(t *testing.T) {
	catalog := catalogFixture()

	got := FilterProducts(catalog, FilterParams{
		Query:    "e",
		Category: "electronics",
		MinPrice: 1000,
		MaxPrice: 20000,
		SortBy:   SortPriceLow,
	})
	assert.Equal(t, []uint{4}, ids(got))
}
