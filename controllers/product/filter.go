package productcontroller

import (
	"sort"
	"strings"

	"github.com/ipd-emporium/emporium-api/models"
)

// Sort keys accepted by the browsing endpoint.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// FilterParams is the ephemeral browsing state, reconstructed from URL query
// parameters on every request.
type FilterParams struct {
	Query    string
	Category string // "" or "all" means no category filter
	MinPrice float64
	MaxPrice float64 // 0 means unbounded
	SortBy   string
}

// FilterProducts narrows and orders the catalog: search, category, effective
// price range, then a stable sort. The input slice is never mutated; the
// result is a fresh slice, and equal-key items keep their catalog order.
func FilterProducts(products []models.Product, params FilterParams) []models.Product {
	filtered := make([]models.Product, 0, len(products))

	query := strings.ToLower(strings.TrimSpace(params.Query))
	for _, p := range products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if params.Category != "" && params.Category != "all" && p.Category != params.Category {
			continue
		}
		price := p.EffectivePrice()
		if price < params.MinPrice {
			continue
		}
		if params.MaxPrice > 0 && price > params.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}

	switch params.SortBy {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].EffectivePrice() < filtered[j].EffectivePrice()
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].EffectivePrice() > filtered[j].EffectivePrice()
		})
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	case SortFeatured:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Featured && !filtered[j].Featured
		})
	case SortNewest:
		// catalog order is insertion order, which stands in for recency
	}

	return filtered
}
