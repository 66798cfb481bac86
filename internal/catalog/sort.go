package catalog

import "sort"

// SortKey selects the catalog ordering. Unknown keys fall back to
// SortFeatured.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortName      SortKey = "name"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// wishlistBonus is added to the featured score of wishlisted products.
const wishlistBonus = 50.0

// Sort orders products in place with a stable sort, so ties keep their prior
// relative order. The wishlisted set only affects the featured ordering.
func Sort(products []Product, key SortKey, wishlisted map[int]bool) {
	switch key {
	case SortName:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortNewest:
		// DateAdded is RFC 3339, so lexicographic order is chronological.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].DateAdded > products[j].DateAdded
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return FeaturedScore(products[i], wishlisted) > FeaturedScore(products[j], wishlisted)
		})
	}
}

// FeaturedScore is the composite ranking used for the default ordering:
// rating weighs heaviest, review count nudges, wishlisted items get a fixed
// bonus.
func FeaturedScore(p Product, wishlisted map[int]bool) float64 {
	score := p.Rating*20 + float64(p.ReviewCount)*0.1
	if wishlisted[p.ID] {
		score += wishlistBonus
	}
	return score
}
