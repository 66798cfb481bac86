package preference

import "github.com/smartshop-labs/catalog-backend/internal/catalog"

// MaxPriceCeiling bounds the max-price slider; SetMaxPrice clamps to
// [0, MaxPriceCeiling].
const MaxPriceCeiling = 500.0

// Snapshot is the full preference state handed to consumers as a unit: the
// catalog filter, the recommendation request payload and the change listener
// all receive the same shape.
type Snapshot struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	MaxPrice   float64  `json:"maxPrice"`
}

// Options are the selectable category and brand lists derived from the
// catalog: unique values in order of first appearance.
type Options struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
}

// DeriveOptions scans the product list once and collects the option lists.
func DeriveOptions(products []catalog.Product) Options {
	opts := Options{Categories: make([]string, 0), Brands: make([]string, 0)}
	seenCat := make(map[string]bool)
	seenBrand := make(map[string]bool)
	for _, p := range products {
		if p.Category != "" && !seenCat[p.Category] {
			seenCat[p.Category] = true
			opts.Categories = append(opts.Categories, p.Category)
		}
		if p.Brand != "" && !seenBrand[p.Brand] {
			seenBrand[p.Brand] = true
			opts.Brands = append(opts.Brands, p.Brand)
		}
	}
	return opts
}
