package catalog

import "strings"

// Query describes one evaluation of the catalog view. Categories, Brands and
// MaxPrice come from the preference snapshot; Search, PriceRange and
// MinRating come straight from the request.
type Query struct {
	Search     string
	Categories []string
	Brands     []string
	PriceRange PriceRange
	MinRating  float64
}

// Filter returns the products matching every rule of the query, preserving
// the input order. It is a pure function of its inputs: the visible catalog
// can be recomputed from (products, search, preferences) at any time.
func Filter(products []Product, q Query) []Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	minPrice, maxPrice := q.PriceRange.Bounds()

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if !matchesSearch(p, search) {
			continue
		}
		if len(q.Categories) > 0 && !containsString(q.Categories, p.Category) {
			continue
		}
		if len(q.Brands) > 0 && !containsString(q.Brands, p.Brand) {
			continue
		}
		if p.Price < minPrice || p.Price > maxPrice {
			continue
		}
		if p.Rating < q.MinRating {
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchesSearch reports whether the lower-cased needle occurs in the
// product's name, category or brand. An empty needle matches everything.
func matchesSearch(p Product, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle) ||
		strings.Contains(strings.ToLower(p.Brand), needle)
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
