package catalog

// Product is a single catalog item as served by the upstream catalog API.
// Products are immutable once fetched; everything downstream (filtering,
// history, recommendations) works on copies.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount,omitempty"`
	DateAdded   string  `json:"dateAdded,omitempty"`
	IsSale      bool    `json:"isSale,omitempty"`
	IsNew       bool    `json:"isNew,omitempty"`
	Discount    int     `json:"discount,omitempty"`
}

// PriceRange is one of the named price buckets supported by the catalog view.
type PriceRange string

const (
	PriceRangeAll    PriceRange = "all"
	PriceRangeLow    PriceRange = "0-50"
	PriceRangeMid    PriceRange = "50-100"
	PriceRangeHigh   PriceRange = "100+"
	priceRangeNoLimit          = 1 << 30
)

// Bounds returns the inclusive [min, max] interval for the bucket. Unknown
// values behave like "all".
func (r PriceRange) Bounds() (float64, float64) {
	switch r {
	case PriceRangeLow:
		return 0, 50
	case PriceRangeMid:
		return 50, 100
	case PriceRangeHigh:
		return 100, priceRangeNoLimit
	default:
		return 0, priceRangeNoLimit
	}
}
