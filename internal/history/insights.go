package history

import "fmt"

// Insights summarizes the derived history: the most frequent category and
// brand (ties broken by encounter order) and the mean price and rating,
// pre-formatted for display.
type Insights struct {
	TopCategory   string `json:"topCategory"`
	TopBrand      string `json:"topBrand"`
	AveragePrice  string `json:"averagePrice"`
	AverageRating string `json:"averageRating"`
}

// DeriveInsights computes the four summary strings from the given entries.
// The second return value is false when the list is empty and no insights
// can be derived.
func DeriveInsights(entries []Entry) (Insights, bool) {
	if len(entries) == 0 {
		return Insights{}, false
	}

	catCounts := make(map[string]int)
	brandCounts := make(map[string]int)
	var catOrder, brandOrder []string
	var priceSum, ratingSum float64

	for _, e := range entries {
		p := e.Product
		if catCounts[p.Category] == 0 {
			catOrder = append(catOrder, p.Category)
		}
		catCounts[p.Category]++
		if brandCounts[p.Brand] == 0 {
			brandOrder = append(brandOrder, p.Brand)
		}
		brandCounts[p.Brand]++
		priceSum += p.Price
		ratingSum += p.Rating
	}

	n := float64(len(entries))
	return Insights{
		TopCategory:   mostFrequent(catOrder, catCounts),
		TopBrand:      mostFrequent(brandOrder, brandCounts),
		AveragePrice:  fmt.Sprintf("%.2f", priceSum/n),
		AverageRating: fmt.Sprintf("%.1f", ratingSum/n),
	}, true
}

// mostFrequent walks candidates in encounter order, so the first one seen
// wins a tie.
func mostFrequent(order []string, counts map[string]int) string {
	best := ""
	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}
