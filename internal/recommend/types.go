package recommend

import "github.com/smartshop-labs/catalog-backend/internal/catalog"

// Recommendation is one scored suggestion as returned by the engine. The
// confidence score is nominally 0–10 but is passed through unvalidated.
type Recommendation struct {
	Product         catalog.Product `json:"product"`
	Explanation     string          `json:"explanation"`
	ConfidenceScore int             `json:"confidence_score"`
}

// Confidence level thresholds for the display mapping.
const (
	LevelHigh   = "high"
	LevelMedium = "medium"
	LevelLow    = "low"
)

// DisplayItem is a recommendation shaped for rendering: the raw score plus
// the derived level and clamped progress-bar width. Only the bar width is
// clamped; the numeric score is shown as-is.
type DisplayItem struct {
	Recommendation
	ConfidenceLevel string `json:"confidenceLevel"`
	BarWidthPercent int    `json:"barWidthPercent"`
}

// Shape converts engine recommendations into display items without sorting,
// filtering or validating them.
func Shape(recs []Recommendation) []DisplayItem {
	out := make([]DisplayItem, 0, len(recs))
	for _, r := range recs {
		out = append(out, DisplayItem{
			Recommendation:  r,
			ConfidenceLevel: confidenceLevel(r.ConfidenceScore),
			BarWidthPercent: barWidth(r.ConfidenceScore),
		})
	}
	return out
}

func confidenceLevel(score int) string {
	switch {
	case score >= 8:
		return LevelHigh
	case score >= 5:
		return LevelMedium
	default:
		return LevelLow
	}
}

func barWidth(score int) int {
	w := score * 10
	if w < 0 {
		return 0
	}
	if w > 100 {
		return 100
	}
	return w
}
