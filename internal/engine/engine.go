package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/smartshop-labs/catalog-backend/internal/catalog"
)

// maxRecommendations caps every response.
const maxRecommendations = 5

// Preferences is the engine-side view of the caller's preference snapshot.
// PriceRange takes precedence over MaxPrice when both are present.
type Preferences struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	PriceRange string   `json:"priceRange,omitempty"`
	MaxPrice   float64  `json:"maxPrice,omitempty"`
}

// Recommendation pairs a catalog product with an explanation and a 0-10
// confidence score.
type Recommendation struct {
	Product         catalog.Product `json:"product"`
	Explanation     string          `json:"explanation"`
	ConfidenceScore int             `json:"confidence_score"`
}

// Service produces recommendations, preferring the LLM and falling back to a
// local simulation when no API key is configured or the LLM path fails.
type Service struct {
	repo  Repository
	ai    *openai.Client
	model string

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService builds the engine. apiKey may be empty, in which case only the
// local simulation runs. model defaults to gpt-4o-mini.
func NewService(repo Repository, apiKey, model string, seed int64) *Service {
	s := &Service{repo: repo, model: model, rng: rand.New(rand.NewSource(seed))}
	if s.model == "" {
		s.model = openai.GPT4oMini
	}
	if apiKey != "" {
		s.ai = openai.NewClient(apiKey)
	}
	return s
}

// Recommend returns up to five recommendations for the given preferences and
// browsing history.
func (s *Service) Recommend(ctx context.Context, prefs Preferences, historyIDs []int) ([]Recommendation, error) {
	all, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if s.ai != nil {
		recs, err := s.recommendWithLLM(ctx, prefs, historyIDs, all)
		if err == nil {
			return recs, nil
		}
		log.Warn().Err(err).Msg("llm recommendation failed, falling back to local simulation")
	}

	return s.recommendLocally(prefs, historyIDs, all), nil
}

// recommendLocally simulates the engine without any API: filter by
// preferences, drop browsed products, widen when too few remain, then pick
// up to five at random with canned explanations and a 6-10 confidence.
func (s *Service) recommendLocally(prefs Preferences, historyIDs []int, all []catalog.Product) []Recommendation {
	browsed := make(map[int]bool, len(historyIDs))
	for _, id := range historyIDs {
		browsed[id] = true
	}
	browsedProducts := make([]catalog.Product, 0, len(historyIDs))
	for _, p := range all {
		if browsed[p.ID] {
			browsedProducts = append(browsedProducts, p)
		}
	}

	candidates := make([]catalog.Product, 0, len(all))
	for _, p := range filterByPreferences(all, prefs) {
		if !browsed[p.ID] {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) < maxRecommendations {
		candidates = candidates[:0]
		for _, p := range all {
			if !browsed[p.ID] {
				candidates = append(candidates, p)
			}
		}
	}

	s.mu.Lock()
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	n := len(candidates)
	if n > maxRecommendations {
		n = maxRecommendations
	}
	recs := make([]Recommendation, 0, n)
	for _, p := range candidates[:n] {
		recs = append(recs, Recommendation{
			Product:         p,
			Explanation:     s.localExplanationLocked(p, browsedProducts),
			ConfidenceScore: 6 + s.rng.Intn(5),
		})
	}
	s.mu.Unlock()

	return recs
}

// localExplanationLocked picks one of the canned explanation templates.
// Callers must hold s.mu.
func (s *Service) localExplanationLocked(p catalog.Product, browsed []catalog.Product) string {
	explanations := []string{
		fmt.Sprintf("Recommended because you showed interest in %s products.", p.Category),
		fmt.Sprintf("This %s %s matches your preferences.", p.Brand, p.Name),
		fmt.Sprintf("Popular choice in the %s category.", p.Category),
		fmt.Sprintf("Great value at $%.2f for a %s product.", p.Price, p.Brand),
	}
	for _, b := range browsed {
		if b.Category == p.Category {
			explanations = append(explanations, fmt.Sprintf("Similar to %s products you've viewed.", p.Category))
			break
		}
	}
	return explanations[s.rng.Intn(len(explanations))]
}

// filterByPreferences narrows the catalog by selected categories, brands and
// the price constraint. Empty selections pass everything.
func filterByPreferences(all []catalog.Product, prefs Preferences) []catalog.Product {
	minPrice, maxPrice := priceBounds(prefs)

	out := make([]catalog.Product, 0, len(all))
	for _, p := range all {
		if len(prefs.Categories) > 0 && !contains(prefs.Categories, p.Category) {
			continue
		}
		if len(prefs.Brands) > 0 && !contains(prefs.Brands, p.Brand) {
			continue
		}
		if p.Price < minPrice || p.Price > maxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

// priceBounds resolves the effective [min, max] price interval. The named
// range wins; otherwise a positive MaxPrice caps the interval.
func priceBounds(prefs Preferences) (float64, float64) {
	const noLimit = float64(1 << 30)
	switch prefs.PriceRange {
	case "0-50":
		return 0, 50
	case "50-100":
		return 50, 100
	case "100+":
		return 100, noLimit
	}
	if prefs.MaxPrice > 0 {
		return 0, prefs.MaxPrice
	}
	return 0, noLimit
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
