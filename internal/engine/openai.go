package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/smartshop-labs/catalog-backend/internal/catalog"
)

// promptCatalogLimit bounds how many products the prompt lists, to keep the
// token count sane.
const promptCatalogLimit = 50

const systemPrompt = "You are a helpful eCommerce product recommendation assistant."

// recommendWithLLM asks the chat model for recommendations, parses the JSON
// array out of its reply, enriches by product id and tops up from the
// preference-filtered catalog when fewer than five come back.
func (s *Service) recommendWithLLM(ctx context.Context, prefs Preferences, historyIDs []int, all []catalog.Product) ([]Recommendation, error) {
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

	resp, err := s.ai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(prefs, browsedProducts, all)},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	recs, err := parseLLMResponse(resp.Choices[0].Message.Content, all)
	if err != nil {
		return nil, err
	}

	if len(recs) < maxRecommendations {
		recs = append(recs, s.fillRecommendations(prefs, recs, all)...)
	}
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs, nil
}

// buildPrompt assembles the user message: rules, preferences, browsing
// history and a truncated catalog summary.
func buildPrompt(prefs Preferences, browsed []catalog.Product, all []catalog.Product) string {
	var b strings.Builder
	b.WriteString("You are an expert eCommerce recommendation assistant.\n")
	b.WriteString("Given the user's preferences and browsing history, recommend exactly 5 products from the catalog.\n")
	b.WriteString("Strictly follow these rules:\n")
	b.WriteString("- Only recommend products matching the user's selected categories, brands, and price range.\n")
	b.WriteString("- Include a brief explanation for each recommendation.\n")
	b.WriteString("- Return output as a JSON array with keys: product_id, explanation, score (1-10 confidence).\n")
	b.WriteString("- Ensure diversity in recommendations.\n\n")

	b.WriteString("User Preferences:\n")
	fmt.Fprintf(&b, "- categories: %s\n", strings.Join(prefs.Categories, ", "))
	fmt.Fprintf(&b, "- brands: %s\n", strings.Join(prefs.Brands, ", "))
	if prefs.PriceRange != "" {
		fmt.Fprintf(&b, "- priceRange: %s\n", prefs.PriceRange)
	}
	if prefs.MaxPrice > 0 {
		fmt.Fprintf(&b, "- maxPrice: %.2f\n", prefs.MaxPrice)
	}

	if len(browsed) > 0 {
		b.WriteString("\nBrowsing History:\n")
		for _, p := range browsed {
			fmt.Fprintf(&b, "- %s (Category: %s, Price: $%.2f, Brand: %s)\n", p.Name, p.Category, p.Price, p.Brand)
		}
	}

	b.WriteString("\nCatalog contains the following products (showing only names and categories for brevity):\n")
	for i, p := range all {
		if i >= promptCatalogLimit {
			break
		}
		fmt.Fprintf(&b, "- %s (Category: %s, Price: $%.2f, Brand: %s)\n", p.Name, p.Category, p.Price, p.Brand)
	}

	b.WriteString("\nRespond ONLY with the JSON array, no extra text.")
	return b.String()
}

type llmRecommendation struct {
	ProductID   int    `json:"product_id"`
	Explanation string `json:"explanation"`
	Score       int    `json:"score"`
}

// parseLLMResponse extracts the first [...] JSON array from the model output
// and enriches each entry with the full product. Unknown product ids are
// dropped.
func parseLLMResponse(content string, all []catalog.Product) ([]Recommendation, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array in model output")
	}

	var parsed []llmRecommendation
	if err := json.Unmarshal([]byte(content[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("parse model output: %w", err)
	}

	byID := make(map[int]catalog.Product, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}

	recs := make([]Recommendation, 0, len(parsed))
	for _, r := range parsed {
		p, ok := byID[r.ProductID]
		if !ok {
			continue
		}
		score := r.Score
		if score == 0 {
			score = 5
		}
		recs = append(recs, Recommendation{
			Product:         p,
			Explanation:     r.Explanation,
			ConfidenceScore: score,
		})
	}
	return recs, nil
}

// fillRecommendations tops up a short result with preference-matching
// products the model did not mention.
func (s *Service) fillRecommendations(prefs Preferences, existing []Recommendation, all []catalog.Product) []Recommendation {
	used := make(map[int]bool, len(existing))
	for _, r := range existing {
		used[r.Product.ID] = true
	}

	candidates := make([]catalog.Product, 0)
	for _, p := range filterByPreferences(all, prefs) {
		if !used[p.ID] {
			candidates = append(candidates, p)
		}
	}

	s.mu.Lock()
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	s.mu.Unlock()

	fill := make([]Recommendation, 0)
	for _, p := range candidates {
		if len(existing)+len(fill) >= maxRecommendations {
			break
		}
		fill = append(fill, Recommendation{
			Product:         p,
			Explanation:     "Additional recommendation based on your preferences.",
			ConfidenceScore: 5,
		})
	}
	return fill
}
