package recommendations

// Recommendation is the wire shape for every strategy: a thin product
// reference annotated with a relevance score.
type Recommendation struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
	Score     float64 `json:"score"`
}

// Relations holds the curated relation tables keyed by product id,
// subject id or category. All lookups on absent keys return empty sets.
type Relations struct {
	ProductRecommendations   map[string][]string `json:"productRecommendations"`
	UserRecommendations      map[string][]string `json:"userRecommendations"`
	PopularByCategory        map[string][]string `json:"popularByCategory"`
	FrequentlyBoughtTogether map[string][]string `json:"frequentlyBoughtTogether"`
}
