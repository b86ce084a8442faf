package recommendations

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/sportshoplabs/sportshop-backend/internal/catalog"
	"github.com/sportshoplabs/sportshop-backend/pkg/config"
)

type catalogReader interface {
	GetProduct(ctx context.Context, id string) (*catalog.Product, error)
	ListProducts(ctx context.Context, filters catalog.Filters) ([]catalog.Product, error)
}

// Service computes product recommendations. Both strategies are read-only
// over the catalog and the curated relation tables.
type Service interface {
	SimilarByAttributes(ctx context.Context, productID string, limit int) ([]Recommendation, error)
	SimilarByRelation(ctx context.Context, productID string) ([]Recommendation, error)
	ForUser(ctx context.Context, subjectID string) ([]Recommendation, error)
	PopularByCategory(ctx context.Context, category string) ([]Recommendation, error)
	FrequentlyBoughtTogether(ctx context.Context, productID string) ([]Recommendation, error)
}

type service struct {
	catalog     catalogReader
	relations   Relations
	limit       int
	priceWindow float64
	score       func() float64
}

// NewService builds a recommendation service over the catalog and the
// relation tables.
func NewService(reader catalogReader, relations Relations, cfg config.RecommendationConfig) (Service, error) {
	if reader == nil {
		return nil, fmt.Errorf("catalog reader required")
	}
	limit := cfg.SimilarLimit
	if limit <= 0 {
		limit = 5
	}
	window := cfg.PriceWindow
	if window <= 0 {
		window = 50
	}
	return &service{
		catalog:     reader,
		relations:   relations,
		limit:       limit,
		priceWindow: window,
		// Relation hits carry a synthetic relevance in [0.5, 1.0).
		score: func() float64 { return rand.Float64()*0.5 + 0.5 },
	}, nil
}

// SimilarByAttributes scores every other catalog product against the
// queried one: +2 for the same category, +3 for the same sport, +1 when the
// price gap stays inside the window. Ties break on rating.
func (s *service) SimilarByAttributes(ctx context.Context, productID string, limit int) ([]Recommendation, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	all, err := s.catalog.ListProducts(ctx, catalog.Filters{})
	if err != nil {
		return nil, err
	}

	type scored struct {
		rec    Recommendation
		score  int
		rating float64
	}
	candidates := make([]scored, 0, len(all))
	for _, candidate := range all {
		if candidate.ID == product.ID {
			continue
		}
		score := 0
		if candidate.Category == product.Category {
			score += 2
		}
		if candidate.Sport == product.Sport {
			score += 3
		}
		if math.Abs(candidate.Price-product.Price) <= s.priceWindow {
			score++
		}
		candidates = append(candidates, scored{
			rec: Recommendation{
				ProductID: candidate.ID,
				Name:      candidate.Name,
				Price:     candidate.Price,
				ImageURL:  candidate.ImageURL,
				Score:     float64(score),
			},
			score:  score,
			rating: candidate.Rating,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].rating > candidates[j].rating
	})

	if limit <= 0 {
		limit = s.limit
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]Recommendation, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.rec)
	}
	return out, nil
}

func (s *service) SimilarByRelation(ctx context.Context, productID string) ([]Recommendation, error) {
	return s.annotate(ctx, s.relations.ProductRecommendations[productID])
}

func (s *service) ForUser(ctx context.Context, subjectID string) ([]Recommendation, error) {
	return s.annotate(ctx, s.relations.UserRecommendations[subjectID])
}

func (s *service) PopularByCategory(ctx context.Context, category string) ([]Recommendation, error) {
	return s.annotate(ctx, s.relations.PopularByCategory[category])
}

func (s *service) FrequentlyBoughtTogether(ctx context.Context, productID string) ([]Recommendation, error) {
	return s.annotate(ctx, s.relations.FrequentlyBoughtTogether[productID])
}

// annotate resolves a list of related product ids against the catalog,
// dropping ids that no longer exist, and orders the survivors by their
// synthetic score. An absent relation key yields an empty, non-nil slice.
func (s *service) annotate(ctx context.Context, ids []string) ([]Recommendation, error) {
	out := make([]Recommendation, 0, len(ids))
	for _, id := range ids {
		product, err := s.catalog.GetProduct(ctx, id)
		if err != nil {
			continue
		}
		out = append(out, Recommendation{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			ImageURL:  product.ImageURL,
			Score:     s.score(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out, nil
}
