package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sportshoplabs/sportshop-backend/api/middleware"
	"github.com/sportshoplabs/sportshop-backend/api/responses"
	"github.com/sportshoplabs/sportshop-backend/api/validators"
	recsvc "github.com/sportshoplabs/sportshop-backend/internal/recommendations"
	"github.com/sportshoplabs/sportshop-backend/pkg/logger"
)

// RecommendationsSimilar serves the weighted-attribute similarity strategy.
func RecommendationsSimilar(svc recsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", 0, 1, 50)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		recs, err := svc.SimilarByAttributes(r.Context(), chi.URLParam(r, "productId"), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteList(w, recs, len(recs))
	}
}

// RecommendationsForProduct serves the curated relation strategy.
func RecommendationsForProduct(svc recsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := svc.SimilarByRelation(r.Context(), chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, recs)
	}
}

func RecommendationsForUser(svc recsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := svc.ForUser(r.Context(), middleware.SubjectFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, recs)
	}
}

func RecommendationsPopular(svc recsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := svc.PopularByCategory(r.Context(), chi.URLParam(r, "category"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, recs)
	}
}

func RecommendationsFrequentlyBought(svc recsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := svc.FrequentlyBoughtTogether(r.Context(), chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, recs)
	}
}
