package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sportshoplabs/sportshop-backend/api/responses"
	"github.com/sportshoplabs/sportshop-backend/api/validators"
	"github.com/sportshoplabs/sportshop-backend/internal/catalog"
	"github.com/sportshoplabs/sportshop-backend/pkg/logger"
)

// ProductsList serves the catalog, optionally filtered by category/sport and
// a free-text search term.
func ProductsList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := catalog.Filters{
			Category: r.URL.Query().Get("category"),
			Search:   r.URL.Query().Get("search"),
		}

		products, err := svc.ListProducts(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteList(w, products, len(products))
	}
}

func ProductGet(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product, err := svc.GetProduct(r.Context(), chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

type searchRequest struct {
	Query string `json:"query" validate:"required"`
}

func ProductsSearch(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload searchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.SearchProducts(r.Context(), payload.Query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteList(w, products, len(products))
	}
}
