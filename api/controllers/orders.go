package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sportshoplabs/sportshop-backend/api/middleware"
	"github.com/sportshoplabs/sportshop-backend/api/responses"
	"github.com/sportshoplabs/sportshop-backend/api/validators"
	ordersvc "github.com/sportshoplabs/sportshop-backend/internal/orders"
	"github.com/sportshoplabs/sportshop-backend/pkg/enums"
	pkgerrors "github.com/sportshoplabs/sportshop-backend/pkg/errors"
	"github.com/sportshoplabs/sportshop-backend/pkg/logger"
	"github.com/sportshoplabs/sportshop-backend/pkg/types"
)

type createOrderRequest struct {
	Items   []orderItemPayload `json:"items" validate:"required,min=1,dive"`
	Total   float64            `json:"total" validate:"omitempty,gte=0"`
	Address *types.Address     `json:"address"`
}

type orderItemPayload struct {
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name"`
	Price     float64 `json:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	ImageURL  string  `json:"imageUrl"`
}

func (r createOrderRequest) toItems() []ordersvc.Item {
	items := make([]ordersvc.Item, len(r.Items))
	for i, payload := range r.Items {
		items[i] = ordersvc.Item{
			ProductID: payload.ProductID,
			Name:      payload.Name,
			Price:     payload.Price,
			Quantity:  payload.Quantity,
			ImageURL:  payload.ImageURL,
		}
	}
	return items
}

func OrdersCreate(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Create(r.Context(), middleware.SubjectFromContext(r.Context()), payload.toItems(), payload.Total, payload.Address)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusCreated, "order created", order)
	}
}

func OrdersList(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := svc.ListBySubject(r.Context(), middleware.SubjectFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteList(w, orders, len(orders))
	}
}

// OrderGet returns one order, refusing access when the requester is not the
// owning subject.
func OrderGet(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := svc.GetByID(r.Context(), chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if order.SubjectID != middleware.SubjectFromContext(r.Context()) {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeForbidden, "not authorized to access this order"))
			return
		}

		responses.WriteSuccess(w, order)
	}
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func OrderSetStatus(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseOrderStatus(payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order status"))
			return
		}

		order, err := svc.SetStatus(r.Context(), chi.URLParam(r, "orderId"), status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusOK, "order status updated", order)
	}
}

func OrderCancel(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := svc.Cancel(r.Context(), chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusOK, "order cancelled", order)
	}
}
