package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportshoplabs/sportshop-backend/api/middleware"
	cartsvc "github.com/sportshoplabs/sportshop-backend/internal/cart"
	"github.com/sportshoplabs/sportshop-backend/internal/catalog"
	"github.com/sportshoplabs/sportshop-backend/pkg/logger"
	"github.com/sportshoplabs/sportshop-backend/pkg/types"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

func newCartService(t *testing.T) cartsvc.Service {
	t.Helper()
	repo := catalog.NewMemoryRepository()
	require.NoError(t, repo.ReplaceAll(context.Background(), []catalog.Product{
		{ID: "p1", Name: "Pro Running Shoes", Price: 119.99, Category: "Shoes", Sport: "Running"},
		{ID: "p2", Name: "Trail Backpack", Price: 79.90, Category: "Bags", Sport: "Hiking"},
	}))
	catalogSvc, err := catalog.NewService(repo)
	require.NoError(t, err)
	svc, err := cartsvc.NewService(cartsvc.NewMemoryRepository(), catalogSvc)
	require.NoError(t, err)
	return svc
}

func subjectRequest(method, target, body, subjectID string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	return req.WithContext(middleware.WithSubjectID(req.Context(), subjectID))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) types.Envelope {
	t.Helper()
	var body types.Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestCartGetCreatesLazily(t *testing.T) {
	svc := newCartService(t)
	rec := httptest.NewRecorder()
	CartGet(svc, testLogger()).ServeHTTP(rec, subjectRequest(http.MethodGet, "/api/cart", "", "u1"))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.True(t, body.Success)
	data := body.Data.(map[string]any)
	assert.Equal(t, "cart_u1", data["id"])
	assert.Equal(t, "u1", data["userId"])
}

func TestCartAdd(t *testing.T) {
	svc := newCartService(t)

	t.Run("success with default quantity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		CartAdd(svc, testLogger()).ServeHTTP(rec,
			subjectRequest(http.MethodPost, "/api/cart/add", `{"productId":"p1"}`, "u1"))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, "product added to cart", body.Message)
		items := body.Data.(map[string]any)["items"].([]any)
		require.Len(t, items, 1)
		assert.Equal(t, float64(1), items[0].(map[string]any)["quantity"])
	})

	t.Run("missing product id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		CartAdd(svc, testLogger()).ServeHTTP(rec,
			subjectRequest(http.MethodPost, "/api/cart/add", `{}`, "u1"))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, decodeEnvelope(t, rec).Success)
	})

	t.Run("unknown product", func(t *testing.T) {
		rec := httptest.NewRecorder()
		CartAdd(svc, testLogger()).ServeHTTP(rec,
			subjectRequest(http.MethodPost, "/api/cart/add", `{"productId":"nope"}`, "u1"))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "product not found", decodeEnvelope(t, rec).Error)
	})
}

func TestCartUpdate(t *testing.T) {
	svc := newCartService(t)

	t.Run("line not in cart", func(t *testing.T) {
		rec := httptest.NewRecorder()
		CartUpdate(svc, testLogger()).ServeHTTP(rec,
			subjectRequest(http.MethodPut, "/api/cart/update", `{"productId":"p1","quantity":2}`, "u1"))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "product not found in cart", decodeEnvelope(t, rec).Error)
	})

	t.Run("updates quantity", func(t *testing.T) {
		addRec := httptest.NewRecorder()
		CartAdd(svc, testLogger()).ServeHTTP(addRec,
			subjectRequest(http.MethodPost, "/api/cart/add", `{"productId":"p1","quantity":2}`, "u1"))
		require.Equal(t, http.StatusOK, addRec.Code)

		rec := httptest.NewRecorder()
		CartUpdate(svc, testLogger()).ServeHTTP(rec,
			subjectRequest(http.MethodPut, "/api/cart/update", `{"productId":"p1","quantity":5}`, "u1"))

		require.Equal(t, http.StatusOK, rec.Code)
		items := decodeEnvelope(t, rec).Data.(map[string]any)["items"].([]any)
		assert.Equal(t, float64(5), items[0].(map[string]any)["quantity"])
	})

	t.Run("missing quantity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		CartUpdate(svc, testLogger()).ServeHTTP(rec,
			subjectRequest(http.MethodPut, "/api/cart/update", `{"productId":"p1"}`, "u1"))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCartRemoveItem(t *testing.T) {
	svc := newCartService(t)

	addRec := httptest.NewRecorder()
	CartAdd(svc, testLogger()).ServeHTTP(addRec,
		subjectRequest(http.MethodPost, "/api/cart/add", `{"productId":"p1"}`, "u1"))
	require.Equal(t, http.StatusOK, addRec.Code)

	req := withURLParam(subjectRequest(http.MethodDelete, "/api/cart/items/p1", "", "u1"), "productId", "p1")
	rec := httptest.NewRecorder()
	CartRemoveItem(svc, testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeEnvelope(t, rec).Data.(map[string]any)["items"].([]any)
	assert.Empty(t, items)
}

func TestCartClear(t *testing.T) {
	svc := newCartService(t)

	addRec := httptest.NewRecorder()
	CartAdd(svc, testLogger()).ServeHTTP(addRec,
		subjectRequest(http.MethodPost, "/api/cart/add", `{"productId":"p2","quantity":3}`, "u1"))
	require.Equal(t, http.StatusOK, addRec.Code)

	rec := httptest.NewRecorder()
	CartClear(svc, testLogger()).ServeHTTP(rec,
		subjectRequest(http.MethodDelete, "/api/cart/clear", "", "u1"))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "cart cleared", body.Message)
	data := body.Data.(map[string]any)
	assert.Empty(t, data["items"])
	assert.Equal(t, float64(0), data["total"])
}
