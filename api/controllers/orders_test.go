package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ordersvc "github.com/sportshoplabs/sportshop-backend/internal/orders"
)

func newOrderService(t *testing.T) ordersvc.Service {
	t.Helper()
	svc, err := ordersvc.NewService(ordersvc.NewMemoryRepository())
	require.NoError(t, err)
	return svc
}

func createOrderFor(t *testing.T, svc ordersvc.Service, subjectID string) string {
	t.Helper()
	rec := httptest.NewRecorder()
	body := `{"items":[{"productId":"p1","name":"Pro Running Shoes","price":119.99,"quantity":1}],"total":119.99}`
	OrdersCreate(svc, testLogger()).ServeHTTP(rec,
		subjectRequest(http.MethodPost, "/api/orders", body, subjectID))
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeEnvelope(t, rec).Data.(map[string]any)["id"].(string)
}

func TestOrdersCreate(t *testing.T) {
	svc := newOrderService(t)

	t.Run("success", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := `{"items":[{"productId":"p1","price":119.99,"quantity":2}],"total":239.98,"address":{"street":"1 Main St","city":"Denver","zip":"80202","country":"US"}}`
		OrdersCreate(svc, testLogger()).ServeHTTP(rec,
			subjectRequest(http.MethodPost, "/api/orders", body, "u1"))

		require.Equal(t, http.StatusCreated, rec.Code)
		envelope := decodeEnvelope(t, rec)
		assert.Equal(t, "order created", envelope.Message)
		data := envelope.Data.(map[string]any)
		assert.Equal(t, "pending", data["status"])
		assert.Equal(t, "u1", data["userId"])
	})

	t.Run("empty items", func(t *testing.T) {
		rec := httptest.NewRecorder()
		OrdersCreate(svc, testLogger()).ServeHTTP(rec,
			subjectRequest(http.MethodPost, "/api/orders", `{"items":[],"total":0}`, "u1"))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, decodeEnvelope(t, rec).Success)
	})
}

func TestOrdersListReturnsCount(t *testing.T) {
	svc := newOrderService(t)
	createOrderFor(t, svc, "u1")
	createOrderFor(t, svc, "u1")
	createOrderFor(t, svc, "other")

	rec := httptest.NewRecorder()
	OrdersList(svc, testLogger()).ServeHTTP(rec,
		subjectRequest(http.MethodGet, "/api/orders", "", "u1"))

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Count)
	assert.Equal(t, 2, *envelope.Count)
}

func TestOrderGetEnforcesOwnership(t *testing.T) {
	svc := newOrderService(t)
	orderID := createOrderFor(t, svc, "u1")

	t.Run("owner", func(t *testing.T) {
		req := withURLParam(subjectRequest(http.MethodGet, "/api/orders/"+orderID, "", "u1"), "orderId", orderID)
		rec := httptest.NewRecorder()
		OrderGet(svc, testLogger()).ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-owner", func(t *testing.T) {
		req := withURLParam(subjectRequest(http.MethodGet, "/api/orders/"+orderID, "", "intruder"), "orderId", orderID)
		rec := httptest.NewRecorder()
		OrderGet(svc, testLogger()).ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "not authorized to access this order", decodeEnvelope(t, rec).Error)
	})

	t.Run("unknown id", func(t *testing.T) {
		req := withURLParam(subjectRequest(http.MethodGet, "/api/orders/missing", "", "u1"), "orderId", "missing")
		rec := httptest.NewRecorder()
		OrderGet(svc, testLogger()).ServeHTTP(rec, req)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOrderSetStatus(t *testing.T) {
	svc := newOrderService(t)
	orderID := createOrderFor(t, svc, "u1")

	t.Run("valid transition", func(t *testing.T) {
		req := withURLParam(subjectRequest(http.MethodPut, "/api/orders/"+orderID+"/status", `{"status":"processing"}`, "u1"), "orderId", orderID)
		rec := httptest.NewRecorder()
		OrderSetStatus(svc, testLogger()).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeEnvelope(t, rec).Data.(map[string]any)
		assert.Equal(t, "processing", data["status"])
	})

	t.Run("invalid status value", func(t *testing.T) {
		req := withURLParam(subjectRequest(http.MethodPut, "/api/orders/"+orderID+"/status", `{"status":"confirmed"}`, "u1"), "orderId", orderID)
		rec := httptest.NewRecorder()
		OrderSetStatus(svc, testLogger()).ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing status", func(t *testing.T) {
		req := withURLParam(subjectRequest(http.MethodPut, "/api/orders/"+orderID+"/status", `{}`, "u1"), "orderId", orderID)
		rec := httptest.NewRecorder()
		OrderSetStatus(svc, testLogger()).ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("illegal transition", func(t *testing.T) {
		req := withURLParam(subjectRequest(http.MethodPut, "/api/orders/"+orderID+"/status", `{"status":"pending"}`, "u1"), "orderId", orderID)
		rec := httptest.NewRecorder()
		OrderSetStatus(svc, testLogger()).ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("unknown order", func(t *testing.T) {
		req := withURLParam(subjectRequest(http.MethodPut, "/api/orders/missing/status", `{"status":"shipped"}`, "u1"), "orderId", "missing")
		rec := httptest.NewRecorder()
		OrderSetStatus(svc, testLogger()).ServeHTTP(rec, req)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOrderCancel(t *testing.T) {
	svc := newOrderService(t)
	orderID := createOrderFor(t, svc, "u1")

	req := withURLParam(subjectRequest(http.MethodPut, "/api/orders/"+orderID+"/cancel", "", "u1"), "orderId", orderID)
	rec := httptest.NewRecorder()
	OrderCancel(svc, testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	assert.Equal(t, "cancelled", envelope.Data.Status)
}
