package orderControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mabolhal/sanapottery/models"
	"github.com/mabolhal/sanapottery/store"
)

func newOrderRouter(s store.Storage) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/orders", GetAllOrdersHandler(s))
	r.GET("/api/orders/:orderID", GetOrderByIDHandler(s))
	r.PATCH("/api/orders/:orderID", UpdateOrderStatusHandler(s))
	return r
}

func seedOrder(t *testing.T, s store.Storage, sessionID string, createdAt time.Time) *models.Order {
	t.Helper()
	o := &models.Order{
		CustomerName:       "Marie Tremblay",
		CustomerEmail:      "marie@example.com",
		ShippingAddress:    "12 Rue des Érables",
		ShippingCity:       "Montréal",
		ShippingPostalCode: "H2X 1Y4",
		ShippingCountry:    "Canada",
		Total:              decimal.RequireFromString("45.00"),
		CheckoutSessionID:  sessionID,
		CreatedAt:          createdAt,
		Items: []models.OrderItem{
			{ProductID: "p1", NameEn: "Rustic Terracotta Bowl", Quantity: 1, UnitPrice: decimal.RequireFromString("45.00")},
		},
	}
	created, err := s.CreateOrder(o)
	require.NoError(t, err)
	return created
}

func TestGetAllOrdersNewestFirst(t *testing.T) {
	s := store.NewMemory()
	seedOrder(t, s, "cs_old", time.Now().Add(-time.Hour))
	newest := seedOrder(t, s, "cs_new", time.Now())
	r := newOrderRouter(s)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	assert.Equal(t, newest.ID, orders[0].ID)
}

func TestGetOrderByID(t *testing.T) {
	s := store.NewMemory()
	created := seedOrder(t, s, "cs_one", time.Now())
	r := newOrderRouter(s)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/"+created.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Rustic Terracotta Bowl", got.Items[0].NameEn)

	req = httptest.NewRequest(http.MethodGet, "/api/orders/no-such-order", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	s := store.NewMemory()
	created := seedOrder(t, s, "cs_status", time.Now())
	r := newOrderRouter(s)

	tests := []struct {
		name   string
		id     string
		body   string
		code   int
		status models.OrderStatus
	}{
		{"ship", created.ID, `{"status":"shipped"}`, http.StatusOK, models.OrderStatusShipped},
		{"cancel after shipped", created.ID, `{"status":"cancelled"}`, http.StatusOK, models.OrderStatusCancelled},
		{"unknown status", created.ID, `{"status":"teleported"}`, http.StatusBadRequest, ""},
		{"missing status", created.ID, `{}`, http.StatusBadRequest, ""},
		{"unknown order", "no-such-order", `{"status":"shipped"}`, http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, "/api/orders/"+tt.id, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.code, w.Code, w.Body.String())

			if tt.code == http.StatusOK {
				got, err := s.Order(created.ID)
				require.NoError(t, err)
				assert.Equal(t, tt.status, got.Status)
			}
		})
	}
}

func TestMapOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "processing", "shipped", "delivered", "cancelled", "Shipped"} {
		_, err := mapOrderStatus(valid)
		assert.NoError(t, err, valid)
	}
	_, err := mapOrderStatus("returned")
	assert.Error(t, err)
}
