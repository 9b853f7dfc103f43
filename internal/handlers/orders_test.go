package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"moesjerky_back_end/internal/models"
	"moesjerky_back_end/internal/store"
)

type mockOrderStore struct {
	findAllFunc  func(ctx context.Context) ([]models.Order, error)
	findByIDFunc func(ctx context.Context, id string) (*models.Order, error)
	updateFunc   func(ctx context.Context, id string, patch bson.M) (*models.Order, error)
}

func (m *mockOrderStore) FindAll(ctx context.Context) ([]models.Order, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return []models.Order{}, nil
}

func (m *mockOrderStore) FindByID(ctx context.Context, id string) (*models.Order, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockOrderStore) UpdateByID(ctx context.Context, id string, patch bson.M) (*models.Order, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return nil, store.ErrNotFound
}

func newOrderRouter(m *mockOrderStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewOrderHandler(m)
	r.GET("/orders", h.GetOrders)
	r.GET("/order/:id", h.GetOrder)
	r.PUT("/orders/:id", h.UpdateOrder)
	return r
}

func TestGetOrderNotFound(t *testing.T) {
	r := newOrderRouter(&mockOrderStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/order/64f000000000000000000000", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error != "Order not found" {
		t.Errorf("error = %q, want \"Order not found\"", resp.Error)
	}
}

func TestGetOrderFound(t *testing.T) {
	m := &mockOrderStore{
		findByIDFunc: func(ctx context.Context, id string) (*models.Order, error) {
			return &models.Order{OrderNumber: 1001, Status: models.StatusProcessing}, nil
		},
	}
	r := newOrderRouter(m)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/order/64f000000000000000000000", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var order models.Order
	if err := json.Unmarshal(w.Body.Bytes(), &order); err != nil {
		t.Fatal(err)
	}
	if order.OrderNumber != 1001 {
		t.Errorf("orderNumber = %d, want 1001", order.OrderNumber)
	}
}

func TestUpdateOrderPatchesStatus(t *testing.T) {
	var gotPatch bson.M
	m := &mockOrderStore{
		updateFunc: func(ctx context.Context, id string, patch bson.M) (*models.Order, error) {
			gotPatch = patch
			return &models.Order{OrderNumber: 1001, Status: "Shipped"}, nil
		},
	}
	r := newOrderRouter(m)

	body := bytes.NewReader([]byte(`{"status":"Shipped"}`))
	req := httptest.NewRequest(http.MethodPut, "/orders/64f000000000000000000000", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
	if gotPatch["status"] != "Shipped" {
		t.Errorf("patch = %v, want status Shipped", gotPatch)
	}
	var order models.Order
	if err := json.Unmarshal(w.Body.Bytes(), &order); err != nil {
		t.Fatal(err)
	}
	if order.Status != "Shipped" {
		t.Errorf("status = %q, want Shipped", order.Status)
	}
}

func TestUpdateOrderNotFound(t *testing.T) {
	r := newOrderRouter(&mockOrderStore{})

	req := httptest.NewRequest(http.MethodPut, "/orders/64f000000000000000000000",
		bytes.NewReader([]byte(`{"status":"Shipped"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
