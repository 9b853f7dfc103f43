package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"moesjerky_back_end/internal/models"
	"moesjerky_back_end/internal/store"
)

type mockConfigStore struct {
	featured *models.FeaturedProduct
}

func (m *mockConfigStore) GetFeatured(ctx context.Context) (*models.FeaturedProduct, error) {
	if m.featured == nil {
		return nil, store.ErrNotFound
	}
	return m.featured, nil
}

func (m *mockConfigStore) UpsertFeatured(ctx context.Context, productID, badgeText string) error {
	m.featured = &models.FeaturedProduct{ID: "featured", ProductID: productID, BadgeText: badgeText}
	return nil
}

func newFeaturedRouter(m *mockConfigStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewFeaturedHandler(m, nil)
	r.GET("/featured-product", h.GetFeaturedProduct)
	r.POST("/featured-product", h.SetFeaturedProduct)
	return r
}

func TestGetFeaturedProductUnset(t *testing.T) {
	r := newFeaturedRouter(&mockConfigStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/featured-product", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["productId"] != nil {
		t.Errorf("productId = %v, want null", resp["productId"])
	}
	if resp["badgeText"] != "" {
		t.Errorf("badgeText = %v, want empty string", resp["badgeText"])
	}
}

func TestSetFeaturedProductRequiresProductID(t *testing.T) {
	r := newFeaturedRouter(&mockConfigStore{})

	req := httptest.NewRequest(http.MethodPost, "/featured-product",
		bytes.NewReader([]byte(`{"badgeText":"New!"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSetThenGetFeaturedProduct(t *testing.T) {
	m := &mockConfigStore{}
	r := newFeaturedRouter(m)

	req := httptest.NewRequest(http.MethodPost, "/featured-product",
		bytes.NewReader([]byte(`{"productId":"abc123","badgeText":"Best seller"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("POST status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/featured-product", nil))

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["productId"] != "abc123" {
		t.Errorf("productId = %v, want abc123", resp["productId"])
	}
	if resp["badgeText"] != "Best seller" {
		t.Errorf("badgeText = %v, want \"Best seller\"", resp["badgeText"])
	}
}
