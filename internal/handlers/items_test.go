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
)

type mockItemStore struct {
	items       []models.Item
	replaced    [][]models.Item
	replaceErr  error
	updatedID   string
	updatedWith bson.M
}

func (m *mockItemStore) FindAll(ctx context.Context) ([]models.Item, error) {
	return m.items, nil
}

func (m *mockItemStore) UpdateByID(ctx context.Context, id string, patch bson.M) (*models.Item, error) {
	m.updatedID = id
	m.updatedWith = patch
	if len(m.items) == 0 {
		return nil, nil
	}
	item := m.items[0]
	if name, ok := patch["name"].(string); ok {
		item.Name = name
	}
	return &item, nil
}

func (m *mockItemStore) ReplaceAll(ctx context.Context, items []models.Item) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replaced = append(m.replaced, items)
	m.items = items
	return nil
}

func newItemRouter(m *mockItemStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewItemHandler(m, nil)
	r.GET("/items", h.GetItems)
	r.POST("/items", h.ReplaceItems)
	r.PUT("/items/:id", h.UpdateItem)
	return r
}

func TestGetItemsReturnsCatalog(t *testing.T) {
	m := &mockItemStore{items: []models.Item{
		{Name: "Original Jerky", Price: 9.99},
		{Name: "Spicy Jerky", Price: 10.99},
	}}
	r := newItemRouter(m)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var items []models.Item
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 || items[0].Name != "Original Jerky" {
		t.Errorf("items = %v, want the two seeded items", items)
	}
}

func TestGetItemsIdempotent(t *testing.T) {
	m := &mockItemStore{items: []models.Item{{Name: "Original Jerky", Price: 9.99}}}
	r := newItemRouter(m)

	var first, second string
	for i, target := range []*string{&first, &second} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, w.Code)
		}
		*target = w.Body.String()
	}
	if first != second {
		t.Errorf("repeated GET /items differ: %q vs %q", first, second)
	}
}

func TestReplaceItems(t *testing.T) {
	m := &mockItemStore{}
	r := newItemRouter(m)

	body := `[{"name":"Original Jerky","price":9.99},{"name":"Spicy Jerky","price":10.99}]`
	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if len(m.replaced) != 1 || len(m.replaced[0]) != 2 {
		t.Errorf("replaced = %v, want one replacement of two items", m.replaced)
	}
}

func TestReplaceItemsStorageFailure(t *testing.T) {
	m := &mockItemStore{replaceErr: context.DeadlineExceeded}
	r := newItemRouter(m)

	req := httptest.NewRequest(http.MethodPost, "/items",
		bytes.NewReader([]byte(`[{"name":"Jerky","price":1}]`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestUpdateItemPatches(t *testing.T) {
	m := &mockItemStore{items: []models.Item{{Name: "Original Jerky", Price: 9.99}}}
	r := newItemRouter(m)

	req := httptest.NewRequest(http.MethodPut, "/items/64f000000000000000000000",
		bytes.NewReader([]byte(`{"name":"Teriyaki Jerky"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if m.updatedID != "64f000000000000000000000" {
		t.Errorf("updated id = %q", m.updatedID)
	}
	var item models.Item
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatal(err)
	}
	if item.Name != "Teriyaki Jerky" {
		t.Errorf("name = %q, want Teriyaki Jerky", item.Name)
	}
}
