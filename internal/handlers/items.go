package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"moesjerky_back_end/internal/cache"
	"moesjerky_back_end/internal/models"
)

// ItemStore est le contrat de persistance du catalogue.
type ItemStore interface {
	FindAll(ctx context.Context) ([]models.Item, error)
	UpdateByID(ctx context.Context, id string, patch bson.M) (*models.Item, error)
	ReplaceAll(ctx context.Context, items []models.Item) error
}

type ItemHandler struct {
	store ItemStore
	cache *cache.Cache
}

func NewItemHandler(store ItemStore, c *cache.Cache) *ItemHandler {
	return &ItemHandler{store: store, cache: c}
}

// GetItems liste le catalogue (avec cache Redis).
func (h *ItemHandler) GetItems(c *gin.Context) {
	ctx := c.Request.Context()

	if items, ok := h.cache.GetItems(ctx); ok {
		c.JSON(http.StatusOK, items)
		return
	}

	items, err := h.store.FindAll(ctx)
	if err != nil {
		log.Println("❌ Erreur lecture catalogue:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load items"})
		return
	}

	h.cache.SetItems(ctx, items)
	c.JSON(http.StatusOK, items)
}

// ReplaceItems remplace le catalogue entier d'un coup.
func (h *ItemHandler) ReplaceItems(c *gin.Context) {
	var items []models.Item
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Failed to save items"})
		return
	}

	if err := h.store.ReplaceAll(c.Request.Context(), items); err != nil {
		log.Println("❌ Erreur publication catalogue:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save items"})
		return
	}

	h.cache.InvalidateItems(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateItem patche un produit et renvoie le document modifié.
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	var patch bson.M
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid payload"})
		return
	}

	item, err := h.store.UpdateByID(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		log.Println("❌ Erreur mise à jour produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update item"})
		return
	}

	h.cache.InvalidateItems(c.Request.Context())
	// item nil si l'id n'existe pas : on renvoie null, comme l'API historique
	c.JSON(http.StatusOK, item)
}
