package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"moesjerky_back_end/internal/cache"
	"moesjerky_back_end/internal/models"
	"moesjerky_back_end/internal/store"
)

type ConfigStore interface {
	GetFeatured(ctx context.Context) (*models.FeaturedProduct, error)
	UpsertFeatured(ctx context.Context, productID, badgeText string) error
}

type FeaturedHandler struct {
	store ConfigStore
	cache *cache.Cache
}

func NewFeaturedHandler(store ConfigStore, c *cache.Cache) *FeaturedHandler {
	return &FeaturedHandler{store: store, cache: c}
}

// GetFeaturedProduct lit la config vitrine. Si rien n'est configuré,
// on renvoie un productId null plutôt qu'une 404 : le front s'en sert tel quel.
func (h *FeaturedHandler) GetFeaturedProduct(c *gin.Context) {
	ctx := c.Request.Context()

	if doc, ok := h.cache.GetFeatured(ctx); ok {
		c.JSON(http.StatusOK, gin.H{"productId": doc.ProductID, "badgeText": doc.BadgeText})
		return
	}

	doc, err := h.store.GetFeatured(ctx)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"productId": nil, "badgeText": ""})
		return
	}
	if err != nil {
		log.Println("❌ Erreur lecture produit vedette:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	h.cache.SetFeatured(ctx, doc)
	c.JSON(http.StatusOK, gin.H{"productId": doc.ProductID, "badgeText": doc.BadgeText})
}

// SetFeaturedProduct upsert la config vitrine sous sa clé fixe.
func (h *FeaturedHandler) SetFeaturedProduct(c *gin.Context) {
	var req struct {
		ProductID string `json:"productId"`
		BadgeText string `json:"badgeText"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing productId"})
		return
	}

	ctx := c.Request.Context()
	if err := h.store.UpsertFeatured(ctx, req.ProductID, req.BadgeText); err != nil {
		log.Println("❌ Erreur écriture produit vedette:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	h.cache.InvalidateFeatured(ctx)
	c.JSON(http.StatusOK, gin.H{"productId": req.ProductID, "badgeText": req.BadgeText})
}
