package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"moesjerky_back_end/internal/models"
	"moesjerky_back_end/internal/store"
)

// OrderStore couvre la consultation et la correction des commandes.
// L'admission (création) passe par OrderAdmissionStore, voir checkout.go.
type OrderStore interface {
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
	UpdateByID(ctx context.Context, id string, patch bson.M) (*models.Order, error)
}

type OrderHandler struct {
	store OrderStore
}

func NewOrderHandler(store OrderStore) *OrderHandler {
	return &OrderHandler{store: store}
}

func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.store.FindAll(c.Request.Context())
	if err != nil {
		log.Println("❌ Erreur lecture commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.store.FindByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		log.Println("❌ Erreur lecture commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrder applique un patch partiel (statut, corrections) sur une commande.
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var patch bson.M
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update order"})
		return
	}

	order, err := h.store.UpdateByID(c.Request.Context(), c.Param("id"), patch)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		log.Println("❌ Erreur mise à jour commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	c.JSON(http.StatusOK, order)
}
