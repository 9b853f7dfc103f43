package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"moesjerky_back_end/internal/models"
	"moesjerky_back_end/internal/store"
)

type DeliveryDateStore interface {
	FindAllSorted(ctx context.Context) ([]models.DeliveryDate, error)
	FindByDate(ctx context.Context, date string) (*models.DeliveryDate, error)
	Insert(ctx context.Context, d *models.DeliveryDate) error
	DeleteByID(ctx context.Context, id string) error
}

type DeliveryDateHandler struct {
	store DeliveryDateStore
}

func NewDeliveryDateHandler(store DeliveryDateStore) *DeliveryDateHandler {
	return &DeliveryDateHandler{store: store}
}

// GetDeliveryDates liste les dates proposées, triées.
func (h *DeliveryDateHandler) GetDeliveryDates(c *gin.Context) {
	dates, err := h.store.FindAllSorted(c.Request.Context())
	if err != nil {
		log.Println("❌ Erreur lecture dates de livraison:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dates"})
		return
	}
	c.JSON(http.StatusOK, dates)
}

// AddDeliveryDate crée une date. Le pré-check renvoie le message attendu par
// le front ; l'index unique du store couvre la course entre deux créations
// simultanées.
func (h *DeliveryDateHandler) AddDeliveryDate(c *gin.Context) {
	var req struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date required"})
		return
	}

	ctx := c.Request.Context()

	if _, err := h.store.FindByDate(ctx, req.Date); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date already exists"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Println("❌ Erreur vérification date:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add date"})
		return
	}

	d := models.DeliveryDate{Date: req.Date}
	if err := h.store.Insert(ctx, &d); err != nil {
		if errors.Is(err, store.ErrDuplicateDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Date already exists"})
			return
		}
		log.Println("❌ Erreur création date:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add date"})
		return
	}

	c.JSON(http.StatusOK, d)
}

func (h *DeliveryDateHandler) DeleteDeliveryDate(c *gin.Context) {
	if err := h.store.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		log.Println("❌ Erreur suppression date:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete date"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
