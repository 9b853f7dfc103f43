package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"moesjerky_back_end/internal/models"
)

type UserStore interface {
	FindAll(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, user *models.User) error
	UpdateByID(ctx context.Context, id string, patch bson.M) (*models.User, error)
	DeleteByID(ctx context.Context, id string) error
}

type UserHandler struct {
	store UserStore
}

func NewUserHandler(store UserStore) *UserHandler {
	return &UserHandler{store: store}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.store.FindAll(c.Request.Context())
	if err != nil {
		log.Println("❌ Erreur lecture utilisateurs:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid payload"})
		return
	}

	if err := h.store.Insert(c.Request.Context(), &user); err != nil {
		log.Println("❌ Erreur création utilisateur:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var patch bson.M
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid payload"})
		return
	}

	user, err := h.store.UpdateByID(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		log.Println("❌ Erreur mise à jour utilisateur:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.store.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		log.Println("❌ Erreur suppression utilisateur:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
