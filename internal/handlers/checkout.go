package handlers

import (
	"context"
	"errors"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"moesjerky_back_end/internal/models"
	"moesjerky_back_end/internal/payment"
	"moesjerky_back_end/internal/utils"
)

// OrderAdmissionStore est la partie du store dont l'admission a besoin :
// un numéro séquentiel attribué atomiquement, puis une écriture durable.
type OrderAdmissionStore interface {
	NextOrderNumber(ctx context.Context) (int, error)
	Insert(ctx context.Context, order *models.Order) error
}

type CheckoutHandler struct {
	orders  OrderAdmissionStore
	charger payment.Charger
	notify  func(to string, order models.Order)
}

func NewCheckoutHandler(orders OrderAdmissionStore, charger payment.Charger) *CheckoutHandler {
	return &CheckoutHandler{
		orders:  orders,
		charger: charger,
		notify: func(to string, order models.Order) {
			if err := utils.SendOrderConfirmationEmail(to, order); err != nil {
				log.Println("❌ Erreur envoi e-mail de confirmation:", err)
			}
		},
	}
}

type checkoutRequest struct {
	Token        string                 `json:"token"`
	Amount       float64                `json:"amount"`
	Cart         []interface{}          `json:"cart"`
	Customer     map[string]interface{} `json:"customer"`
	DeliveryDate string                 `json:"deliveryDate"`
	// CheckoutID est généré une fois par le front et réutilisé s'il rejoue
	// la requête : il sert de clé d'idempotence côté Square, un retry ne
	// débite donc pas deux fois.
	CheckoutID string `json:"checkoutId"`
}

// SubmitOrder est la séquence d'admission de commande : validation, débit
// Square, numéro séquentiel, écriture durable. Un seul débit et une seule
// écriture par requête, dans cet ordre.
func (h *CheckoutHandler) SubmitOrder(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing data"})
		return
	}

	// Tout champ manquant coupe court, aucun appel au processeur.
	if req.Token == "" || req.Amount <= 0 || len(req.Cart) == 0 ||
		len(req.Customer) == 0 || req.DeliveryDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing data"})
		return
	}

	amountCents := int64(math.Round(req.Amount * 100))

	idempotencyKey := req.CheckoutID
	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}

	ctx := c.Request.Context()

	paymentData, err := h.charger.Charge(ctx, amountCents, req.Token, idempotencyKey)
	if err != nil {
		var gwErr *payment.GatewayError
		if errors.As(err, &gwErr) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gwErr.Detail})
			return
		}
		log.Println("❌ Erreur paiement:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error"})
		return
	}

	orderNumber, err := h.orders.NextOrderNumber(ctx)
	if err != nil {
		// Le débit est passé mais la commande n'existera pas : à réconcilier
		// à la main côté Square, il n'y a pas de remboursement automatique.
		log.Println("💸 Paiement encaissé mais numéro de commande indisponible:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error"})
		return
	}

	order := models.Order{
		Customer:     req.Customer,
		Cart:         req.Cart,
		Amount:       req.Amount,
		Status:       models.StatusProcessing,
		CreatedAt:    time.Now(),
		OrderNumber:  orderNumber,
		DeliveryDate: req.DeliveryDate,
	}

	if err := h.orders.Insert(ctx, &order); err != nil {
		log.Printf("💸 Paiement encaissé mais commande n°%d non enregistrée: %v", orderNumber, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error"})
		return
	}

	log.Printf("✅ Commande n°%d enregistrée (%.2f$)", orderNumber, req.Amount)

	if email, ok := req.Customer["email"].(string); ok && email != "" && h.notify != nil {
		go h.notify(email, order)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"payment":     paymentData,
		"orderNumber": orderNumber,
	})
}
