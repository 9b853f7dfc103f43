package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order est la commande enregistrée après un paiement Square réussi.
// Le panier et le client arrivent du front sans schéma imposé, on les
// persiste tels quels.
type Order struct {
	ID           primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	Customer     map[string]interface{} `json:"customer" bson:"customer"`
	Cart         []interface{}          `json:"cart" bson:"cart"`
	Amount       float64                `json:"amount" bson:"amount"`
	Status       string                 `json:"status" bson:"status"`
	CreatedAt    time.Time              `json:"createdAt" bson:"createdAt"`
	OrderNumber  int                    `json:"orderNumber" bson:"orderNumber"`
	DeliveryDate string                 `json:"deliveryDate" bson:"deliveryDate"`
}

// StatusProcessing est le statut initial de toute commande admise.
const StatusProcessing = "Processing"
