package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DeliveryDate est un jour de livraison proposé au checkout.
// La date est stockée en string ISO (YYYY-MM-DD), unique en base.
type DeliveryDate struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Date string             `json:"date" bson:"date"`
}
