package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Item représente un produit du catalogue.
// Aucune validation sur le prix : le front publie le catalogue tel quel.
type Item struct {
	ID    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Price float64            `json:"price" bson:"price"`
}
