package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func primitiveIDFromHex(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid document id %q: %w", id, err)
	}
	return objID, nil
}
