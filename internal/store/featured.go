package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"moesjerky_back_end/internal/models"
)

// featuredKey est la clé fixe du document singleton dans la collection config.
const featuredKey = "featured"

type ConfigStore struct {
	collection *mongo.Collection
}

func NewConfigStore(db *mongo.Database) *ConfigStore {
	return &ConfigStore{collection: db.Collection("config")}
}

func (s *ConfigStore) GetFeatured(ctx context.Context) (*models.FeaturedProduct, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.FeaturedProduct
	err := s.collection.FindOne(ctx, bson.M{"_id": featuredKey}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpsertFeatured crée ou remplace la configuration du produit vedette.
func (s *ConfigStore) UpsertFeatured(ctx context.Context, productID, badgeText string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": featuredKey},
		bson.M{"$set": bson.M{"productId": productID, "badgeText": badgeText}},
		options.Update().SetUpsert(true),
	)
	return err
}
