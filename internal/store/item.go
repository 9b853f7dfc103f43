package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"moesjerky_back_end/internal/models"
)

const itemsCollection = "items"

type ItemStore struct {
	db         *mongo.Database
	collection *mongo.Collection
}

func NewItemStore(db *mongo.Database) *ItemStore {
	return &ItemStore{
		db:         db,
		collection: db.Collection(itemsCollection),
	}
}

// FindAll liste le catalogue complet.
func (s *ItemStore) FindAll(ctx context.Context) ([]models.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateByID applique un patch partiel ($set) et retourne le document modifié.
// Retourne (nil, nil) si l'item n'existe pas, comme l'API l'attend.
func (s *ItemStore) UpdateByID(ctx context.Context, id string, patch bson.M) (*models.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitiveIDFromHex(id)
	if err != nil {
		return nil, err
	}

	delete(patch, "_id")
	delete(patch, "id")

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var item models.Item
	err = s.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": patch}, opts).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ReplaceAll publie un catalogue complet de façon atomique : les nouveaux
// items sont insérés dans une collection de staging, puis un renameCollection
// avec dropTarget bascule le tout d'un coup. On n'est jamais exposé à un
// catalogue vide si le process meurt en cours de route.
func (s *ItemStore) ReplaceAll(ctx context.Context, items []models.Item) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if len(items) == 0 {
		_, err := s.collection.DeleteMany(ctx, bson.M{})
		return err
	}

	staging := s.db.Collection(itemsCollection + "_staging")
	if err := staging.Drop(ctx); err != nil {
		return err
	}

	docs := make([]interface{}, 0, len(items))
	for _, item := range items {
		docs = append(docs, item)
	}
	if _, err := staging.InsertMany(ctx, docs); err != nil {
		return err
	}

	// renameCollection doit passer par la base admin
	cmd := bson.D{
		{Key: "renameCollection", Value: s.db.Name() + "." + staging.Name()},
		{Key: "to", Value: s.db.Name() + "." + itemsCollection},
		{Key: "dropTarget", Value: true},
	}
	return s.db.Client().Database("admin").RunCommand(ctx, cmd).Err()
}
