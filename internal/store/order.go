package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"moesjerky_back_end/internal/models"
)

type OrderStore struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

func NewOrderStore(db *mongo.Database) *OrderStore {
	return &OrderStore{
		collection: db.Collection("orders"),
		counters:   db.Collection("counters"),
	}
}

func (s *OrderStore) FindAll(ctx context.Context) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderStore) FindByID(ctx context.Context, id string) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitiveIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var order models.Order
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateByID applique un patch partiel ($set) et retourne la commande
// modifiée. ErrNotFound si elle n'existe pas.
func (s *OrderStore) UpdateByID(ctx context.Context, id string, patch bson.M) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitiveIDFromHex(id)
	if err != nil {
		return nil, err
	}

	delete(patch, "_id")
	delete(patch, "id")

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var order models.Order
	err = s.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": patch}, opts).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderStore) Insert(ctx context.Context, order *models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	order.ID = primitive.NewObjectID()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	_, err := s.collection.InsertOne(ctx, order)
	return err
}

// NextOrderNumber attribue le prochain numéro de commande via un $inc
// atomique sur le document compteur. Deux checkouts concurrents obtiennent
// donc toujours deux numéros distincts. Le compteur est amorcé à 1000 au
// démarrage, le premier numéro attribué est 1001.
func (s *OrderStore) NextOrderNumber(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int `bson:"seq"`
	}
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "orderNumber"},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
