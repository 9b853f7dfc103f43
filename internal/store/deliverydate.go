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

type DeliveryDateStore struct {
	collection *mongo.Collection
}

func NewDeliveryDateStore(db *mongo.Database) *DeliveryDateStore {
	return &DeliveryDateStore{collection: db.Collection("deliveryDates")}
}

// FindAllSorted liste les dates proposées, triées en ordre croissant.
func (s *DeliveryDateStore) FindAllSorted(ctx context.Context) ([]models.DeliveryDate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	dates := []models.DeliveryDate{}
	if err := cursor.All(ctx, &dates); err != nil {
		return nil, err
	}
	return dates, nil
}

func (s *DeliveryDateStore) FindByDate(ctx context.Context, date string) (*models.DeliveryDate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var d models.DeliveryDate
	err := s.collection.FindOne(ctx, bson.M{"date": date}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Insert crée une date de livraison. L'index unique sur date couvre la
// fenêtre de course entre le pré-check du handler et cette insertion :
// le perdant reçoit ErrDuplicateDate.
func (s *DeliveryDateStore) Insert(ctx context.Context, d *models.DeliveryDate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	d.ID = primitive.NewObjectID()
	_, err := s.collection.InsertOne(ctx, d)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateDate
	}
	return err
}

func (s *DeliveryDateStore) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitiveIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
