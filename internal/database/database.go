package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// --- Variables Globales ---
var (
	MongoClient *mongo.Client
	Mongo       *mongo.Database
	Redis       *redis.Client
)

// --- Initialisation ---
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 1. MongoDB (store principal)
	connectMongo(ctx)

	// 2. Redis (cache lecture, optionnel)
	connectRedis(ctx)

	log.Println("✅ Toutes les bases de données sont connectées")
}

// =============================================
// MONGODB
// =============================================
func connectMongo(ctx context.Context) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		log.Fatal("❌ MONGO_URI manquant dans .env")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("❌ Erreur connexion MongoDB:", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("❌ MongoDB injoignable:", err)
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "moesjerky"
	}

	MongoClient = client
	Mongo = client.Database(dbName)
	log.Println("✅ Connecté à MongoDB, base:", dbName)
}

// =============================================
// REDIS
// =============================================
func connectRedis(ctx context.Context) {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		log.Println("⚠️ REDIS_HOST absent — cache désactivé")
		return
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     host,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Erreur connexion Redis:", err)
	}
	log.Println("✅ Connecté à Redis")
}

// =============================================
// INDEX & COMPTEUR DE COMMANDES
// =============================================

// EnsureIndexes pose les contraintes que le store ne peut pas garantir seul :
// unicité des dates de livraison, unicité des numéros de commande, et
// amorçage du compteur séquentiel.
func EnsureIndexes(ctx context.Context) error {
	_, err := Mongo.Collection("deliveryDates").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = Mongo.Collection("orders").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "orderNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	return seedOrderCounter(ctx)
}

// seedOrderCounter amorce le compteur à max(1000, plus grand orderNumber
// existant). Le $max rend l'amorçage idempotent même si plusieurs instances
// démarrent en même temps. Le premier $inc donnera donc 1001.
func seedOrderCounter(ctx context.Context) error {
	seed := 1000

	var last struct {
		OrderNumber int `bson:"orderNumber"`
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "orderNumber", Value: -1}})
	err := Mongo.Collection("orders").FindOne(ctx, bson.M{}, opts).Decode(&last)
	if err == nil && last.OrderNumber > seed {
		seed = last.OrderNumber
	} else if err != nil && err != mongo.ErrNoDocuments {
		return err
	}

	_, err = Mongo.Collection("counters").UpdateOne(ctx,
		bson.M{"_id": "orderNumber"},
		bson.M{"$max": bson.M{"seq": seed}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return err
	}

	log.Println("✅ Compteur de commandes amorcé à", seed)
	return nil
}

// CloseDatabases ferme proprement les connexions.
func CloseDatabases(ctx context.Context) {
	if MongoClient != nil {
		if err := MongoClient.Disconnect(ctx); err != nil {
			log.Println("⚠️ Erreur fermeture MongoDB:", err)
		}
	}
	if Redis != nil {
		if err := Redis.Close(); err != nil {
			log.Println("⚠️ Erreur fermeture Redis:", err)
		}
	}
}
