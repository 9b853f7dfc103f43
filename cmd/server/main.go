package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"moesjerky_back_end/internal/config"
	"moesjerky_back_end/internal/database"
	"moesjerky_back_end/internal/middleware"
	"moesjerky_back_end/internal/routes"
)

func main() {
	config.Load()

	if os.Getenv("SQUARE_ACCESS_TOKEN") == "" {
		log.Fatal("❌ Impossible d'initialiser Square : SQUARE_ACCESS_TOKEN manquant")
	}
	if os.Getenv("SQUARE_LOCATION_ID") == "" {
		log.Fatal("❌ Impossible d'initialiser Square : SQUARE_LOCATION_ID manquant")
	}
	log.Println("✅ Square initialisé")

	database.ConnectDatabases()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx); err != nil {
		log.Fatal("❌ Échec création des index:", err)
	}

	r := gin.Default()
	r.Use(middleware.CORS())
	routes.RegisterRoutes(r, database.Mongo, database.Redis)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Println("🚀 Serveur Moe's Jerky lancé sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Serveur arrêté:", err)
	}
}
