package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"moesjerky_back_end/internal/cache"
	"moesjerky_back_end/internal/handlers"
	"moesjerky_back_end/internal/payment"
	"moesjerky_back_end/internal/store"
)

func RegisterRoutes(r *gin.Engine, db *mongo.Database, rdb *redis.Client) {
	readCache := cache.New(rdb)
	ordersStore := store.NewOrderStore(db)

	items := handlers.NewItemHandler(store.NewItemStore(db), readCache)
	users := handlers.NewUserHandler(store.NewUserStore(db))
	orders := handlers.NewOrderHandler(ordersStore)
	checkout := handlers.NewCheckoutHandler(ordersStore, payment.NewClient())
	dates := handlers.NewDeliveryDateHandler(store.NewDeliveryDateStore(db))
	featured := handlers.NewFeaturedHandler(store.NewConfigStore(db), readCache)

	// Catalogue
	r.GET("/items", items.GetItems)
	r.POST("/items", items.ReplaceItems)
	r.PUT("/items/:id", items.UpdateItem)

	// Utilisateurs
	r.GET("/users", users.GetUsers)
	r.POST("/users", users.CreateUser)
	r.PUT("/users/:id", users.UpdateUser)
	r.DELETE("/users/:id", users.DeleteUser)

	// Commandes
	r.GET("/orders", orders.GetOrders)
	r.GET("/order/:id", orders.GetOrder)
	r.PUT("/orders/:id", orders.UpdateOrder)

	// Checkout
	r.POST("/payment", checkout.SubmitOrder)

	// Dates de livraison
	r.GET("/delivery-dates", dates.GetDeliveryDates)
	r.POST("/delivery-dates", dates.AddDeliveryDate)
	r.DELETE("/delivery-dates/:id", dates.DeleteDeliveryDate)

	// Produit vedette
	r.GET("/featured-product", featured.GetFeaturedProduct)
	r.POST("/featured-product", featured.SetFeaturedProduct)
}
