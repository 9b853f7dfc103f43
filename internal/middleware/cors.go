package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// allowedOrigins est la liste fermée des fronts autorisés à appeler l'API.
var allowedOrigins = []string{
	"https://moesjerky.shop",
	"http://localhost:3000",
	"https://heartfelt-strudel-c08548.netlify.app",
	"https://moesjerkytest.netlify.app",
}

func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
}
