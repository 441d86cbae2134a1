package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/homefind-dev/homefind/internal/handlers"
	"github.com/homefind-dev/homefind/internal/middleware"
	"github.com/homefind-dev/homefind/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
		}

		properties := api.Group("/properties", middleware.OptionalAuth())
		{
			properties.GET("", handlers.GetProperties)
			properties.GET("/:id", handlers.GetProperty)
		}

		favorites := api.Group("/favorites", middleware.RequireAuth())
		{
			favorites.POST("/:property_id", handlers.ToggleFavorite)
			favorites.GET("", handlers.GetFavorites)
		}
	}

	return r
}
