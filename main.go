package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	config "github.com/ukozhakova/Django2021-Endterm/configs"
	"github.com/ukozhakova/Django2021-Endterm/internal/auth"
	"github.com/ukozhakova/Django2021-Endterm/internal/db"
	"github.com/ukozhakova/Django2021-Endterm/internal/handlers"
	"github.com/ukozhakova/Django2021-Endterm/internal/metrics"
	"github.com/ukozhakova/Django2021-Endterm/internal/storage"
)

func main() {

	config.LoadDotenv()
	db.Init()

	handlers.Store = storage.FromEnv()

	r := gin.Default()
	r.Use(metrics.Middleware())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/metrics", metrics.Handler())

	// ── public catalog reads ──
	public := r.Group("/")
	public.Use(auth.OptionalAuth())
	{
		public.GET("/categories", handlers.ListCategories)
		public.GET("/categories/:id", handlers.GetCategory)
		public.GET("/categories/:id/products", handlers.CategoryProducts)
		public.GET("/providers", handlers.ListProviders)
		public.GET("/providers/:id", handlers.GetProvider)
		public.GET("/providers/:id/products", handlers.ProviderProducts)
		public.GET("/products", handlers.ListProducts)
		public.GET("/products/:id", handlers.GetProduct)
	}

	// ── identity ──
	r.POST("/signup", handlers.Signup)
	r.POST("/login", handlers.Login)
	r.POST("/login/refresh", handlers.Refresh)

	// ── authenticated API ──
	api := r.Group("/")
	api.Use(auth.RequireAuth())
	{
		api.POST("/categories", handlers.CreateCategory)
		api.PUT("/categories/:id", handlers.UpdateCategory)
		api.DELETE("/categories/:id", handlers.DeleteCategory)

		api.POST("/providers", handlers.CreateProvider)
		api.PUT("/providers/:id", handlers.UpdateProvider)
		api.DELETE("/providers/:id", handlers.DeleteProvider)

		api.POST("/products", handlers.CreateProduct)
		api.PUT("/products/:id", handlers.UpdateProduct)
		api.DELETE("/products/:id", handlers.DeleteProduct)

		api.GET("/orders", handlers.ListOrders)
		api.POST("/orders", handlers.CreateOrder)
		api.GET("/orders/:id", handlers.GetOrder)
		api.PUT("/orders/:id", handlers.UpdateOrder)
		api.DELETE("/orders/:id", handlers.DeleteOrder)

		api.GET("/reviews", handlers.ListReviews)
		api.POST("/reviews", handlers.CreateReview)
		api.GET("/reviews/:id", handlers.GetReview)
		api.PUT("/reviews/:id", handlers.UpdateReview)
		api.DELETE("/reviews/:id", handlers.DeleteReview)

		api.GET("/profiles", handlers.GetProfile)
		api.PUT("/profiles", handlers.UpdateProfile)

		api.POST("/logout", handlers.Logout)
		api.GET("/users", auth.RequireStaff(), handlers.ListUsers)
		api.GET("/users/me", handlers.Me)
	}

	if err := r.Run(":" + getEnv("PORT", "8080")); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func getEnv(key, fallback string) string {

	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return fallback
}
