package app

import (
	"database/sql"

	"laptop-store-api/internal/auth"
	"laptop-store-api/internal/cart"
	"laptop-store-api/internal/catalog"
	"laptop-store-api/internal/outbox"
	"laptop-store-api/internal/wishlist"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func registerModules(router *gin.Engine, db *sql.DB, redisClient *redis.Client) {
	// --- Repositories ---
	authRepo := auth.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)
	cartRepo := cart.NewRepository(db)
	wishlistRepo := wishlist.NewRepository(db)
	outboxRepo := outbox.NewRepository(db)

	// --- Services ---
	catalogCache := catalog.NewRedisCache(redisClient)
	authService := auth.NewService(authRepo)
	catalogService := catalog.NewService(db, catalogRepo, catalogCache, outboxRepo)
	cartService := cart.NewService(db, cartRepo, outboxRepo)
	wishlistService := wishlist.NewService(db, wishlistRepo, outboxRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	catalogHandler := catalog.NewHandler(catalogService)
	cartHandler := cart.NewHandler(cartService)
	wishlistHandler := wishlist.NewHandler(wishlistService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		catalog.RegisterRoutes(api, catalogHandler)
		cart.RegisterRoutes(api, cartHandler)
		wishlist.RegisterRoutes(api, wishlistHandler)
	}
}
