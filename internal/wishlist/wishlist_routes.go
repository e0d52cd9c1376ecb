package wishlist

import (
	"laptop-store-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	wishlists := r.Group("/wishlist")
	wishlists.Use(middleware.AuthMiddleware())
	{
		wishlists.GET("", handler.List)

		// Add/remove/toggle hit relation checks in the database;
		// keep them tight against repeated clicks.
		itemActionLimit := middleware.RateLimitByUser(1, 3)

		items := wishlists.Group("/items/:laptopId")
		{
			items.GET("", handler.Contains)
			items.POST("", itemActionLimit, handler.Add)
			items.DELETE("", itemActionLimit, handler.Remove)
			items.POST("/toggle", itemActionLimit, handler.Toggle)
		}
	}
}
