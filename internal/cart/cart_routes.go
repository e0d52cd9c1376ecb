package cart

import (
	"laptop-store-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	carts.Use(middleware.AuthMiddleware())
	{
		carts.GET("", handler.Detail)
		carts.DELETE("", handler.Clear)

		mutationLimit := middleware.RateLimitByUser(2, 5)

		items := carts.Group("/items")
		{
			items.POST("/:laptopId", mutationLimit, handler.AddItem)
			items.PATCH("/:itemId", mutationLimit, handler.UpdateQuantity)
			items.DELETE("/:itemId", mutationLimit, handler.RemoveItem)
		}
	}
}
