package catalog

import (
	"laptop-store-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	laptops := r.Group("/laptops")
	{
		laptops.GET("", handler.List)
		laptops.GET("/facets", handler.Facets)
		laptops.GET("/:laptopId", handler.GetByID)
	}

	admin := r.Group("/admin/laptops")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("admin"))
	{
		admin.POST("", handler.Create)
		admin.PUT("/:laptopId", handler.Update)
		admin.DELETE("/:laptopId", handler.Delete)
	}
}
