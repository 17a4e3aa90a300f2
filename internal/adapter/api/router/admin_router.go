package router

import (
	"github.com/labstack/echo/v4"

	"paksupply/internal/adapter/api/handler"
	"paksupply/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/manufacturers", adminHandler.ListManufacturers)
	admin.PATCH("/manufacturers/:id", adminHandler.CurateManufacturer)

	admin.GET("/products", adminHandler.ListProducts)
	admin.POST("/products", adminHandler.CreateOfficialProduct)
	admin.PATCH("/products/:id/status", adminHandler.UpdateProductStatus)
}
