package router

import (
	"github.com/labstack/echo/v4"

	"paksupply/internal/adapter/api/handler"
	"paksupply/internal/adapter/api/middleware"
	"paksupply/internal/domain/entity"
	"paksupply/internal/infrastructure/ratelimit"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/v1/products")
	products.GET("", productHandler.ListProducts)
	products.POST("/:id/order-request", productHandler.RequestOrder,
		authMiddleware.Authenticate,
		middleware.RateLimit(limiter, ratelimit.ActionWrite),
	)

	myProducts := e.Group("/v1/my-products")
	myProducts.Use(authMiddleware.Authenticate)
	myProducts.Use(authMiddleware.RequireRole(entity.RoleManufacturer))
	myProducts.GET("", productHandler.ListMyProducts)
	myProducts.POST("", productHandler.CreateProduct, middleware.RateLimit(limiter, ratelimit.ActionWrite))
	myProducts.PATCH("/:id/status", productHandler.ToggleMyProduct)
}
