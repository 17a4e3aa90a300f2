package router

import (
	"github.com/labstack/echo/v4"

	"paksupply/internal/adapter/api/handler"
	"paksupply/internal/adapter/api/middleware"
	"paksupply/internal/domain/entity"
	"paksupply/internal/infrastructure/ratelimit"
)

func SetupShopRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	shopHandler := handler.GetShopHandler()
	orderHandler := handler.GetOrderHandler()

	shops := e.Group("/v1/shops")
	shops.GET("", shopHandler.Directory)
	shops.GET("/:id", shopHandler.GetShop)
	shops.GET("/:id/products", shopHandler.Storefront)
	shops.GET("/:id/qr", shopHandler.QRCode)
	shops.POST("/:id/orders", orderHandler.PlaceOrder, middleware.RateLimit(limiter, ratelimit.ActionConsumerOrder))

	myShop := e.Group("/v1/my-shop")
	myShop.Use(authMiddleware.Authenticate)
	myShop.Use(authMiddleware.RequireRole(entity.RoleShopkeeper))
	myShop.GET("", shopHandler.GetMyShop)
	myShop.PUT("", shopHandler.UpdateMyShop, middleware.RateLimit(limiter, ratelimit.ActionWrite))
	myShop.GET("/products", shopHandler.ListMyInventory)
	myShop.POST("/products", shopHandler.SaveMyProduct, middleware.RateLimit(limiter, ratelimit.ActionWrite))
	myShop.GET("/orders", orderHandler.ListMyOrders)
	myShop.PATCH("/orders/:id/status", orderHandler.UpdateOrderStatus)
}
