package router

import (
	"github.com/labstack/echo/v4"

	"paksupply/internal/adapter/api/handler"
	"paksupply/internal/adapter/api/middleware"
	"paksupply/internal/infrastructure/ratelimit"
)

func SetupManufacturerRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	manufacturerHandler := handler.GetManufacturerHandler()

	manufacturers := e.Group("/v1/manufacturers")
	manufacturers.GET("", manufacturerHandler.ListApproved)
	manufacturers.GET("/trusted", manufacturerHandler.ListTrusted)
	manufacturers.POST("", manufacturerHandler.Signup, middleware.RateLimit(limiter, ratelimit.ActionWrite))
	manufacturers.POST("/:id/ratings", manufacturerHandler.Rate,
		authMiddleware.Authenticate,
		middleware.RateLimit(limiter, ratelimit.ActionWrite),
	)
}
