package router

import (
	"github.com/labstack/echo/v4"

	"paksupply/internal/adapter/api/handler"
	"paksupply/internal/adapter/api/middleware"
	"paksupply/internal/infrastructure/ratelimit"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/login", authHandler.Login, middleware.RateLimit(limiter, ratelimit.ActionLogin))
	auth.POST("/shopkeepers", authHandler.RegisterShopkeeper, middleware.RateLimit(limiter, ratelimit.ActionWrite))
	auth.POST("/logout", authHandler.Logout, authMiddleware.Authenticate)
}
