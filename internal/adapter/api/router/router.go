package router

import (
	"github.com/labstack/echo/v4"

	"paksupply/internal/adapter/api/middleware"
	"paksupply/internal/infrastructure/ratelimit"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, limiter *ratelimit.RateLimiter) {
	SetupHealthRouter(e)
	SetupCatalogRouter(e)
	SetupAuthRouter(e, authMiddleware, limiter)
	SetupManufacturerRouter(e, authMiddleware, limiter)
	SetupProductRouter(e, authMiddleware, limiter)
	SetupShopRouter(e, authMiddleware, limiter)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
}
