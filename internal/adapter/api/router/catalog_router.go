package router

import (
	"github.com/labstack/echo/v4"

	"paksupply/internal/adapter/api/handler"
)

func SetupCatalogRouter(e *echo.Echo) {
	catalogHandler := handler.GetCatalogHandler()

	e.GET("/v1/categories", catalogHandler.ListCategories)
	e.GET("/v1/plans", catalogHandler.ListPlans)
}
