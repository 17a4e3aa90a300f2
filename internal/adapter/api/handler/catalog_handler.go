package handler

import (
	"github.com/labstack/echo/v4"

	"paksupply/internal/infrastructure/catalog"
	"paksupply/pkg/response"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	return response.Success(c, h.catalog.EnabledCategories())
}

func (h *CatalogHandler) ListPlans(c echo.Context) error {
	return response.Success(c, h.catalog.Plans)
}
