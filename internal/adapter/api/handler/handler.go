package handler

import (
	"paksupply/internal/domain/entity"
	"paksupply/internal/infrastructure/catalog"
	"paksupply/internal/usecase"
)

var (
	healthHandler       *HealthHandler
	catalogHandler      *CatalogHandler
	authHandler         *AuthHandler
	manufacturerHandler *ManufacturerHandler
	productHandler      *ProductHandler
	adminHandler        *AdminHandler
	shopHandler         *ShopHandler
	orderHandler        *OrderHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	manufacturerUseCase *usecase.ManufacturerUseCase,
	productUseCase *usecase.ProductUseCase,
	shopUseCase *usecase.ShopUseCase,
	orderUseCase *usecase.OrderUseCase,
	cat *catalog.Catalog,
	publicBaseURL string,
) {
	healthHandler = NewHealthHandler()
	catalogHandler = NewCatalogHandler(cat)
	authHandler = NewAuthHandler(authUseCase)
	manufacturerHandler = NewManufacturerHandler(manufacturerUseCase)
	productHandler = NewProductHandler(productUseCase)
	adminHandler = NewAdminHandler(manufacturerUseCase, productUseCase)
	shopHandler = NewShopHandler(shopUseCase, publicBaseURL)
	orderHandler = NewOrderHandler(orderUseCase)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetManufacturerHandler() *ManufacturerHandler {
	return manufacturerHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetShopHandler() *ShopHandler {
	return shopHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func publicManufacturers(list []*entity.Manufacturer) []entity.Manufacturer {
	out := make([]entity.Manufacturer, 0, len(list))
	for _, m := range list {
		out = append(out, m.Public())
	}
	return out
}

func publicShops(list []*entity.ShopkeeperProfile) []entity.ShopkeeperProfile {
	out := make([]entity.ShopkeeperProfile, 0, len(list))
	for _, s := range list {
		out = append(out, s.Public())
	}
	return out
}
