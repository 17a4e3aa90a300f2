package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"paksupply/internal/adapter/api/middleware"
	"paksupply/internal/domain/entity"
	"paksupply/internal/infrastructure/qrcode"
	"paksupply/internal/usecase"
	"paksupply/pkg/errors"
	"paksupply/pkg/response"
)

type ShopHandler struct {
	shopUseCase   *usecase.ShopUseCase
	publicBaseURL string
}

func NewShopHandler(shopUseCase *usecase.ShopUseCase, publicBaseURL string) *ShopHandler {
	return &ShopHandler{
		shopUseCase:   shopUseCase,
		publicBaseURL: publicBaseURL,
	}
}

func (h *ShopHandler) Directory(c echo.Context) error {
	shops, err := h.shopUseCase.Directory(c.Request().Context(), usecase.ShopSearch{
		Query: c.QueryParam("q"),
		City:  c.QueryParam("city"),
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, publicShops(shops))
}

func (h *ShopHandler) GetShop(c echo.Context) error {
	shop, err := h.shopUseCase.GetShop(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, shop.Public())
}

func (h *ShopHandler) Storefront(c echo.Context) error {
	ctx := c.Request().Context()
	shop, err := h.shopUseCase.GetShop(ctx, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	products, err := h.shopUseCase.Storefront(ctx, shop.ID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"shop":     shop.Public(),
		"products": products,
	})
}

func (h *ShopHandler) QRCode(c echo.Context) error {
	shop, err := h.shopUseCase.GetShop(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	size, _ := strconv.Atoi(c.QueryParam("size"))
	png, err := qrcode.PNG(qrcode.StorefrontURL(h.publicBaseURL, shop.ID), size)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to render QR code", err))
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func shopOf(c echo.Context) (string, error) {
	s := middleware.SessionFrom(c)
	if s == nil || s.ShopID() == "" {
		return "", errors.Forbidden("No shop is attached to this session", nil)
	}
	return s.ShopID(), nil
}

func (h *ShopHandler) GetMyShop(c echo.Context) error {
	shopID, err := shopOf(c)
	if err != nil {
		return response.Error(c, err)
	}

	shop, err := h.shopUseCase.GetShop(c.Request().Context(), shopID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, shop.Public())
}

type updateShopRequest struct {
	ShopName            *string `json:"shopName" validate:"omitempty,min=1"`
	OwnerName           *string `json:"ownerName"`
	City                *string `json:"city" validate:"omitempty,min=1"`
	Area                *string `json:"area"`
	Street              *string `json:"street"`
	Address             *string `json:"address"`
	Phone               *string `json:"phone" validate:"omitempty,min=1"`
	ShopPhoto           *string `json:"shopPhoto"`
	IsDeliveryAvailable *bool   `json:"isDeliveryAvailable"`
	IsPickupAvailable   *bool   `json:"isPickupAvailable"`
	IsOpen              *bool   `json:"isOpen"`
}

func (h *ShopHandler) UpdateMyShop(c echo.Context) error {
	var req updateShopRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	shop, err := h.shopUseCase.UpdateProfile(c.Request().Context(), middleware.SessionFrom(c), usecase.ShopProfileInput{
		ShopName:            req.ShopName,
		OwnerName:           req.OwnerName,
		City:                req.City,
		Area:                req.Area,
		Street:              req.Street,
		Address:             req.Address,
		Phone:               req.Phone,
		ShopPhoto:           req.ShopPhoto,
		IsDeliveryAvailable: req.IsDeliveryAvailable,
		IsPickupAvailable:   req.IsPickupAvailable,
		IsOpen:              req.IsOpen,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, shop.Public())
}

func (h *ShopHandler) ListMyInventory(c echo.Context) error {
	shopID, err := shopOf(c)
	if err != nil {
		return response.Error(c, err)
	}

	products, err := h.shopUseCase.Inventory(c.Request().Context(), shopID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

type shopProductRequest struct {
	ID          string             `json:"id"`
	ProductID   string             `json:"productId"`
	Name        string             `json:"name"`
	Brand       string             `json:"brand"`
	Category    string             `json:"category"`
	ImageURLs   []string           `json:"imageUrls"`
	SalePrice   int64              `json:"salePrice" validate:"required,gt=0"`
	StockStatus entity.StockStatus `json:"stockStatus" validate:"omitempty,oneof=IN_STOCK OUT_OF_STOCK"`
	Version     int64              `json:"version"`
}

func (h *ShopHandler) SaveMyProduct(c echo.Context) error {
	shopID, err := shopOf(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req shopProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if id := c.Param("id"); id != "" {
		req.ID = id
	}

	listing, err := h.shopUseCase.SaveListing(c.Request().Context(), shopID, usecase.ShopProductInput{
		ID:          req.ID,
		ProductID:   req.ProductID,
		Name:        req.Name,
		Brand:       req.Brand,
		Category:    req.Category,
		ImageURLs:   req.ImageURLs,
		SalePrice:   req.SalePrice,
		StockStatus: req.StockStatus,
		Version:     req.Version,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}
