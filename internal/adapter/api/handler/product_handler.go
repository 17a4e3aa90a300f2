package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"paksupply/internal/adapter/api/middleware"
	"paksupply/internal/usecase"
	"paksupply/pkg/response"
	"paksupply/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

// ListProducts is the marketplace: ?q=&category=&manufacturer=&israelFree=true&page=&limit=
func (h *ProductHandler) ListProducts(c echo.Context) error {
	israelFree, _ := strconv.ParseBool(c.QueryParam("israelFree"))

	products, err := h.productUseCase.Marketplace(c.Request().Context(), usecase.MarketplaceFilter{
		Search:         c.QueryParam("q"),
		Category:       c.QueryParam("category"),
		ManufacturerID: c.QueryParam("manufacturer"),
		IsraelFreeOnly: israelFree,
	})
	if err != nil {
		return response.Error(c, err)
	}

	pagination := utils.GetPaginationParams(c)
	return response.Paginated(c, utils.Page(products, pagination), int64(len(products)), pagination.Page, pagination.PageSize)
}

type orderRequestRequest struct {
	Quantity  int    `json:"quantity" validate:"gte=0"`
	PromoCode string `json:"promoCode"`
}

func (h *ProductHandler) RequestOrder(c echo.Context) error {
	var req orderRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.productUseCase.RequestWholesaleOrder(
		c.Request().Context(),
		middleware.SessionFrom(c),
		c.Param("id"),
		usecase.OrderRequestInput{Quantity: req.Quantity, PromoCode: req.PromoCode},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

type createProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Brand       string   `json:"brand" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       int64    `json:"price" validate:"required,gt=0"`
	Description string   `json:"description"`
	ImageURLs   []string `json:"imageUrls" validate:"required,min=1,dive,required"`
}

func (r createProductRequest) input() usecase.CreateProductInput {
	return usecase.CreateProductInput{
		Name:        r.Name,
		Brand:       r.Brand,
		Category:    r.Category,
		Price:       r.Price,
		Description: r.Description,
		ImageURLs:   r.ImageURLs,
	}
}

func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	s := middleware.SessionFrom(c)
	products, err := h.productUseCase.ListByManufacturer(c.Request().Context(), s.ManufacturerID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	s := middleware.SessionFrom(c)
	product, err := h.productUseCase.CreateForManufacturer(c.Request().Context(), s.ManufacturerID, req.input())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) ToggleMyProduct(c echo.Context) error {
	s := middleware.SessionFrom(c)
	product, err := h.productUseCase.ToggleOwn(c.Request().Context(), s.ManufacturerID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}
