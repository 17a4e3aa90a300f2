package handler

import (
	"github.com/labstack/echo/v4"

	"paksupply/internal/domain/entity"
	"paksupply/internal/usecase"
	"paksupply/pkg/errors"
	"paksupply/pkg/response"
)

type AdminHandler struct {
	manufacturerUseCase *usecase.ManufacturerUseCase
	productUseCase      *usecase.ProductUseCase
}

func NewAdminHandler(manufacturerUseCase *usecase.ManufacturerUseCase, productUseCase *usecase.ProductUseCase) *AdminHandler {
	return &AdminHandler{
		manufacturerUseCase: manufacturerUseCase,
		productUseCase:      productUseCase,
	}
}

func (h *AdminHandler) ListManufacturers(c echo.Context) error {
	list, err := h.manufacturerUseCase.ListAll(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, publicManufacturers(list))
}

type curateManufacturerRequest struct {
	Status           *entity.ManufacturerStatus `json:"status" validate:"omitempty,oneof=PENDING_PAYMENT PENDING_APPROVAL APPROVED SUSPENDED"`
	PlacementTier    *entity.PlacementTier      `json:"placementTier" validate:"omitempty,oneof=PREMIUM STANDARD BASIC"`
	IsTrustedPartner *bool                      `json:"isTrustedPartner"`
}

func (h *AdminHandler) CurateManufacturer(c echo.Context) error {
	var req curateManufacturerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	m, err := h.manufacturerUseCase.Curate(c.Request().Context(), c.Param("id"), usecase.CurationInput{
		Status:           req.Status,
		PlacementTier:    req.PlacementTier,
		IsTrustedPartner: req.IsTrustedPartner,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, m.Public())
}

func (h *AdminHandler) ListProducts(c echo.Context) error {
	products, err := h.productUseCase.ListAll(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

type officialProductRequest struct {
	createProductRequest
	OrderWhatsApp string `json:"orderWhatsApp"`
}

func (h *AdminHandler) CreateOfficialProduct(c echo.Context) error {
	var req officialProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateOfficial(c.Request().Context(), usecase.OfficialProductInput{
		CreateProductInput: req.input(),
		OrderWhatsApp:      req.OrderWhatsApp,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

type productStatusRequest struct {
	Action string `json:"action" validate:"required,oneof=approve toggle"`
}

func (h *AdminHandler) UpdateProductStatus(c echo.Context) error {
	var req productStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	var (
		product *entity.Product
		err     error
	)
	switch req.Action {
	case "approve":
		product, err = h.productUseCase.Approve(c.Request().Context(), c.Param("id"))
	case "toggle":
		product, err = h.productUseCase.Toggle(c.Request().Context(), c.Param("id"))
	default:
		err = errors.BadRequest("Unknown action", nil)
	}
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}
