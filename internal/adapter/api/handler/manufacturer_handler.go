package handler

import (
	"github.com/labstack/echo/v4"

	"paksupply/internal/usecase"
	"paksupply/pkg/response"
)

type ManufacturerHandler struct {
	manufacturerUseCase *usecase.ManufacturerUseCase
}

func NewManufacturerHandler(manufacturerUseCase *usecase.ManufacturerUseCase) *ManufacturerHandler {
	return &ManufacturerHandler{
		manufacturerUseCase: manufacturerUseCase,
	}
}

type signupRequest struct {
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=6"`
	Phone             string `json:"phone" validate:"required"`
	CompanyName       string `json:"companyName" validate:"required"`
	OwnerName         string `json:"ownerName" validate:"required"`
	OwnerPhone        string `json:"ownerPhone"`
	ManagerPhone      string `json:"managerPhone"`
	Address           string `json:"address"`
	City              string `json:"city" validate:"required"`
	Plan              string `json:"plan"`
	IsIsraelFreeClaim bool   `json:"isIsraelFreeClaim"`
	GovernmentDocURL  string `json:"governmentDocUrl"`
}

func (h *ManufacturerHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	m, err := h.manufacturerUseCase.Signup(c.Request().Context(), usecase.SignupInput{
		Email:             req.Email,
		Password:          req.Password,
		Phone:             req.Phone,
		CompanyName:       req.CompanyName,
		OwnerName:         req.OwnerName,
		OwnerPhone:        req.OwnerPhone,
		ManagerPhone:      req.ManagerPhone,
		Address:           req.Address,
		City:              req.City,
		Plan:              req.Plan,
		IsIsraelFreeClaim: req.IsIsraelFreeClaim,
		GovernmentDocURL:  req.GovernmentDocURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, m.Public())
}

func (h *ManufacturerHandler) ListApproved(c echo.Context) error {
	list, err := h.manufacturerUseCase.ListApproved(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, publicManufacturers(list))
}

func (h *ManufacturerHandler) ListTrusted(c echo.Context) error {
	list, err := h.manufacturerUseCase.ListTrustedPartners(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, publicManufacturers(list))
}

type rateRequest struct {
	Stars *float64 `json:"stars" validate:"required,gte=0,lte=5"`
}

func (h *ManufacturerHandler) Rate(c echo.Context) error {
	var req rateRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	m, err := h.manufacturerUseCase.Rate(c.Request().Context(), c.Param("id"), *req.Stars)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"id":          m.ID,
		"rating":      m.Rating,
		"ratingCount": m.RatingCount,
	})
}
