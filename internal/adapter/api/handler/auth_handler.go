package handler

import (
	"github.com/labstack/echo/v4"

	"paksupply/internal/adapter/api/middleware"
	"paksupply/internal/usecase"
	"paksupply/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	session, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, session)
}

type registerShopkeeperRequest struct {
	Email               string `json:"email" validate:"required,email"`
	Password            string `json:"password" validate:"required,min=6"`
	ShopName            string `json:"shopName" validate:"required"`
	OwnerName           string `json:"ownerName" validate:"required"`
	City                string `json:"city" validate:"required"`
	Area                string `json:"area"`
	Street              string `json:"street"`
	Address             string `json:"address"`
	Phone               string `json:"phone" validate:"required"`
	IsDeliveryAvailable bool   `json:"isDeliveryAvailable"`
	IsPickupAvailable   bool   `json:"isPickupAvailable"`
}

func (h *AuthHandler) RegisterShopkeeper(c echo.Context) error {
	var req registerShopkeeperRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	session, err := h.authUseCase.RegisterShopkeeper(c.Request().Context(), usecase.RegisterShopkeeperInput{
		Email:               req.Email,
		Password:            req.Password,
		ShopName:            req.ShopName,
		OwnerName:           req.OwnerName,
		City:                req.City,
		Area:                req.Area,
		Street:              req.Street,
		Address:             req.Address,
		Phone:               req.Phone,
		IsDeliveryAvailable: req.IsDeliveryAvailable,
		IsPickupAvailable:   req.IsPickupAvailable,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, session)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	h.authUseCase.Logout(middleware.Token(c))
	return response.Success(c, map[string]string{"message": "Logged out"})
}
