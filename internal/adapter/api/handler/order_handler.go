package handler

import (
	"github.com/labstack/echo/v4"

	"paksupply/internal/domain/entity"
	"paksupply/internal/usecase"
	"paksupply/pkg/response"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type cartLineRequest struct {
	ShopProductID string `json:"shopProductId" validate:"required"`
	Qty           int    `json:"qty" validate:"required,gt=0"`
}

type placeOrderRequest struct {
	CustomerName  string                 `json:"customerName" validate:"required"`
	CustomerPhone string                 `json:"customerPhone" validate:"required"`
	Address       string                 `json:"address"`
	Type          entity.FulfillmentType `json:"type" validate:"required,oneof=PICKUP DELIVERY"`
	Items         []cartLineRequest      `json:"items" validate:"required,min=1,dive"`
}

// PlaceOrder is anonymous: consumers order from a shop's public storefront.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	lines := make([]usecase.CartLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, usecase.CartLine{ShopProductID: it.ShopProductID, Qty: it.Qty})
	}

	placed, err := h.orderUseCase.PlaceOrder(c.Request().Context(), c.Param("id"), usecase.PlaceOrderInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
		Type:          req.Type,
		Items:         lines,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, placed)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	shopID, err := shopOf(c)
	if err != nil {
		return response.Error(c, err)
	}

	orders, err := h.orderUseCase.ListShopOrders(c.Request().Context(), shopID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, orders)
}

type orderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required,oneof=ACCEPTED READY COMPLETED CANCELLED"`
}

func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	shopID, err := shopOf(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.UpdateStatus(c.Request().Context(), shopID, c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, order)
}
