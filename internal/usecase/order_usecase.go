package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"paksupply/internal/domain/entity"
	"paksupply/internal/domain/repository"
	"paksupply/internal/domain/service"
	"paksupply/pkg/errors"
	"paksupply/pkg/logger"
)

type OrderUseCase struct {
	orderRepo      repository.ConsumerOrderRepository
	shopkeeperRepo repository.ShopkeeperRepository
	inventoryRepo  repository.ShopInventoryRepository
	links          service.NotificationSink
	now            func() time.Time
}

func NewOrderUseCase(
	orderRepo repository.ConsumerOrderRepository,
	shopkeeperRepo repository.ShopkeeperRepository,
	inventoryRepo repository.ShopInventoryRepository,
	links service.NotificationSink,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:      orderRepo,
		shopkeeperRepo: shopkeeperRepo,
		inventoryRepo:  inventoryRepo,
		links:          links,
		now:            time.Now,
	}
}

type CartLine struct {
	ShopProductID string
	Qty           int
}

type PlaceOrderInput struct {
	CustomerName  string
	CustomerPhone string
	Address       string
	Type          entity.FulfillmentType
	Items         []CartLine
}

type PlacedOrder struct {
	Order   *entity.ConsumerOrder `json:"order"`
	Message string                `json:"message"`
	Link    string                `json:"link"`
}

// PlaceOrder snapshots the shop's current sale prices into the order.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, shopID string, input PlaceOrderInput) (*PlacedOrder, error) {
	shop, err := uc.shopkeeperRepo.GetByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if !shop.IsOpen {
		return nil, errors.BadRequest("Shop is closed", nil)
	}

	switch input.Type {
	case entity.FulfillmentDelivery:
		if !shop.IsDeliveryAvailable {
			return nil, errors.BadRequest("This shop does not deliver", nil)
		}
		if strings.TrimSpace(input.Address) == "" {
			return nil, errors.Validation("address is required for delivery", nil)
		}
	case entity.FulfillmentPickup:
	default:
		return nil, errors.Validation("type must be one of: PICKUP DELIVERY", nil)
	}

	if len(input.Items) == 0 {
		return nil, errors.Validation("items must contain at least one product", nil)
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		if line.Qty <= 0 {
			return nil, errors.Validation("qty must be greater than 0", nil)
		}
		sp, err := uc.inventoryRepo.GetByID(ctx, shopID, line.ShopProductID)
		if err != nil {
			return nil, err
		}
		if sp.StockStatus != entity.InStock {
			return nil, errors.BadRequest(sp.Name+" is out of stock", nil)
		}
		items = append(items, entity.OrderItem{
			ProductID: sp.ID,
			Name:      sp.Name,
			Qty:       line.Qty,
			Price:     sp.SalePrice,
		})
	}

	order := &entity.ConsumerOrder{
		ID:            "order-" + uuid.NewString(),
		ShopID:        shopID,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerPhone: strings.TrimSpace(input.CustomerPhone),
		Address:       strings.TrimSpace(input.Address),
		Items:         items,
		Type:          input.Type,
		CreatedAt:     uc.now().UTC(),
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	logger.Info("consumer order placed: id=%s, shop=%s, total=%d", order.ID, shopID, order.Total)

	msg := service.ComposeConsumerOrder(order)
	return &PlacedOrder{
		Order:   order,
		Message: msg,
		Link:    uc.links.Link(shop.Phone, msg),
	}, nil
}

func (uc *OrderUseCase) ListShopOrders(ctx context.Context, shopID string) ([]*entity.ConsumerOrder, error) {
	return uc.orderRepo.ListByShop(ctx, shopID)
}

func (uc *OrderUseCase) UpdateStatus(ctx context.Context, shopID, orderID string, status entity.OrderStatus) (*entity.ConsumerOrder, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.ShopID != shopID {
		return nil, errors.NotFound("Order", nil)
	}
	return uc.orderRepo.UpdateStatus(ctx, orderID, status)
}
