package repository

import (
	"context"

	"paksupply/internal/domain/entity"
)

type ShopkeeperRepository interface {
	List(ctx context.Context) ([]*entity.ShopkeeperProfile, error)
	GetByID(ctx context.Context, id string) (*entity.ShopkeeperProfile, error)
	GetByEmail(ctx context.Context, email string) (*entity.ShopkeeperProfile, error)
	Save(ctx context.Context, profile *entity.ShopkeeperProfile) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*entity.ShopkeeperProfile, error)
}

type ShopInventoryRepository interface {
	List(ctx context.Context, shopID string) ([]*entity.ShopProduct, error)
	GetByID(ctx context.Context, shopID, id string) (*entity.ShopProduct, error)
	Save(ctx context.Context, shopID string, product *entity.ShopProduct) error
}

type ConsumerOrderRepository interface {
	// Create stores a new order; the total is computed from the item snapshots.
	Create(ctx context.Context, order *entity.ConsumerOrder) error
	GetByID(ctx context.Context, id string) (*entity.ConsumerOrder, error)
	ListByShop(ctx context.Context, shopID string) ([]*entity.ConsumerOrder, error)
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.ConsumerOrder, error)
}
