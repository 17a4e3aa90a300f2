package repository

import (
	"context"
	"fmt"

	"paksupply/internal/domain/entity"
	"paksupply/internal/domain/repository"
	"paksupply/pkg/errors"
)

type shopInventoryRepository struct {
	col *collection[entity.ShopProduct, *entity.ShopProduct]
}

func NewShopInventoryRepository(store repository.RecordStore) repository.ShopInventoryRepository {
	return &shopInventoryRepository{
		col: newCollection[entity.ShopProduct, *entity.ShopProduct](store, LocalOnly(), "", "Shop product", nil),
	}
}

// InventoryNamespace is the record store namespace holding one shop's listings.
func InventoryNamespace(shopID string) string {
	return fmt.Sprintf("inventory:%s", shopID)
}

func (r *shopInventoryRepository) List(ctx context.Context, shopID string) ([]*entity.ShopProduct, error) {
	return r.col.in(InventoryNamespace(shopID)).all(ctx)
}

func (r *shopInventoryRepository) GetByID(ctx context.Context, shopID, id string) (*entity.ShopProduct, error) {
	return r.col.in(InventoryNamespace(shopID)).get(ctx, id)
}

func (r *shopInventoryRepository) Save(ctx context.Context, shopID string, product *entity.ShopProduct) error {
	if product.ShopID == "" {
		product.ShopID = shopID
	}
	if product.ShopID != shopID {
		return errors.Validation("shop product belongs to another shop", nil)
	}
	return r.col.in(InventoryNamespace(shopID)).save(ctx, product)
}
