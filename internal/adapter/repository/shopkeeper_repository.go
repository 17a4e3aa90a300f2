package repository

import (
	"context"
	"strings"

	"paksupply/internal/domain/entity"
	"paksupply/internal/domain/repository"
	"paksupply/pkg/errors"
)

const shopsNamespace = "shops"

type shopkeeperRepository struct {
	col *collection[entity.ShopkeeperProfile, *entity.ShopkeeperProfile]
}

func NewShopkeeperRepository(store repository.RecordStore, seed []entity.ShopkeeperProfile) repository.ShopkeeperRepository {
	return &shopkeeperRepository{
		col: newCollection[entity.ShopkeeperProfile, *entity.ShopkeeperProfile](store, LocalOnly(), shopsNamespace, "Shop", seed),
	}
}

func (r *shopkeeperRepository) List(ctx context.Context) ([]*entity.ShopkeeperProfile, error) {
	return r.col.all(ctx)
}

func (r *shopkeeperRepository) GetByID(ctx context.Context, id string) (*entity.ShopkeeperProfile, error) {
	return r.col.get(ctx, id)
}

func (r *shopkeeperRepository) GetByEmail(ctx context.Context, email string) (*entity.ShopkeeperProfile, error) {
	all, err := r.col.all(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range all {
		if strings.EqualFold(s.Email, email) {
			return s, nil
		}
	}
	return nil, errors.NotFound("Shop", nil)
}

func (r *shopkeeperRepository) Save(ctx context.Context, profile *entity.ShopkeeperProfile) error {
	return r.col.save(ctx, profile)
}

func (r *shopkeeperRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*entity.ShopkeeperProfile, error) {
	return r.col.patch(ctx, id, fields)
}
