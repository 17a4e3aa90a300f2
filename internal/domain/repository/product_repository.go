package repository

import (
	"context"

	"paksupply/internal/domain/entity"
)

type ProductRepository interface {
	// List returns every product ordered by the manufacturer's placement tier.
	List(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Save(ctx context.Context, product *entity.Product) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*entity.Product, error)
	// SetStatus leaves isIsraelFreeApproved untouched unless approvedOverride is set.
	SetStatus(ctx context.Context, id string, status entity.ProductStatus, approvedOverride *bool) (*entity.Product, error)
}
