package repository

import (
	"context"

	"github.com/samber/lo"

	"paksupply/internal/domain/entity"
	"paksupply/internal/domain/repository"
	"paksupply/internal/domain/service"
)

const productsNamespace = "products"

type productRepository struct {
	col           *collection[entity.Product, *entity.Product]
	manufacturers repository.ManufacturerRepository
}

// NewProductRepository ranks listings by the placement tier of each product's
// manufacturer, looked up through manufacturers.
func NewProductRepository(store repository.RecordStore, source Source, seed []entity.Product, manufacturers repository.ManufacturerRepository) repository.ProductRepository {
	return &productRepository{
		col:           newCollection[entity.Product, *entity.Product](store, source, productsNamespace, "Product", seed),
		manufacturers: manufacturers,
	}
}

func (r *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	products, err := r.col.all(ctx)
	if err != nil {
		return nil, err
	}

	mfrs, err := r.manufacturers.List(ctx)
	if err != nil {
		return nil, err
	}
	tiers := lo.SliceToMap(mfrs, func(m *entity.Manufacturer) (string, entity.PlacementTier) {
		return m.ID, m.PlacementTier
	})

	return service.RankProducts(products, tiers), nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.col.get(ctx, id)
}

func (r *productRepository) Save(ctx context.Context, product *entity.Product) error {
	return r.col.save(ctx, product)
}

func (r *productRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*entity.Product, error) {
	return r.col.patch(ctx, id, fields)
}

func (r *productRepository) SetStatus(ctx context.Context, id string, status entity.ProductStatus, approvedOverride *bool) (*entity.Product, error) {
	fields := map[string]interface{}{"status": status}
	if approvedOverride != nil {
		fields["isIsraelFreeApproved"] = *approvedOverride
	}
	return r.col.patch(ctx, id, fields)
}
