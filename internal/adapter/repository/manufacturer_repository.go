package repository

import (
	"context"
	"strings"

	"paksupply/internal/domain/entity"
	"paksupply/internal/domain/repository"
	"paksupply/internal/domain/service"
	"paksupply/pkg/errors"
)

const manufacturersNamespace = "manufacturers"

type manufacturerRepository struct {
	col *collection[entity.Manufacturer, *entity.Manufacturer]
}

func NewManufacturerRepository(store repository.RecordStore, source Source, seed []entity.Manufacturer) repository.ManufacturerRepository {
	return &manufacturerRepository{
		col: newCollection[entity.Manufacturer, *entity.Manufacturer](store, source, manufacturersNamespace, "Manufacturer", seed),
	}
}

func (r *manufacturerRepository) List(ctx context.Context) ([]*entity.Manufacturer, error) {
	return r.col.all(ctx)
}

func (r *manufacturerRepository) GetByID(ctx context.Context, id string) (*entity.Manufacturer, error) {
	return r.col.get(ctx, id)
}

func (r *manufacturerRepository) GetByEmail(ctx context.Context, email string) (*entity.Manufacturer, error) {
	all, err := r.col.all(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range all {
		if strings.EqualFold(m.Email, email) {
			return m, nil
		}
	}
	return nil, errors.NotFound("Manufacturer", nil)
}

func (r *manufacturerRepository) Save(ctx context.Context, manufacturer *entity.Manufacturer) error {
	return r.col.save(ctx, manufacturer)
}

func (r *manufacturerRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*entity.Manufacturer, error) {
	return r.col.patch(ctx, id, fields)
}

func (r *manufacturerRepository) SubmitRating(ctx context.Context, id string, stars float64) (*entity.Manufacturer, error) {
	if err := service.ValidateStars(stars); err != nil {
		return nil, err
	}
	return r.col.patchWith(ctx, id, func(current *entity.Manufacturer) (map[string]interface{}, error) {
		mean, count := service.AggregateRating(current.Rating, current.RatingCount, stars)
		return map[string]interface{}{
			"rating":      mean,
			"ratingCount": count,
		}, nil
	})
}
