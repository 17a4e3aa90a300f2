package repository

import (
	"context"

	"paksupply/internal/domain/entity"
)

type ManufacturerRepository interface {
	List(ctx context.Context) ([]*entity.Manufacturer, error)
	GetByID(ctx context.Context, id string) (*entity.Manufacturer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Manufacturer, error)
	Save(ctx context.Context, manufacturer *entity.Manufacturer) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*entity.Manufacturer, error)
	SubmitRating(ctx context.Context, id string, stars float64) (*entity.Manufacturer, error)
}
