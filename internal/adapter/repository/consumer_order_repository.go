package repository

import (
	"context"

	"github.com/samber/lo"

	"paksupply/internal/domain/entity"
	"paksupply/internal/domain/repository"
	"paksupply/pkg/errors"
)

const consumerOrdersNamespace = "consumer_orders"

type consumerOrderRepository struct {
	col *collection[entity.ConsumerOrder, *entity.ConsumerOrder]
}

func NewConsumerOrderRepository(store repository.RecordStore) repository.ConsumerOrderRepository {
	return &consumerOrderRepository{
		col: newCollection[entity.ConsumerOrder, *entity.ConsumerOrder](store, LocalOnly(), consumerOrdersNamespace, "Order", nil),
	}
}

func (r *consumerOrderRepository) Create(ctx context.Context, order *entity.ConsumerOrder) error {
	order.Total = entity.ItemsTotal(order.Items)
	order.Status = entity.OrderPending
	if order.CreatedAt.IsZero() {
		order.CreatedAt = r.col.now().UTC()
	}
	order.Version = 0

	if existing, err := r.col.get(ctx, order.ID); err == nil && existing != nil {
		return errors.Conflict("order already exists")
	} else if err != nil && !errors.Is(err, errors.CodeNotFound) {
		return err
	}
	return r.col.save(ctx, order)
}

func (r *consumerOrderRepository) GetByID(ctx context.Context, id string) (*entity.ConsumerOrder, error) {
	return r.col.get(ctx, id)
}

func (r *consumerOrderRepository) ListByShop(ctx context.Context, shopID string) ([]*entity.ConsumerOrder, error) {
	all, err := r.col.all(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(o *entity.ConsumerOrder, _ int) bool {
		return o.ShopID == shopID
	}), nil
}

// UpdateStatus only ever touches status; items and total are frozen at creation.
func (r *consumerOrderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.ConsumerOrder, error) {
	return r.col.patchWith(ctx, id, func(current *entity.ConsumerOrder) (map[string]interface{}, error) {
		if !current.Status.CanTransition(status) {
			return nil, errors.BadRequest("order cannot move from "+string(current.Status)+" to "+string(status), nil)
		}
		return map[string]interface{}{"status": status}, nil
	})
}
