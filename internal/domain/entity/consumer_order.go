package entity

import "time"

type FulfillmentType string

const (
	FulfillmentPickup   FulfillmentType = "PICKUP"
	FulfillmentDelivery FulfillmentType = "DELIVERY"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderAccepted  OrderStatus = "ACCEPTED"
	OrderReady     OrderStatus = "READY"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:  {OrderAccepted, OrderCancelled},
	OrderAccepted: {OrderReady, OrderCancelled},
	OrderReady:    {OrderCompleted, OrderCancelled},
}

// CanTransition reports whether a shop may move an order from one status to another.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is a price snapshot taken when the order is placed.
type OrderItem struct {
	ProductID string `json:"productId" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Qty       int    `json:"qty" validate:"gt=0"`
	Price     int64  `json:"price" validate:"gte=0"`
}

type ConsumerOrder struct {
	ID            string          `json:"id" validate:"required"`
	ShopID        string          `json:"shopId" validate:"required"`
	CustomerName  string          `json:"customerName" validate:"required"`
	CustomerPhone string          `json:"customerPhone" validate:"required"`
	Address       string          `json:"address,omitempty"`
	Items         []OrderItem     `json:"items" validate:"min=1,dive"`
	Total         int64           `json:"total" validate:"gte=0"`
	Type          FulfillmentType `json:"type" validate:"required,oneof=PICKUP DELIVERY"`
	Status        OrderStatus     `json:"status" validate:"required,oneof=PENDING ACCEPTED READY COMPLETED CANCELLED"`
	CreatedAt     time.Time       `json:"createdAt"`
	Meta
}

func (o *ConsumerOrder) GetID() string { return o.ID }

// ItemsTotal sums qty x price over the snapshot items.
func ItemsTotal(items []OrderItem) int64 {
	var total int64
	for _, it := range items {
		total += int64(it.Qty) * it.Price
	}
	return total
}
