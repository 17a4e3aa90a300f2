package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"paksupply/internal/domain/entity"
)

func TestComposeWholesaleRequest(t *testing.T) {
	msg := ComposeWholesaleRequest(WholesaleRequest{
		ProductName: "Lemon Soap",
		Brand:       "Fresh",
		Quantity:    3,
		UnitPrice:   1200,
		Shop:        &entity.ShopkeeperProfile{ShopName: "Ali General Store", OwnerName: "Ali", City: "Lahore", Address: "Main Bazar"},
		Reward:      "1 FREE Carton Bath Soap",
	})

	assert.Contains(t, msg, "*Product:* Lemon Soap")
	assert.Contains(t, msg, "*Quantity:* 3")
	assert.Contains(t, msg, "*Total:* Rs. 3600")
	assert.Contains(t, msg, "*Shop:* Ali General Store")
	assert.Contains(t, msg, "*COUPON REWARD:* 1 FREE Carton Bath Soap")
}

func TestComposeWholesaleRequestUnregistered(t *testing.T) {
	msg := ComposeWholesaleRequest(WholesaleRequest{ProductName: "Tea", Quantity: 1, UnitPrice: 10})

	assert.Contains(t, msg, "Customer not registered")
	assert.NotContains(t, msg, "COUPON")
}

func TestComposeConsumerOrder(t *testing.T) {
	msg := ComposeConsumerOrder(&entity.ConsumerOrder{
		CustomerName: "Sara",
		Items:        []entity.OrderItem{{Name: "Milk", Qty: 2, Price: 100}, {Name: "Bread", Qty: 1, Price: 50}},
		Total:        250,
		Type:         entity.FulfillmentPickup,
	})

	assert.Equal(t, "PakSupply Order from Sara:\nItems: Milk x2, Bread x1\nTotal: Rs. 250\nMode: PICKUP\nAddress: N/A", msg)
}
