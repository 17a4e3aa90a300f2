package service

import (
	"fmt"
	"strings"

	"paksupply/internal/domain/entity"
)

// NotificationSink turns a composed message into something the client can
// hand off, such as a messaging deep link. Delivery is not our concern.
type NotificationSink interface {
	Link(phone, message string) string
}

// WholesaleRequest is a shopkeeper's order request for a marketplace product.
type WholesaleRequest struct {
	ProductName string
	Brand       string
	Quantity    int
	UnitPrice   int64
	Shop        *entity.ShopkeeperProfile
	Reward      string
}

func (r WholesaleRequest) Total() int64 {
	return int64(r.Quantity) * r.UnitPrice
}

func ComposeWholesaleRequest(r WholesaleRequest) string {
	var b strings.Builder
	b.WriteString("PakSupply.pk Order Request:\n")
	b.WriteString("--------------------------\n")
	fmt.Fprintf(&b, "*Product:* %s\n", r.ProductName)
	fmt.Fprintf(&b, "*Brand:* %s\n", r.Brand)
	fmt.Fprintf(&b, "*Quantity:* %d\n", r.Quantity)
	fmt.Fprintf(&b, "*Wholesale Price:* Rs. %d\n", r.UnitPrice)
	fmt.Fprintf(&b, "*Total:* Rs. %d", r.Total())

	if r.Shop != nil {
		fmt.Fprintf(&b, "\n\n*Shop:* %s\n*Owner:* %s\n*Phone:* %s\n*Address:* %s\n*City:* %s",
			r.Shop.ShopName, r.Shop.OwnerName, r.Shop.Phone, r.Shop.Address, r.Shop.City)
	} else {
		b.WriteString("\n\n*Note:* Customer not registered. Please ask for shop details.")
	}

	if r.Reward != "" {
		fmt.Fprintf(&b, "\n\n*COUPON REWARD:* %s", r.Reward)
	}
	return b.String()
}

func ComposeConsumerOrder(o *entity.ConsumerOrder) string {
	items := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, fmt.Sprintf("%s x%d", it.Name, it.Qty))
	}

	address := o.Address
	if address == "" {
		address = "N/A"
	}

	return fmt.Sprintf("PakSupply Order from %s:\nItems: %s\nTotal: Rs. %d\nMode: %s\nAddress: %s",
		o.CustomerName, strings.Join(items, ", "), o.Total, o.Type, address)
}
