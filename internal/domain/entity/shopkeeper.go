package entity

type ShopkeeperProfile struct {
	ID                  string `json:"id" validate:"required"`
	Email               string `json:"email" validate:"required,email"`
	PasswordHash        string `json:"passwordHash,omitempty"`
	ShopName            string `json:"shopName" validate:"required"`
	OwnerName           string `json:"ownerName"`
	City                string `json:"city" validate:"required"`
	Area                string `json:"area"`
	Street              string `json:"street"`
	Address             string `json:"address"`
	Phone               string `json:"phone" validate:"required"`
	ShopPhoto           string `json:"shopPhoto,omitempty"`
	IsDeliveryAvailable bool   `json:"isDeliveryAvailable"`
	IsPickupAvailable   bool   `json:"isPickupAvailable"`
	IsOpen              bool   `json:"isOpen"`
	Meta
}

func (s *ShopkeeperProfile) GetID() string { return s.ID }

func (s ShopkeeperProfile) Public() ShopkeeperProfile {
	s.PasswordHash = ""
	return s
}

type StockStatus string

const (
	InStock    StockStatus = "IN_STOCK"
	OutOfStock StockStatus = "OUT_OF_STOCK"
)

// ShopProduct is a shop's own resale listing, usually derived from a marketplace product.
type ShopProduct struct {
	ID          string      `json:"id" validate:"required"`
	ShopID      string      `json:"shopId" validate:"required"`
	ProductID   string      `json:"productId,omitempty"`
	Name        string      `json:"name" validate:"required"`
	Brand       string      `json:"brand"`
	Category    string      `json:"category"`
	ImageURLs   []string    `json:"imageUrls"`
	SalePrice   int64       `json:"salePrice" validate:"gt=0"`
	StockStatus StockStatus `json:"stockStatus" validate:"required,oneof=IN_STOCK OUT_OF_STOCK"`
	Meta
}

func (sp *ShopProduct) GetID() string { return sp.ID }
