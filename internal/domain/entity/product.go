package entity

import "time"

type ProductStatus string

const (
	ProductActive   ProductStatus = "ACTIVE"
	ProductDisabled ProductStatus = "DISABLED"
	ProductPending  ProductStatus = "PENDING"
)

// AdminManufacturerID marks official listings published by the platform itself.
const (
	AdminManufacturerID   = "admin"
	AdminManufacturerName = "PakSupply Official"
)

type Product struct {
	ID                   string        `json:"id" validate:"required"`
	ManufacturerID       string        `json:"manufacturerId" validate:"required"`
	ManufacturerName     string        `json:"manufacturerName"`
	Name                 string        `json:"name" validate:"required"`
	Brand                string        `json:"brand"`
	Category             string        `json:"category" validate:"required"`
	Price                int64         `json:"price" validate:"gt=0"`
	Description          string        `json:"description"`
	ImageURLs            []string      `json:"imageUrls" validate:"dive,required"`
	IsIsraelFree         bool          `json:"isIsraelFree"`
	IsIsraelFreeApproved bool          `json:"isIsraelFreeApproved"`
	Status               ProductStatus `json:"status" validate:"required,oneof=ACTIVE DISABLED PENDING"`
	OrderWhatsApp        string        `json:"orderWhatsApp,omitempty"`
	CreatedAt            time.Time     `json:"createdAt"`
	Meta
}

func (p *Product) GetID() string { return p.ID }

// IsVerifiedIsraelFree is true only when the claim was made and an admin approved it.
func (p *Product) IsVerifiedIsraelFree() bool {
	return p.IsIsraelFree && p.IsIsraelFreeApproved
}
