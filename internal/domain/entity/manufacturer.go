package entity

import "time"

type ManufacturerStatus string

const (
	ManufacturerPendingPayment  ManufacturerStatus = "PENDING_PAYMENT"
	ManufacturerPendingApproval ManufacturerStatus = "PENDING_APPROVAL"
	ManufacturerApproved        ManufacturerStatus = "APPROVED"
	ManufacturerSuspended       ManufacturerStatus = "SUSPENDED"
)

type PlacementTier string

const (
	TierPremium  PlacementTier = "PREMIUM"
	TierStandard PlacementTier = "STANDARD"
	TierBasic    PlacementTier = "BASIC"
)

// Weight is the paid placement weight used to order product listings.
// Unknown tiers weigh nothing.
func (t PlacementTier) Weight() int {
	switch t {
	case TierPremium:
		return 3
	case TierStandard:
		return 2
	case TierBasic:
		return 1
	default:
		return 0
	}
}

type Manufacturer struct {
	ID                string             `json:"id" validate:"required"`
	Email             string             `json:"email" validate:"required,email"`
	PasswordHash      string             `json:"passwordHash,omitempty"`
	Phone             string             `json:"phone"`
	CompanyName       string             `json:"companyName" validate:"required"`
	OwnerName         string             `json:"ownerName"`
	OwnerPhone        string             `json:"ownerPhone"`
	ManagerPhone      string             `json:"managerPhone,omitempty"`
	Address           string             `json:"address"`
	City              string             `json:"city"`
	Status            ManufacturerStatus `json:"status" validate:"required,oneof=PENDING_PAYMENT PENDING_APPROVAL APPROVED SUSPENDED"`
	PlacementTier     PlacementTier      `json:"placementTier" validate:"required,oneof=PREMIUM STANDARD BASIC"`
	IsTrustedPartner  bool               `json:"isTrustedPartner"`
	Plan              string             `json:"plan,omitempty"`
	IsIsraelFreeClaim bool               `json:"isIsraelFreeClaim"`
	GovernmentDocURL  string             `json:"governmentDocUrl,omitempty"`
	SignupDate        time.Time          `json:"signupDate"`
	Rating            float64            `json:"rating" validate:"gte=0,lte=5"`
	RatingCount       int                `json:"ratingCount" validate:"gte=0"`
	Meta
}

func (m *Manufacturer) GetID() string { return m.ID }

// Public strips credentials before the record leaves the service.
func (m Manufacturer) Public() Manufacturer {
	m.PasswordHash = ""
	return m
}

func (m *Manufacturer) IsApproved() bool {
	return m.Status == ManufacturerApproved
}
