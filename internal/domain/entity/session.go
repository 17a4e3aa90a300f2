package entity

import "time"

type UserRole string

const (
	RoleAdmin        UserRole = "ADMIN"
	RoleManufacturer UserRole = "MANUFACTURER"
	RoleShopkeeper   UserRole = "SHOPKEEPER"
)

// Session is created on login and destroyed on logout. For shopkeepers it also
// carries the active shop profile used when composing order requests.
type Session struct {
	Token          string             `json:"token"`
	Email          string             `json:"email"`
	Role           UserRole           `json:"role"`
	ManufacturerID string             `json:"manufacturerId,omitempty"`
	Shopkeeper     *ShopkeeperProfile `json:"shopkeeper,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	ExpiresAt      time.Time          `json:"expiresAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

func (s *Session) ShopID() string {
	if s.Shopkeeper == nil {
		return ""
	}
	return s.Shopkeeper.ID
}
