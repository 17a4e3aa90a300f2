package usecase

import "paksupply/internal/domain/entity"

// SessionStore owns the session lifecycle: created on login, destroyed on logout.
type SessionStore interface {
	Create(s entity.Session) *entity.Session
	Get(token string) (*entity.Session, error)
	Destroy(token string)
	RefreshShopkeeper(profile *entity.ShopkeeperProfile)
}

type ReferenceData interface {
	EnabledCategories() []entity.Category
	CategoryEnabled(name string) bool
	Plan(id string) (entity.PaymentPlan, bool)
	Reward(code string) string
}
