package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"paksupply/internal/domain/entity"
	"paksupply/internal/domain/repository"
	"paksupply/pkg/errors"
)

type ShopUseCase struct {
	shopkeeperRepo repository.ShopkeeperRepository
	inventoryRepo  repository.ShopInventoryRepository
	productRepo    repository.ProductRepository
	sessions       SessionStore
}

func NewShopUseCase(
	shopkeeperRepo repository.ShopkeeperRepository,
	inventoryRepo repository.ShopInventoryRepository,
	productRepo repository.ProductRepository,
	sessions SessionStore,
) *ShopUseCase {
	return &ShopUseCase{
		shopkeeperRepo: shopkeeperRepo,
		inventoryRepo:  inventoryRepo,
		productRepo:    productRepo,
		sessions:       sessions,
	}
}

type ShopSearch struct {
	Query string
	City  string
}

// Directory matches the query against shop name, area and street.
func (uc *ShopUseCase) Directory(ctx context.Context, search ShopSearch) ([]*entity.ShopkeeperProfile, error) {
	shops, err := uc.shopkeeperRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(search.Query))
	return lo.Filter(shops, func(s *entity.ShopkeeperProfile, _ int) bool {
		if search.City != "" && !strings.EqualFold(s.City, search.City) {
			return false
		}
		if q == "" {
			return true
		}
		return strings.Contains(strings.ToLower(s.ShopName), q) ||
			strings.Contains(strings.ToLower(s.Area), q) ||
			strings.Contains(strings.ToLower(s.Street), q)
	}), nil
}

func (uc *ShopUseCase) GetShop(ctx context.Context, id string) (*entity.ShopkeeperProfile, error) {
	return uc.shopkeeperRepo.GetByID(ctx, id)
}

type ShopProfileInput struct {
	ShopName            *string
	OwnerName           *string
	City                *string
	Area                *string
	Street              *string
	Address             *string
	Phone               *string
	ShopPhoto           *string
	IsDeliveryAvailable *bool
	IsPickupAvailable   *bool
	IsOpen              *bool
}

// UpdateProfile patches the caller's shop and refreshes the profile carried by their sessions.
func (uc *ShopUseCase) UpdateProfile(ctx context.Context, session *entity.Session, input ShopProfileInput) (*entity.ShopkeeperProfile, error) {
	fields := map[string]interface{}{}
	set := func(name string, v interface{}, ok bool) {
		if ok {
			fields[name] = v
		}
	}
	set("shopName", deref(input.ShopName), input.ShopName != nil)
	set("ownerName", deref(input.OwnerName), input.OwnerName != nil)
	set("city", deref(input.City), input.City != nil)
	set("area", deref(input.Area), input.Area != nil)
	set("street", deref(input.Street), input.Street != nil)
	set("address", deref(input.Address), input.Address != nil)
	set("phone", deref(input.Phone), input.Phone != nil)
	set("shopPhoto", deref(input.ShopPhoto), input.ShopPhoto != nil)
	set("isDeliveryAvailable", derefBool(input.IsDeliveryAvailable), input.IsDeliveryAvailable != nil)
	set("isPickupAvailable", derefBool(input.IsPickupAvailable), input.IsPickupAvailable != nil)
	set("isOpen", derefBool(input.IsOpen), input.IsOpen != nil)
	if len(fields) == 0 {
		return nil, errors.BadRequest("Nothing to update", nil)
	}

	profile, err := uc.shopkeeperRepo.UpdateFields(ctx, session.ShopID(), fields)
	if err != nil {
		return nil, err
	}
	uc.sessions.RefreshShopkeeper(profile)
	return profile, nil
}

func (uc *ShopUseCase) Inventory(ctx context.Context, shopID string) ([]*entity.ShopProduct, error) {
	return uc.inventoryRepo.List(ctx, shopID)
}

// Storefront is what consumers see: only listings in stock.
func (uc *ShopUseCase) Storefront(ctx context.Context, shopID string) ([]*entity.ShopProduct, error) {
	if _, err := uc.shopkeeperRepo.GetByID(ctx, shopID); err != nil {
		return nil, err
	}
	items, err := uc.inventoryRepo.List(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return lo.Filter(items, func(sp *entity.ShopProduct, _ int) bool { return sp.StockStatus == entity.InStock }), nil
}

type ShopProductInput struct {
	ID          string
	ProductID   string
	Name        string
	Brand       string
	Category    string
	ImageURLs   []string
	SalePrice   int64
	StockStatus entity.StockStatus
	Version     int64
}

// SaveListing adds or replaces one of the shop's own listings. When it refers
// to a marketplace product, missing descriptive fields are copied from it.
func (uc *ShopUseCase) SaveListing(ctx context.Context, shopID string, input ShopProductInput) (*entity.ShopProduct, error) {
	sp := &entity.ShopProduct{
		ID:          input.ID,
		ShopID:      shopID,
		ProductID:   input.ProductID,
		Name:        input.Name,
		Brand:       input.Brand,
		Category:    input.Category,
		ImageURLs:   input.ImageURLs,
		SalePrice:   input.SalePrice,
		StockStatus: input.StockStatus,
	}
	sp.Version = input.Version
	if sp.ID == "" {
		sp.ID = uuid.NewString()
	}
	if sp.StockStatus == "" {
		sp.StockStatus = entity.InStock
	}

	if input.ProductID != "" {
		p, err := uc.productRepo.GetByID(ctx, input.ProductID)
		if err != nil {
			return nil, err
		}
		if sp.Name == "" {
			sp.Name = p.Name
		}
		if sp.Brand == "" {
			sp.Brand = p.Brand
		}
		if sp.Category == "" {
			sp.Category = p.Category
		}
		if len(sp.ImageURLs) == 0 {
			sp.ImageURLs = p.ImageURLs
		}
	}

	if err := uc.inventoryRepo.Save(ctx, shopID, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefBool(b *bool) bool {
	return b != nil && *b
}
