package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"paksupply/internal/domain/entity"
	"paksupply/internal/domain/repository"
	"paksupply/internal/domain/service"
	"paksupply/pkg/errors"
	"paksupply/pkg/logger"
)

type ProductUseCase struct {
	productRepo      repository.ProductRepository
	manufacturerRepo repository.ManufacturerRepository
	catalog          ReferenceData
	links            service.NotificationSink
	adminWhatsApp    string
	now              func() time.Time
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	manufacturerRepo repository.ManufacturerRepository,
	catalog ReferenceData,
	links service.NotificationSink,
	adminWhatsApp string,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:      productRepo,
		manufacturerRepo: manufacturerRepo,
		catalog:          catalog,
		links:            links,
		adminWhatsApp:    adminWhatsApp,
		now:              time.Now,
	}
}

type MarketplaceFilter struct {
	Search         string
	Category       string
	ManufacturerID string
	IsraelFreeOnly bool
}

// Marketplace lists active products in placement order, narrowed by filter.
func (uc *ProductUseCase) Marketplace(ctx context.Context, filter MarketplaceFilter) ([]*entity.Product, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	return lo.Filter(products, func(p *entity.Product, _ int) bool {
		if p.Status != entity.ProductActive {
			return false
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) && !strings.Contains(strings.ToLower(p.Brand), search) {
			return false
		}
		if filter.Category != "" && p.Category != filter.Category {
			return false
		}
		if filter.ManufacturerID != "" && p.ManufacturerID != filter.ManufacturerID {
			return false
		}
		if filter.IsraelFreeOnly && !p.IsVerifiedIsraelFree() {
			return false
		}
		return true
	}), nil
}

func (uc *ProductUseCase) ListAll(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.List(ctx)
}

func (uc *ProductUseCase) ListByManufacturer(ctx context.Context, manufacturerID string) ([]*entity.Product, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(products, func(p *entity.Product, _ int) bool { return p.ManufacturerID == manufacturerID }), nil
}

type CreateProductInput struct {
	Name        string
	Brand       string
	Category    string
	Price       int64
	Description string
	ImageURLs   []string
}

func (uc *ProductUseCase) validateListing(input CreateProductInput) error {
	if len(lo.Compact(input.ImageURLs)) == 0 {
		return errors.Validation("At least one product image is required", nil)
	}
	if !uc.catalog.CategoryEnabled(input.Category) {
		return errors.Validation("Unknown or disabled category", nil)
	}
	if input.Price <= 0 {
		return errors.Validation("price must be greater than 0", nil)
	}
	return nil
}

// CreateForManufacturer submits a listing for admin review. The Israel-free
// flag follows the manufacturer's claim and starts unapproved.
func (uc *ProductUseCase) CreateForManufacturer(ctx context.Context, manufacturerID string, input CreateProductInput) (*entity.Product, error) {
	mfr, err := uc.manufacturerRepo.GetByID(ctx, manufacturerID)
	if err != nil {
		return nil, err
	}
	if !mfr.IsApproved() {
		return nil, errors.Forbidden("Your account is awaiting approval", nil)
	}
	if err := uc.validateListing(input); err != nil {
		return nil, err
	}

	p := uc.newProduct(input)
	p.ManufacturerID = mfr.ID
	p.ManufacturerName = mfr.CompanyName
	p.IsIsraelFree = mfr.IsIsraelFreeClaim
	p.Status = entity.ProductPending

	if err := uc.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	logger.Info("product submitted for review: id=%s, manufacturer=%s", p.ID, mfr.ID)
	return p, nil
}

type OfficialProductInput struct {
	CreateProductInput
	OrderWhatsApp string
}

// CreateOfficial publishes a platform listing, live and verified immediately.
func (uc *ProductUseCase) CreateOfficial(ctx context.Context, input OfficialProductInput) (*entity.Product, error) {
	if err := uc.validateListing(input.CreateProductInput); err != nil {
		return nil, err
	}

	p := uc.newProduct(input.CreateProductInput)
	p.ManufacturerID = entity.AdminManufacturerID
	p.ManufacturerName = entity.AdminManufacturerName
	p.IsIsraelFree = true
	p.IsIsraelFreeApproved = true
	p.Status = entity.ProductActive
	p.OrderWhatsApp = strings.TrimSpace(input.OrderWhatsApp)

	if err := uc.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProductUseCase) newProduct(input CreateProductInput) *entity.Product {
	return &entity.Product{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(input.Name),
		Brand:       strings.TrimSpace(input.Brand),
		Category:    input.Category,
		Price:       input.Price,
		Description: input.Description,
		ImageURLs:   lo.Compact(input.ImageURLs),
		CreatedAt:   uc.now().UTC(),
	}
}

// Approve makes a product live and verifies its Israel-free claim.
func (uc *ProductUseCase) Approve(ctx context.Context, id string) (*entity.Product, error) {
	approved := true
	return uc.productRepo.SetStatus(ctx, id, entity.ProductActive, &approved)
}

// Toggle flips a product between live and unlisted. A pending product becomes live.
func (uc *ProductUseCase) Toggle(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.productRepo.SetStatus(ctx, id, nextStatus(p.Status), nil)
}

// ToggleOwn lets a manufacturer list or unlist their own reviewed products.
func (uc *ProductUseCase) ToggleOwn(ctx context.Context, manufacturerID, id string) (*entity.Product, error) {
	p, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.ManufacturerID != manufacturerID {
		return nil, errors.Forbidden("You can only manage your own products", nil)
	}
	if p.Status == entity.ProductPending {
		return nil, errors.Forbidden("Product is awaiting admin review", nil)
	}
	return uc.productRepo.SetStatus(ctx, id, nextStatus(p.Status), nil)
}

func nextStatus(current entity.ProductStatus) entity.ProductStatus {
	if current == entity.ProductActive {
		return entity.ProductDisabled
	}
	return entity.ProductActive
}

type OrderRequestInput struct {
	Quantity  int
	PromoCode string
}

type OrderRequest struct {
	Message string `json:"message"`
	Link    string `json:"link"`
	Total   int64  `json:"total"`
	Reward  string `json:"reward,omitempty"`
}

// RequestWholesaleOrder composes the order request a shopkeeper sends to the
// platform (or to the listing's own order number) for a marketplace product.
func (uc *ProductUseCase) RequestWholesaleOrder(ctx context.Context, session *entity.Session, productID string, input OrderRequestInput) (*OrderRequest, error) {
	p, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p.Status != entity.ProductActive {
		return nil, errors.BadRequest("Product is not available", nil)
	}

	qty := input.Quantity
	if qty <= 0 {
		qty = 1
	}

	req := service.WholesaleRequest{
		ProductName: p.Name,
		Brand:       p.Brand,
		Quantity:    qty,
		UnitPrice:   p.Price,
		Reward:      uc.catalog.Reward(input.PromoCode),
	}
	if session != nil {
		req.Shop = session.Shopkeeper
	}

	phone := uc.adminWhatsApp
	if p.OrderWhatsApp != "" {
		phone = p.OrderWhatsApp
	}

	msg := service.ComposeWholesaleRequest(req)
	return &OrderRequest{
		Message: msg,
		Link:    uc.links.Link(phone, msg),
		Total:   req.Total(),
		Reward:  req.Reward,
	}, nil
}
