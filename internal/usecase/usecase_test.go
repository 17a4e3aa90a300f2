package usecase

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paksupply/internal/adapter/repository"
	"paksupply/internal/domain/entity"
	"paksupply/internal/infrastructure/catalog"
	"paksupply/internal/infrastructure/notification"
	"paksupply/internal/infrastructure/recordstore"
	"paksupply/internal/infrastructure/session"
	"paksupply/pkg/errors"
)

const adminPassword = "PakSupply786!"

type fixture struct {
	auth          *AuthUseCase
	manufacturers *ManufacturerUseCase
	products      *ProductUseCase
	shops         *ShopUseCase
	orders        *OrderUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := recordstore.NewMemoryStore()
	cat, err := catalog.Load("")
	require.NoError(t, err)

	mfrRepo := repository.NewManufacturerRepository(store, repository.LocalOnly(), nil)
	productRepo := repository.NewProductRepository(store, repository.LocalOnly(), nil, mfrRepo)
	shopRepo := repository.NewShopkeeperRepository(store, nil)
	inventoryRepo := repository.NewShopInventoryRepository(store)
	orderRepo := repository.NewConsumerOrderRepository(store)

	sessions := session.NewManager(time.Hour)
	links := notification.NewWhatsAppLinker()

	auth := NewAuthUseCase(mfrRepo, shopRepo, sessions, AdminCredentials{Email: "admin@paksupply.pk", Password: adminPassword})
	return &fixture{
		auth:          auth,
		manufacturers: NewManufacturerUseCase(mfrRepo, auth, cat),
		products:      NewProductUseCase(productRepo, mfrRepo, cat, links, "03463904137"),
		shops:         NewShopUseCase(shopRepo, inventoryRepo, productRepo, sessions),
		orders:        NewOrderUseCase(orderRepo, shopRepo, inventoryRepo, links),
	}
}

func (f *fixture) approvedManufacturer(t *testing.T, claim bool) *entity.Manufacturer {
	t.Helper()
	ctx := context.Background()
	m, err := f.manufacturers.Signup(ctx, SignupInput{
		Email:             gofakeit.Email(),
		Password:          "secret123",
		CompanyName:       gofakeit.Company(),
		City:              "Lahore",
		Plan:              "monthly",
		IsIsraelFreeClaim: claim,
	})
	require.NoError(t, err)

	approved := entity.ManufacturerApproved
	m, err = f.manufacturers.Curate(ctx, m.ID, CurationInput{Status: &approved})
	require.NoError(t, err)
	return m
}

func (f *fixture) shop(t *testing.T, delivery bool) *entity.Session {
	t.Helper()
	s, err := f.auth.RegisterShopkeeper(context.Background(), RegisterShopkeeperInput{
		Email:               gofakeit.Email(),
		Password:            "shoppass",
		ShopName:            "Bismillah General Store",
		OwnerName:           "Usman",
		City:                "Karachi",
		Area:                "Gulshan",
		Street:              "Block 13",
		Address:             "Shop 4, Block 13, Gulshan",
		Phone:               "03001234567",
		IsDeliveryAvailable: delivery,
		IsPickupAvailable:   true,
	})
	require.NoError(t, err)
	return s
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin, err := f.auth.Login(ctx, "Admin@PakSupply.pk", adminPassword)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, admin.Role)

	m, err := f.manufacturers.Signup(ctx, SignupInput{Email: "mfr@soap.pk", Password: "pw-123456", CompanyName: "Soap Co"})
	require.NoError(t, err)
	assert.NotEqual(t, "pw-123456", m.PasswordHash)

	s, err := f.auth.Login(ctx, "mfr@soap.pk", "pw-123456")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManufacturer, s.Role)
	assert.Equal(t, m.ID, s.ManufacturerID)

	_, err = f.auth.Login(ctx, "mfr@soap.pk", "wrong")
	assert.True(t, errors.Is(err, errors.CodeUnauthorized))

	_, err = f.auth.Login(ctx, "ghost@nowhere.pk", "x")
	assert.True(t, errors.Is(err, errors.CodeUnauthorized))
}

func TestShopkeeperSessionLifecycle(t *testing.T) {
	f := newFixture(t)
	s := f.shop(t, true)
	require.NotNil(t, s.Shopkeeper)
	assert.Empty(t, s.Shopkeeper.PasswordHash)

	got, err := f.auth.Session(s.Token)
	require.NoError(t, err)
	assert.Equal(t, s.ShopID(), got.ShopID())

	f.auth.Logout(s.Token)
	_, err = f.auth.Session(s.Token)
	assert.Error(t, err)

	_, err = f.auth.RegisterShopkeeper(context.Background(), RegisterShopkeeperInput{
		Email: s.Email, Password: "x", ShopName: "Dup", City: "Karachi", Phone: "0300",
	})
	assert.True(t, errors.Is(err, errors.CodeBadRequest))
}

func TestSignupDefaults(t *testing.T) {
	f := newFixture(t)
	m, err := f.manufacturers.Signup(context.Background(), SignupInput{
		Email: "new@mfr.pk", Password: "pw", CompanyName: "New Co", Plan: "intro",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ManufacturerPendingApproval, m.Status)
	assert.Equal(t, entity.TierBasic, m.PlacementTier)
	assert.False(t, m.IsTrustedPartner)
	assert.Zero(t, m.RatingCount)

	_, err = f.manufacturers.Signup(context.Background(), SignupInput{
		Email: "other@mfr.pk", Password: "pw", CompanyName: "Other", Plan: "lifetime",
	})
	assert.True(t, errors.Is(err, errors.CodeBadRequest))
}

func TestTrustedPartners(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.approvedManufacturer(t, false)
	f.approvedManufacturer(t, false)

	trusted := true
	_, err := f.manufacturers.Curate(ctx, a.ID, CurationInput{IsTrustedPartner: &trusted})
	require.NoError(t, err)

	list, err := f.manufacturers.ListTrustedPartners(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)

	_, err = f.manufacturers.Curate(ctx, a.ID, CurationInput{})
	assert.True(t, errors.Is(err, errors.CodeBadRequest))
}

func TestProductReviewFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	m := f.approvedManufacturer(t, true)

	input := CreateProductInput{
		Name: "Lifebuoy Soap", Brand: "Lifebuoy", Category: "Bath Soap", Price: 1200,
		ImageURLs: []string{"https://img/soap.png"},
	}
	p, err := f.products.CreateForManufacturer(ctx, m.ID, input)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductPending, p.Status)
	assert.True(t, p.IsIsraelFree)
	assert.False(t, p.IsIsraelFreeApproved)

	market, err := f.products.Marketplace(ctx, MarketplaceFilter{})
	require.NoError(t, err)
	assert.Empty(t, market, "pending products are not listed")

	_, err = f.products.ToggleOwn(ctx, m.ID, p.ID)
	assert.True(t, errors.Is(err, errors.CodeForbidden))

	_, err = f.products.Approve(ctx, p.ID)
	require.NoError(t, err)

	market, err = f.products.Marketplace(ctx, MarketplaceFilter{IsraelFreeOnly: true, Search: "lifebuoy"})
	require.NoError(t, err)
	require.Len(t, market, 1)

	toggled, err := f.products.ToggleOwn(ctx, m.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductDisabled, toggled.Status)
	assert.True(t, toggled.IsIsraelFreeApproved)

	other := f.approvedManufacturer(t, false)
	_, err = f.products.ToggleOwn(ctx, other.ID, p.ID)
	assert.True(t, errors.Is(err, errors.CodeForbidden))
}

func TestCreateProductValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	m := f.approvedManufacturer(t, false)

	_, err := f.products.CreateForManufacturer(ctx, m.ID, CreateProductInput{Name: "X", Category: "Bath Soap", Price: 10})
	assert.True(t, errors.Is(err, errors.CodeValidation), "needs an image")

	_, err = f.products.CreateForManufacturer(ctx, m.ID, CreateProductInput{Name: "X", Category: "Cars", Price: 10, ImageURLs: []string{"i"}})
	assert.True(t, errors.Is(err, errors.CodeValidation), "needs an enabled category")

	pending, err := f.manufacturers.Signup(ctx, SignupInput{Email: "p@m.pk", Password: "pw", CompanyName: "P"})
	require.NoError(t, err)
	_, err = f.products.CreateForManufacturer(ctx, pending.ID, CreateProductInput{Name: "X", Category: "Bath Soap", Price: 10, ImageURLs: []string{"i"}})
	assert.True(t, errors.Is(err, errors.CodeForbidden))
}

func TestWholesaleOrderRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.products.CreateOfficial(ctx, OfficialProductInput{
		CreateProductInput: CreateProductInput{
			Name: "Tapal Danedar 950g", Brand: "Tapal", Category: "Beverages & Juices", Price: 1500,
			ImageURLs: []string{"https://img/tapal.png"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AdminManufacturerID, p.ManufacturerID)
	assert.True(t, p.IsVerifiedIsraelFree())

	shop := f.shop(t, false)
	req, err := f.products.RequestWholesaleOrder(ctx, shop, p.ID, OrderRequestInput{Quantity: 3, PromoCode: " BABAR AZAM "})
	require.NoError(t, err)
	assert.Equal(t, int64(4500), req.Total)
	assert.Contains(t, req.Message, "*Shop:* Bismillah General Store")
	assert.Contains(t, req.Message, "*COUPON REWARD:*")
	assert.True(t, strings.HasPrefix(req.Link, "https://wa.me/923463904137?text="))

	anon, err := f.products.RequestWholesaleOrder(ctx, nil, p.ID, OrderRequestInput{})
	require.NoError(t, err)
	assert.Contains(t, anon.Message, "Customer not registered")
	assert.Empty(t, anon.Reward)
}

func TestConsumerOrderFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.shop(t, false)
	shopID := s.ShopID()

	sp, err := f.shops.SaveListing(ctx, shopID, ShopProductInput{Name: "Rio Biscuits", SalePrice: 50})
	require.NoError(t, err)
	out, err := f.shops.SaveListing(ctx, shopID, ShopProductInput{Name: "Sold Out Juice", SalePrice: 90, StockStatus: entity.OutOfStock})
	require.NoError(t, err)

	front, err := f.shops.Storefront(ctx, shopID)
	require.NoError(t, err)
	require.Len(t, front, 1)
	assert.Equal(t, sp.ID, front[0].ID)

	_, err = f.orders.PlaceOrder(ctx, shopID, PlaceOrderInput{
		CustomerName: "Ayesha", CustomerPhone: "03331234567", Address: "House 7",
		Type: entity.FulfillmentDelivery, Items: []CartLine{{ShopProductID: sp.ID, Qty: 2}},
	})
	assert.True(t, errors.Is(err, errors.CodeBadRequest), "shop does not deliver")

	_, err = f.orders.PlaceOrder(ctx, shopID, PlaceOrderInput{
		CustomerName: "Ayesha", CustomerPhone: "03331234567",
		Type: entity.FulfillmentPickup, Items: []CartLine{{ShopProductID: out.ID, Qty: 1}},
	})
	assert.True(t, errors.Is(err, errors.CodeBadRequest), "out of stock")

	placed, err := f.orders.PlaceOrder(ctx, shopID, PlaceOrderInput{
		CustomerName: "Ayesha", CustomerPhone: "03331234567",
		Type: entity.FulfillmentPickup, Items: []CartLine{{ShopProductID: sp.ID, Qty: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(150), placed.Order.Total)

	u, err := url.Parse(placed.Link)
	require.NoError(t, err)
	assert.Equal(t, "/923001234567", u.Path)
	assert.Contains(t, u.Query().Get("text"), "Rio Biscuits x3")

	// Repricing the listing does not touch the placed order.
	_, err = f.shops.SaveListing(ctx, shopID, ShopProductInput{ID: sp.ID, Name: "Rio Biscuits", SalePrice: 80})
	require.NoError(t, err)

	accepted, err := f.orders.UpdateStatus(ctx, shopID, placed.Order.ID, entity.OrderAccepted)
	require.NoError(t, err)
	assert.Equal(t, int64(150), accepted.Total)

	_, err = f.orders.UpdateStatus(ctx, "another-shop", placed.Order.ID, entity.OrderReady)
	assert.True(t, errors.Is(err, errors.CodeNotFound))

	orders, err := f.orders.ListShopOrders(ctx, shopID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestShopDirectoryAndProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.shop(t, true)

	found, err := f.shops.Directory(ctx, ShopSearch{Query: "gulshan", City: "karachi"})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = f.shops.Directory(ctx, ShopSearch{City: "Lahore"})
	require.NoError(t, err)
	assert.Empty(t, found)

	closed := false
	name := "Bismillah Mart"
	updated, err := f.shops.UpdateProfile(ctx, s, ShopProfileInput{IsOpen: &closed, ShopName: &name})
	require.NoError(t, err)
	assert.False(t, updated.IsOpen)
	assert.Equal(t, "Gulshan", updated.Area)

	refreshed, err := f.auth.Session(s.Token)
	require.NoError(t, err)
	assert.Equal(t, "Bismillah Mart", refreshed.Shopkeeper.ShopName)
}

func TestRate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	m := f.approvedManufacturer(t, false)

	for _, stars := range []float64{4, 5, 3} {
		_, err := f.manufacturers.Rate(ctx, m.ID, stars)
		require.NoError(t, err)
	}
	got, err := f.manufacturers.GetManufacturer(ctx, m.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got.Rating, 1e-9)
	assert.Equal(t, 3, got.RatingCount)
}
