package usecase

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"paksupply/internal/domain/entity"
	"paksupply/internal/domain/repository"
	"paksupply/pkg/errors"
	"paksupply/pkg/logger"
)

type AdminCredentials struct {
	Email    string
	Password string
}

type AuthUseCase struct {
	manufacturerRepo repository.ManufacturerRepository
	shopkeeperRepo   repository.ShopkeeperRepository
	sessions         SessionStore
	admin            AdminCredentials
}

func NewAuthUseCase(
	manufacturerRepo repository.ManufacturerRepository,
	shopkeeperRepo repository.ShopkeeperRepository,
	sessions SessionStore,
	admin AdminCredentials,
) *AuthUseCase {
	return &AuthUseCase{
		manufacturerRepo: manufacturerRepo,
		shopkeeperRepo:   shopkeeperRepo,
		sessions:         sessions,
		admin:            admin,
	}
}

var errBadCredentials = errors.Unauthorized("Invalid email or password", nil)

// Login tries the admin account, then manufacturers, then shopkeepers.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	email = strings.TrimSpace(email)

	if uc.isAdmin(email, password) {
		return uc.sessions.Create(entity.Session{Email: uc.admin.Email, Role: entity.RoleAdmin}), nil
	}

	mfr, err := uc.manufacturerRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if !passwordMatches(mfr.PasswordHash, password) {
			return nil, errBadCredentials
		}
		return uc.sessions.Create(entity.Session{
			Email:          mfr.Email,
			Role:           entity.RoleManufacturer,
			ManufacturerID: mfr.ID,
		}), nil
	case !errors.Is(err, errors.CodeNotFound):
		return nil, err
	}

	shop, err := uc.shopkeeperRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return nil, errBadCredentials
		}
		return nil, err
	}
	if !passwordMatches(shop.PasswordHash, password) {
		return nil, errBadCredentials
	}

	profile := shop.Public()
	return uc.sessions.Create(entity.Session{
		Email:      shop.Email,
		Role:       entity.RoleShopkeeper,
		Shopkeeper: &profile,
	}), nil
}

func (uc *AuthUseCase) isAdmin(email, password string) bool {
	if uc.admin.Password == "" || !strings.EqualFold(email, uc.admin.Email) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(uc.admin.Password)) == 1
}

func passwordMatches(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Internal("Failed to hash password", err)
	}
	return string(hash), nil
}

type RegisterShopkeeperInput struct {
	Email               string
	Password            string
	ShopName            string
	OwnerName           string
	City                string
	Area                string
	Street              string
	Address             string
	Phone               string
	IsDeliveryAvailable bool
	IsPickupAvailable   bool
}

// RegisterShopkeeper creates the shop profile and signs the owner in.
func (uc *AuthUseCase) RegisterShopkeeper(ctx context.Context, input RegisterShopkeeperInput) (*entity.Session, error) {
	if err := uc.ensureEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	profile := &entity.ShopkeeperProfile{
		ID:                  uuid.NewString(),
		Email:               strings.TrimSpace(input.Email),
		PasswordHash:        hash,
		ShopName:            input.ShopName,
		OwnerName:           input.OwnerName,
		City:                input.City,
		Area:                input.Area,
		Street:              input.Street,
		Address:             input.Address,
		Phone:               input.Phone,
		IsDeliveryAvailable: input.IsDeliveryAvailable,
		IsPickupAvailable:   input.IsPickupAvailable,
		IsOpen:              true,
	}
	if err := uc.shopkeeperRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	logger.Info("shopkeeper registered: id=%s, city=%s", profile.ID, profile.City)

	public := profile.Public()
	return uc.sessions.Create(entity.Session{
		Email:      profile.Email,
		Role:       entity.RoleShopkeeper,
		Shopkeeper: &public,
	}), nil
}

func (uc *AuthUseCase) ensureEmailFree(ctx context.Context, email string) error {
	if strings.EqualFold(strings.TrimSpace(email), uc.admin.Email) {
		return errors.BadRequest("Email already in use", nil)
	}
	if _, err := uc.manufacturerRepo.GetByEmail(ctx, email); err == nil {
		return errors.BadRequest("Email already in use", nil)
	} else if !errors.Is(err, errors.CodeNotFound) {
		return err
	}
	if _, err := uc.shopkeeperRepo.GetByEmail(ctx, email); err == nil {
		return errors.BadRequest("Email already in use", nil)
	} else if !errors.Is(err, errors.CodeNotFound) {
		return err
	}
	return nil
}

func (uc *AuthUseCase) Session(token string) (*entity.Session, error) {
	return uc.sessions.Get(token)
}

func (uc *AuthUseCase) Logout(token string) {
	uc.sessions.Destroy(token)
}
