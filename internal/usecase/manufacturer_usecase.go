package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"paksupply/internal/domain/entity"
	"paksupply/internal/domain/repository"
	"paksupply/pkg/errors"
	"paksupply/pkg/logger"
)

type ManufacturerUseCase struct {
	manufacturerRepo repository.ManufacturerRepository
	auth             *AuthUseCase
	catalog          ReferenceData
	now              func() time.Time
}

func NewManufacturerUseCase(manufacturerRepo repository.ManufacturerRepository, auth *AuthUseCase, catalog ReferenceData) *ManufacturerUseCase {
	return &ManufacturerUseCase{
		manufacturerRepo: manufacturerRepo,
		auth:             auth,
		catalog:          catalog,
		now:              time.Now,
	}
}

type SignupInput struct {
	Email             string
	Password          string
	Phone             string
	CompanyName       string
	OwnerName         string
	OwnerPhone        string
	ManagerPhone      string
	Address           string
	City              string
	Plan              string
	IsIsraelFreeClaim bool
	GovernmentDocURL  string
}

// Signup registers a manufacturer awaiting admin approval on the Basic tier.
func (uc *ManufacturerUseCase) Signup(ctx context.Context, input SignupInput) (*entity.Manufacturer, error) {
	if input.Plan != "" {
		if _, ok := uc.catalog.Plan(input.Plan); !ok {
			return nil, errors.BadRequest("Unknown payment plan", nil)
		}
	}
	if err := uc.auth.ensureEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	m := &entity.Manufacturer{
		ID:                uuid.NewString(),
		Email:             strings.TrimSpace(input.Email),
		PasswordHash:      hash,
		Phone:             input.Phone,
		CompanyName:       input.CompanyName,
		OwnerName:         input.OwnerName,
		OwnerPhone:        input.OwnerPhone,
		ManagerPhone:      input.ManagerPhone,
		Address:           input.Address,
		City:              input.City,
		Status:            entity.ManufacturerPendingApproval,
		PlacementTier:     entity.TierBasic,
		Plan:              input.Plan,
		IsIsraelFreeClaim: input.IsIsraelFreeClaim,
		GovernmentDocURL:  input.GovernmentDocURL,
		SignupDate:        uc.now().UTC(),
	}
	if err := uc.manufacturerRepo.Save(ctx, m); err != nil {
		return nil, err
	}

	logger.Info("manufacturer signed up: id=%s, company=%s, plan=%s", m.ID, m.CompanyName, m.Plan)
	return m, nil
}

func (uc *ManufacturerUseCase) GetManufacturer(ctx context.Context, id string) (*entity.Manufacturer, error) {
	return uc.manufacturerRepo.GetByID(ctx, id)
}

func (uc *ManufacturerUseCase) ListAll(ctx context.Context) ([]*entity.Manufacturer, error) {
	return uc.manufacturerRepo.List(ctx)
}

func (uc *ManufacturerUseCase) ListApproved(ctx context.Context) ([]*entity.Manufacturer, error) {
	all, err := uc.manufacturerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(m *entity.Manufacturer, _ int) bool { return m.IsApproved() }), nil
}

// ListTrustedPartners is the featured-partner strip: approved and flagged by an admin.
func (uc *ManufacturerUseCase) ListTrustedPartners(ctx context.Context) ([]*entity.Manufacturer, error) {
	approved, err := uc.ListApproved(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(approved, func(m *entity.Manufacturer, _ int) bool { return m.IsTrustedPartner }), nil
}

type CurationInput struct {
	Status           *entity.ManufacturerStatus
	PlacementTier    *entity.PlacementTier
	IsTrustedPartner *bool
}

func (uc *ManufacturerUseCase) Curate(ctx context.Context, id string, input CurationInput) (*entity.Manufacturer, error) {
	fields := map[string]interface{}{}
	if input.Status != nil {
		fields["status"] = *input.Status
	}
	if input.PlacementTier != nil {
		fields["placementTier"] = *input.PlacementTier
	}
	if input.IsTrustedPartner != nil {
		fields["isTrustedPartner"] = *input.IsTrustedPartner
	}
	if len(fields) == 0 {
		return nil, errors.BadRequest("Nothing to update", nil)
	}

	m, err := uc.manufacturerRepo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	logger.Info("manufacturer curated: id=%s, fields=%v", id, lo.Keys(fields))
	return m, nil
}

func (uc *ManufacturerUseCase) Rate(ctx context.Context, id string, stars float64) (*entity.Manufacturer, error) {
	return uc.manufacturerRepo.SubmitRating(ctx, id, stars)
}
