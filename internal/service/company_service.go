package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/repository"
)

// CompanyService manages partner company profiles. The partner directory is
// readable by every authenticated role; editing is restricted to staff and
// the owning account, and only staff may change the partnership status.
type CompanyService interface {
	List(ctx context.Context, actor Actor, filter dto.CompanyListFilter) ([]dto.CompanyResponse, error)
	GetByID(ctx context.Context, actor Actor, id uint) (dto.CompanyResponse, error)
	GetByUserID(ctx context.Context, actor Actor, userID uint) (dto.CompanyResponse, error)
	Update(ctx context.Context, actor Actor, id uint, payload dto.CompanyUpdateRequest) (dto.CompanyResponse, error)
}

type companyService struct {
	companies repository.CompanyRepository
	authz     *Authorizer
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewCompanyService constructs a CompanyService instance.
func NewCompanyService(companyRepo repository.CompanyRepository, authz *Authorizer, validate *validator.Validate, logger zerolog.Logger) CompanyService {
	return &companyService{
		companies: companyRepo,
		authz:     authz,
		validator: validate,
		logger:    logger.With().Str("component", "company_service").Logger(),
	}
}

func (s *companyService) List(ctx context.Context, _ Actor, filter dto.CompanyListFilter) ([]dto.CompanyResponse, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, err
	}

	companies, err := s.companies.List(ctx, repository.CompanyFilter{
		PartnershipStatus: filter.PartnershipStatus,
		Sector:            filter.Sector,
		Region:            filter.Region,
	})
	if err != nil {
		return nil, err
	}
	return dto.NewCompanyResponseSlice(companies), nil
}

func (s *companyService) GetByID(ctx context.Context, _ Actor, id uint) (dto.CompanyResponse, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CompanyResponse{}, ErrCompanyNotFound
		}
		return dto.CompanyResponse{}, err
	}
	return dto.NewCompanyResponse(company), nil
}

// GetByUserID resolves the profile attached to an account, used by the
// "my company" endpoint.
func (s *companyService) GetByUserID(ctx context.Context, actor Actor, userID uint) (dto.CompanyResponse, error) {
	company, err := s.companies.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CompanyResponse{}, ErrCompanyNotFound
		}
		return dto.CompanyResponse{}, err
	}

	if !s.authz.CanView(actor, ResourceCompany, company.UserID) {
		return dto.CompanyResponse{}, ErrPermissionDenied
	}
	return dto.NewCompanyResponse(company), nil
}

func (s *companyService) Update(ctx context.Context, actor Actor, id uint, payload dto.CompanyUpdateRequest) (dto.CompanyResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.CompanyResponse{}, err
	}

	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CompanyResponse{}, ErrCompanyNotFound
		}
		return dto.CompanyResponse{}, err
	}

	if !s.authz.CanAct(actor, ActionUpdate, ResourceCompany, company.UserID) {
		return dto.CompanyResponse{}, ErrPermissionDenied
	}

	// Partnership status is a staff decision, even on an owner edit.
	if payload.PartnershipStatus != nil && !s.authz.IsStaff(actor) {
		return dto.CompanyResponse{}, ErrPermissionDenied
	}

	applyCompanyUpdate(&company, payload)
	if err := s.companies.Update(ctx, &company); err != nil {
		return dto.CompanyResponse{}, err
	}

	s.logger.Info().Uint("company_id", company.ID).Msg("company profile updated")
	return dto.NewCompanyResponse(company), nil
}

func applyCompanyUpdate(company *models.Company, payload dto.CompanyUpdateRequest) {
	if payload.Name != nil {
		company.Name = *payload.Name
	}
	if payload.Sector != nil {
		company.Sector = *payload.Sector
	}
	if payload.Size != nil {
		company.Size = *payload.Size
	}
	if payload.Address != nil {
		company.Address = *payload.Address
	}
	if payload.City != nil {
		company.City = *payload.City
	}
	if payload.Region != nil {
		company.Region = *payload.Region
	}
	if payload.Website != nil {
		company.Website = *payload.Website
	}
	if payload.Description != nil {
		company.Description = *payload.Description
	}
	if payload.ContactName != nil {
		company.ContactName = *payload.ContactName
	}
	if payload.ContactEmail != nil {
		company.ContactEmail = *payload.ContactEmail
	}
	if payload.ContactPhone != nil {
		company.ContactPhone = *payload.ContactPhone
	}
	if payload.PartnerSince != nil {
		company.PartnerSince = payload.PartnerSince
	}
	if payload.PartnershipStatus != nil {
		company.PartnershipStatus = *payload.PartnershipStatus
	}
}
