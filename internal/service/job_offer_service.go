package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/repository"
)

// JobOfferService manages job offers. Listings are open to every
// authenticated role; publishing and editing belong to staff and the owning
// company.
type JobOfferService interface {
	List(ctx context.Context, actor Actor, filter dto.JobOfferFilter) ([]dto.JobOfferResponse, error)
	GetByID(ctx context.Context, actor Actor, id uint) (dto.JobOfferResponse, error)
	Create(ctx context.Context, actor Actor, payload dto.JobOfferCreateRequest) (dto.JobOfferResponse, error)
	Update(ctx context.Context, actor Actor, id uint, payload dto.JobOfferUpdateRequest) (dto.JobOfferResponse, error)
}

type jobOfferService struct {
	offers       repository.JobOfferRepository
	companies    repository.CompanyRepository
	applications repository.ApplicationRepository
	authz        *Authorizer
	validator    *validator.Validate
	sanitizer    *bluemonday.Policy
	logger       zerolog.Logger
	now          func() time.Time
}

// NewJobOfferService constructs a JobOfferService instance.
func NewJobOfferService(offerRepo repository.JobOfferRepository, companyRepo repository.CompanyRepository, applicationRepo repository.ApplicationRepository, authz *Authorizer, validate *validator.Validate, logger zerolog.Logger) JobOfferService {
	return &jobOfferService{
		offers:       offerRepo,
		companies:    companyRepo,
		applications: applicationRepo,
		authz:        authz,
		validator:    validate,
		sanitizer:    bluemonday.UGCPolicy(),
		logger:       logger.With().Str("component", "job_offer_service").Logger(),
		now:          time.Now,
	}
}

func (s *jobOfferService) List(ctx context.Context, _ Actor, filter dto.JobOfferFilter) ([]dto.JobOfferResponse, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, err
	}

	offers, err := s.offers.List(ctx, repository.JobOfferFilter{
		Status:       filter.Status,
		ContractType: filter.ContractType,
		Region:       filter.Region,
		Search:       filter.Search,
	})
	if err != nil {
		return nil, err
	}
	return dto.NewJobOfferResponseSlice(offers), nil
}

// GetByID returns the offer. Staff and the owning company also get the
// applications received so far; learners only see the posting.
func (s *jobOfferService) GetByID(ctx context.Context, actor Actor, id uint) (dto.JobOfferResponse, error) {
	offer, err := s.offers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.JobOfferResponse{}, ErrJobOfferNotFound
		}
		return dto.JobOfferResponse{}, err
	}

	response := dto.NewJobOfferResponse(offer)
	if s.authz.CanView(actor, ResourceApplication, offer.Company.UserID) {
		applications, err := s.applications.List(ctx, repository.ApplicationFilter{JobOfferID: &offer.ID})
		if err != nil {
			return dto.JobOfferResponse{}, err
		}
		response.Applications = dto.NewApplicationResponseSlice(applications)
	}
	return response, nil
}

// Create publishes an offer. A company account publishes under its own
// profile; staff must name the company they publish for.
func (s *jobOfferService) Create(ctx context.Context, actor Actor, payload dto.JobOfferCreateRequest) (dto.JobOfferResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.JobOfferResponse{}, err
	}

	var companyID uint
	switch {
	case actor.Role == models.RoleCompany:
		company, err := s.companies.GetByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.JobOfferResponse{}, ErrCompanyNotFound
			}
			return dto.JobOfferResponse{}, err
		}
		companyID = company.ID
	case s.authz.IsStaff(actor):
		if payload.CompanyID == nil {
			return dto.JobOfferResponse{}, ErrCompanyNotFound
		}
		if _, err := s.companies.GetByID(ctx, *payload.CompanyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.JobOfferResponse{}, ErrCompanyNotFound
			}
			return dto.JobOfferResponse{}, err
		}
		companyID = *payload.CompanyID
	default:
		return dto.JobOfferResponse{}, ErrPermissionDenied
	}

	positions := payload.Positions
	if positions < 1 {
		positions = 1
	}

	offer := models.JobOffer{
		CompanyID:          companyID,
		Title:              payload.Title,
		ContractType:       payload.ContractType,
		Description:        s.sanitizer.Sanitize(payload.Description),
		RequiredSkills:     s.sanitizer.Sanitize(payload.RequiredSkills),
		RequiredExperience: payload.RequiredExperience,
		SalaryMin:          payload.SalaryMin,
		SalaryMax:          payload.SalaryMax,
		City:               payload.City,
		Region:             payload.Region,
		PublishedAt:        s.now(),
		ExpiresAt:          payload.ExpiresAt,
		Status:             models.JobOfferStatusActive,
		Positions:          positions,
	}
	if err := s.offers.Create(ctx, &offer); err != nil {
		return dto.JobOfferResponse{}, err
	}

	s.logger.Info().
		Uint("job_offer_id", offer.ID).
		Uint("company_id", companyID).
		Msg("job offer published")

	created, err := s.offers.GetByID(ctx, offer.ID)
	if err != nil {
		return dto.NewJobOfferResponse(offer), nil
	}
	return dto.NewJobOfferResponse(created), nil
}

func (s *jobOfferService) Update(ctx context.Context, actor Actor, id uint, payload dto.JobOfferUpdateRequest) (dto.JobOfferResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.JobOfferResponse{}, err
	}

	offer, err := s.offers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.JobOfferResponse{}, ErrJobOfferNotFound
		}
		return dto.JobOfferResponse{}, err
	}

	if !s.authz.CanAct(actor, ActionUpdate, ResourceJobOffer, offer.Company.UserID) {
		return dto.JobOfferResponse{}, ErrPermissionDenied
	}

	if payload.Title != nil {
		offer.Title = *payload.Title
	}
	if payload.Description != nil {
		offer.Description = s.sanitizer.Sanitize(*payload.Description)
	}
	if payload.RequiredSkills != nil {
		offer.RequiredSkills = s.sanitizer.Sanitize(*payload.RequiredSkills)
	}
	if payload.RequiredExperience != nil {
		offer.RequiredExperience = *payload.RequiredExperience
	}
	if payload.SalaryMin != nil {
		offer.SalaryMin = payload.SalaryMin
	}
	if payload.SalaryMax != nil {
		offer.SalaryMax = payload.SalaryMax
	}
	if payload.City != nil {
		offer.City = *payload.City
	}
	if payload.Region != nil {
		offer.Region = *payload.Region
	}
	if payload.ExpiresAt != nil {
		offer.ExpiresAt = payload.ExpiresAt
	}
	if payload.Positions != nil {
		offer.Positions = *payload.Positions
	}
	if payload.Status != nil && *payload.Status != offer.Status {
		if !models.ValidJobOfferStatus(*payload.Status) {
			return dto.JobOfferResponse{}, ErrInvalidStatus
		}
		offer.Status = *payload.Status
	}

	if err := s.offers.Update(ctx, &offer); err != nil {
		return dto.JobOfferResponse{}, err
	}

	s.logger.Info().Uint("job_offer_id", offer.ID).Msg("job offer updated")
	return dto.NewJobOfferResponse(offer), nil
}
