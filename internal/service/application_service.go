package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/repository"
)

// ApplicationService orchestrates the application workflow: a learner applies
// to an open offer at most once, the company or staff move the application
// through its review lifecycle. Accepting an application never touches the
// learner's insertion status; that change is a separate, explicit ledger
// operation.
type ApplicationService interface {
	List(ctx context.Context, actor Actor, filter dto.ApplicationFilter) ([]dto.ApplicationResponse, error)
	GetByID(ctx context.Context, actor Actor, id uint) (dto.ApplicationResponse, error)
	Apply(ctx context.Context, actor Actor, offerID uint, payload dto.ApplicationCreateRequest) (dto.ApplicationResponse, error)
	UpdateStatus(ctx context.Context, actor Actor, id uint, payload dto.ApplicationStatusUpdateRequest) (dto.ApplicationResponse, error)
}

type applicationService struct {
	applications repository.ApplicationRepository
	offers       repository.JobOfferRepository
	learners     repository.LearnerRepository
	authz        *Authorizer
	validator    *validator.Validate
	txRunner     TxRunner
	sanitizer    *bluemonday.Policy
	logger       zerolog.Logger
	tracer       trace.Tracer
	now          func() time.Time
}

// NewApplicationService constructs an ApplicationService instance.
func NewApplicationService(applicationRepo repository.ApplicationRepository, offerRepo repository.JobOfferRepository, learnerRepo repository.LearnerRepository, authz *Authorizer, validate *validator.Validate, txRunner TxRunner, logger zerolog.Logger) ApplicationService {
	return &applicationService{
		applications: applicationRepo,
		offers:       offerRepo,
		learners:     learnerRepo,
		authz:        authz,
		validator:    validate,
		txRunner:     txRunner,
		sanitizer:    bluemonday.StrictPolicy(),
		logger:       logger.With().Str("component", "application_service").Logger(),
		tracer:       otel.Tracer("github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/service/application"),
		now:          time.Now,
	}
}

func (s *applicationService) List(ctx context.Context, actor Actor, filter dto.ApplicationFilter) ([]dto.ApplicationResponse, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, err
	}

	repoFilter := repository.ApplicationFilter{
		JobOfferID: filter.JobOfferID,
		LearnerID:  filter.LearnerID,
		Status:     filter.Status,
	}

	switch {
	case s.authz.IsStaff(actor):
		// staff see everything the filter selects
	case actor.Role == models.RoleLearner:
		learner, err := s.learners.GetByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrLearnerNotFound
			}
			return nil, err
		}
		repoFilter.LearnerID = &learner.ID
	case actor.Role == models.RoleCompany:
		if filter.JobOfferID == nil {
			return nil, ErrPermissionDenied
		}
		offer, err := s.offers.GetByID(ctx, *filter.JobOfferID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrJobOfferNotFound
			}
			return nil, err
		}
		if !s.authz.CanView(actor, ResourceApplication, offer.Company.UserID) {
			return nil, ErrPermissionDenied
		}
	default:
		return nil, ErrPermissionDenied
	}

	applications, err := s.applications.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}
	return dto.NewApplicationResponseSlice(applications), nil
}

func (s *applicationService) GetByID(ctx context.Context, actor Actor, id uint) (dto.ApplicationResponse, error) {
	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ApplicationResponse{}, ErrApplicationNotFound
		}
		return dto.ApplicationResponse{}, err
	}

	if !s.authz.CanView(actor, ResourceApplication, application.Learner.UserID) &&
		!s.authz.CanView(actor, ResourceApplication, application.JobOffer.Company.UserID) {
		return dto.ApplicationResponse{}, ErrPermissionDenied
	}

	return dto.NewApplicationResponse(application), nil
}

// Apply submits the acting learner's application to an offer. The offer must
// be active and the learner must not already have applied. Both checks run
// inside the insert transaction; when two requests race past the pre-check,
// the unique index on (job_offer_id, learner_id) rejects the second insert.
func (s *applicationService) Apply(ctx context.Context, actor Actor, offerID uint, payload dto.ApplicationCreateRequest) (dto.ApplicationResponse, error) {
	ctx, span := s.tracer.Start(ctx, "application.apply")
	defer span.End()
	span.SetAttributes(attribute.Int("job_offer.id", int(offerID)))

	if actor.Role != models.RoleLearner {
		return dto.ApplicationResponse{}, ErrPermissionDenied
	}
	if err := s.validator.Struct(payload); err != nil {
		return dto.ApplicationResponse{}, err
	}

	learner, err := s.learners.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ApplicationResponse{}, ErrLearnerNotFound
		}
		return dto.ApplicationResponse{}, err
	}

	var application models.Application
	err = s.txRunner.InTx(ctx, func(tx *gorm.DB) error {
		offer, err := s.offers.WithTx(tx).GetByID(ctx, offerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrJobOfferNotFound
			}
			return err
		}
		if !offer.IsOpen() {
			return ErrOfferNotActive
		}

		applications := s.applications.WithTx(tx)
		if _, err := applications.GetByOfferAndLearner(ctx, offerID, learner.ID); err == nil {
			return ErrDuplicateApplication
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		application = models.Application{
			JobOfferID:        offerID,
			LearnerID:         learner.ID,
			Status:            models.ApplicationStatusPending,
			MotivationMessage: s.sanitizer.Sanitize(payload.MotivationMessage),
		}
		if err := applications.Create(ctx, &application); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateApplication
			}
			return err
		}
		return nil
	})
	if err != nil {
		return dto.ApplicationResponse{}, err
	}

	s.logger.Info().
		Uint("application_id", application.ID).
		Uint("job_offer_id", offerID).
		Uint("learner_id", learner.ID).
		Msg("application submitted")

	created, err := s.applications.GetByID(ctx, application.ID)
	if err != nil {
		return dto.NewApplicationResponse(application), nil
	}
	return dto.NewApplicationResponse(created), nil
}

// UpdateStatus moves an application through its review lifecycle. Writes to
// any status other than en_attente stamp RespondedAt, repeat writes
// included: the timestamp records the latest decision, not the first.
// Writing en_attente never stamps it, so a pending application keeps a null
// RespondedAt until someone actually responds.
func (s *applicationService) UpdateStatus(ctx context.Context, actor Actor, id uint, payload dto.ApplicationStatusUpdateRequest) (dto.ApplicationResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ApplicationResponse{}, err
	}

	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ApplicationResponse{}, ErrApplicationNotFound
		}
		return dto.ApplicationResponse{}, err
	}

	if !s.authz.CanAct(actor, ActionUpdate, ResourceApplication, application.JobOffer.Company.UserID) {
		return dto.ApplicationResponse{}, ErrPermissionDenied
	}

	if !CanTransitionApplication(application.Status, payload.Status) {
		return dto.ApplicationResponse{}, ErrInvalidStatus
	}

	application.Status = payload.Status
	if payload.Status != models.ApplicationStatusPending {
		respondedAt := s.now()
		application.RespondedAt = &respondedAt
	}
	if payload.Comments != "" {
		application.Comments = s.sanitizer.Sanitize(payload.Comments)
	}

	if err := s.applications.Update(ctx, &application); err != nil {
		return dto.ApplicationResponse{}, err
	}

	s.logger.Info().
		Uint("application_id", application.ID).
		Str("status", payload.Status).
		Uint("actor_id", actor.UserID).
		Msg("application status updated")

	return dto.NewApplicationResponse(application), nil
}
