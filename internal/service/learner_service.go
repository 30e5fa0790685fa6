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

// LearnerService manages learner profiles. A profile update that changes the
// insertion status appends a ledger entry in the same transaction; an update
// that leaves the status alone appends nothing, so repeated saves of an
// unchanged profile never pollute the history.
type LearnerService interface {
	List(ctx context.Context, actor Actor, filter dto.LearnerListFilter) ([]dto.LearnerResponse, error)
	GetByID(ctx context.Context, actor Actor, id uint) (dto.LearnerResponse, error)
	GetByUserID(ctx context.Context, actor Actor, userID uint) (dto.LearnerResponse, error)
	Update(ctx context.Context, actor Actor, id uint, payload dto.LearnerUpdateRequest) (dto.LearnerResponse, error)
}

type learnerService struct {
	learners  repository.LearnerRepository
	trackings repository.TrackingRepository
	authz     *Authorizer
	validator *validator.Validate
	txRunner  TxRunner
	logger    zerolog.Logger
}

// NewLearnerService constructs a LearnerService instance.
func NewLearnerService(learnerRepo repository.LearnerRepository, trackingRepo repository.TrackingRepository, authz *Authorizer, validate *validator.Validate, txRunner TxRunner, logger zerolog.Logger) LearnerService {
	return &learnerService{
		learners:  learnerRepo,
		trackings: trackingRepo,
		authz:     authz,
		validator: validate,
		txRunner:  txRunner,
		logger:    logger.With().Str("component", "learner_service").Logger(),
	}
}

func (s *learnerService) List(ctx context.Context, actor Actor, filter dto.LearnerListFilter) ([]dto.LearnerResponse, error) {
	if !s.authz.IsStaff(actor) {
		return nil, ErrPermissionDenied
	}
	if err := s.validator.Struct(filter); err != nil {
		return nil, err
	}

	learners, err := s.learners.List(ctx, repository.LearnerFilter{
		InsertionStatus: filter.InsertionStatus,
		Promotion:       filter.Promotion,
		Search:          filter.Search,
	})
	if err != nil {
		return nil, err
	}
	return dto.NewLearnerResponseSlice(learners), nil
}

func (s *learnerService) GetByID(ctx context.Context, actor Actor, id uint) (dto.LearnerResponse, error) {
	learner, err := s.learners.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LearnerResponse{}, ErrLearnerNotFound
		}
		return dto.LearnerResponse{}, err
	}

	if !s.authz.CanView(actor, ResourceLearner, learner.UserID) {
		return dto.LearnerResponse{}, ErrPermissionDenied
	}
	return s.withHistory(ctx, learner)
}

// GetByUserID resolves the profile attached to an account, used by the
// "my profile" endpoint.
func (s *learnerService) GetByUserID(ctx context.Context, actor Actor, userID uint) (dto.LearnerResponse, error) {
	learner, err := s.learners.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LearnerResponse{}, ErrLearnerNotFound
		}
		return dto.LearnerResponse{}, err
	}

	if !s.authz.CanView(actor, ResourceLearner, learner.UserID) {
		return dto.LearnerResponse{}, ErrPermissionDenied
	}
	return s.withHistory(ctx, learner)
}

func (s *learnerService) withHistory(ctx context.Context, learner models.Learner) (dto.LearnerResponse, error) {
	response := dto.NewLearnerResponse(learner)

	entries, err := s.trackings.History(ctx, learner.ID)
	if err != nil {
		return dto.LearnerResponse{}, err
	}
	if len(entries) > 0 && entries[0].NewStatus != learner.InsertionStatus {
		s.logger.Error().
			Uint("learner_id", learner.ID).
			Str("current", learner.InsertionStatus).
			Str("ledger_head", entries[0].NewStatus).
			Msg("insertion status diverged from ledger")
		return dto.LearnerResponse{}, ErrInconsistentState
	}
	response.History = dto.NewTrackingEntryResponseSlice(entries)
	return response, nil
}

// Update applies a typed partial update. Nil fields are untouched. When the
// payload carries a different insertion status, the transition is validated
// and the learner row plus the new ledger entry are written in one
// transaction.
func (s *learnerService) Update(ctx context.Context, actor Actor, id uint, payload dto.LearnerUpdateRequest) (dto.LearnerResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.LearnerResponse{}, err
	}

	var updated models.Learner
	err := s.txRunner.InTx(ctx, func(tx *gorm.DB) error {
		learners := s.learners.WithTx(tx)
		learner, err := learners.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLearnerNotFound
			}
			return err
		}

		if !s.authz.CanAct(actor, ActionUpdate, ResourceLearner, learner.UserID) {
			return ErrPermissionDenied
		}

		previous := learner.InsertionStatus
		applyLearnerUpdate(&learner, payload)

		statusChanged := learner.InsertionStatus != previous
		if statusChanged && !CanTransitionInsertion(previous, learner.InsertionStatus) {
			return ErrInvalidStatus
		}

		if err := learners.Update(ctx, &learner); err != nil {
			return err
		}
		if statusChanged {
			if err := appendTransition(ctx, s.trackings.WithTx(tx), learner, previous, actor.UserID); err != nil {
				return err
			}
		}
		updated = learner
		return nil
	})
	if err != nil {
		return dto.LearnerResponse{}, err
	}

	s.logger.Info().Uint("learner_id", updated.ID).Msg("learner profile updated")
	return s.withHistory(ctx, updated)
}

func applyLearnerUpdate(learner *models.Learner, payload dto.LearnerUpdateRequest) {
	if payload.Promotion != nil {
		learner.Promotion = *payload.Promotion
	}
	if payload.Training != nil {
		learner.Training = *payload.Training
	}
	if payload.StartDate != nil {
		learner.StartDate = payload.StartDate
	}
	if payload.EndDate != nil {
		learner.EndDate = payload.EndDate
	}
	if payload.Skills != nil {
		learner.Skills = *payload.Skills
	}
	if payload.Experience != nil {
		learner.Experience = *payload.Experience
	}
	if payload.Address != nil {
		learner.Address = *payload.Address
	}
	if payload.City != nil {
		learner.City = *payload.City
	}
	if payload.Region != nil {
		learner.Region = *payload.Region
	}
	if payload.BirthDate != nil {
		learner.BirthDate = payload.BirthDate
	}
	if payload.Gender != nil {
		learner.Gender = *payload.Gender
	}
	if payload.EducationLevel != nil {
		learner.EducationLevel = *payload.EducationLevel
	}
	if payload.InsertionStatus != nil {
		learner.InsertionStatus = *payload.InsertionStatus
	}
}
