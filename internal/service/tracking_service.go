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

// TrackingService manages the append-only insertion ledger. Entries are only
// ever appended; a correction is a new entry. Appending and updating the
// learner's current status happen in one transaction so the projection and
// the ledger can never drift apart under concurrency.
type TrackingService interface {
	History(ctx context.Context, actor Actor, learnerID uint) ([]dto.TrackingEntryResponse, error)
	AddEntry(ctx context.Context, actor Actor, learnerID uint, payload dto.TrackingCreateRequest) (dto.TrackingEntryResponse, error)
}

type trackingService struct {
	trackings repository.TrackingRepository
	learners  repository.LearnerRepository
	authz     *Authorizer
	validator *validator.Validate
	txRunner  TxRunner
	logger    zerolog.Logger
}

// NewTrackingService constructs a TrackingService instance.
func NewTrackingService(trackingRepo repository.TrackingRepository, learnerRepo repository.LearnerRepository, authz *Authorizer, validate *validator.Validate, txRunner TxRunner, logger zerolog.Logger) TrackingService {
	return &trackingService{
		trackings: trackingRepo,
		learners:  learnerRepo,
		authz:     authz,
		validator: validate,
		txRunner:  txRunner,
		logger:    logger.With().Str("component", "tracking_service").Logger(),
	}
}

// History returns the learner's ledger newest-first, after checking that the
// learner's current status agrees with the newest entry. A disagreement is
// reported as ErrInconsistentState and never patched over.
func (s *trackingService) History(ctx context.Context, actor Actor, learnerID uint) ([]dto.TrackingEntryResponse, error) {
	learner, err := s.learners.GetByID(ctx, learnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLearnerNotFound
		}
		return nil, err
	}

	if !s.authz.CanView(actor, ResourceTracking, learner.UserID) {
		return nil, ErrPermissionDenied
	}

	entries, err := s.trackings.History(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	if len(entries) > 0 && entries[0].NewStatus != learner.InsertionStatus {
		s.logger.Error().
			Uint("learner_id", learnerID).
			Str("current", learner.InsertionStatus).
			Str("ledger_head", entries[0].NewStatus).
			Msg("insertion status diverged from ledger")
		return nil, ErrInconsistentState
	}

	return dto.NewTrackingEntryResponseSlice(entries), nil
}

// AddEntry appends a ledger entry on behalf of staff. An explicit entry is
// always appended, even when the status does not change: coaches use
// same-status entries to record enrichment (new employer, salary revision).
// The append is refused with ErrInconsistentState when the ledger head
// disagrees with the learner's current status: appending on top of a
// diverged ledger would bury the divergence instead of surfacing it.
func (s *trackingService) AddEntry(ctx context.Context, actor Actor, learnerID uint, payload dto.TrackingCreateRequest) (dto.TrackingEntryResponse, error) {
	if !s.authz.IsStaff(actor) {
		return dto.TrackingEntryResponse{}, ErrPermissionDenied
	}
	if err := s.validator.Struct(payload); err != nil {
		return dto.TrackingEntryResponse{}, err
	}

	var entry models.InsertionTracking
	err := s.txRunner.InTx(ctx, func(tx *gorm.DB) error {
		learners := s.learners.WithTx(tx)
		learner, err := learners.GetByID(ctx, learnerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLearnerNotFound
			}
			return err
		}

		head, err := s.trackings.WithTx(tx).Latest(ctx, learnerID)
		if err != nil {
			return err
		}
		if head != nil && head.NewStatus != learner.InsertionStatus {
			s.logger.Error().
				Uint("learner_id", learnerID).
				Str("current", learner.InsertionStatus).
				Str("ledger_head", head.NewStatus).
				Msg("insertion status diverged from ledger")
			return ErrInconsistentState
		}

		if !CanTransitionInsertion(learner.InsertionStatus, payload.NewStatus) {
			return ErrInvalidStatus
		}

		actorID := actor.UserID
		entry = models.InsertionTracking{
			LearnerID:      learner.ID,
			PreviousStatus: learner.InsertionStatus,
			NewStatus:      payload.NewStatus,
			CompanyName:    payload.CompanyName,
			Position:       payload.Position,
			ContractType:   payload.ContractType,
			Salary:         payload.Salary,
			StartDate:      payload.StartDate,
			EndDate:        payload.EndDate,
			Comments:       payload.Comments,
			CreatedBy:      &actorID,
		}
		if err := s.trackings.WithTx(tx).Append(ctx, &entry); err != nil {
			return err
		}

		if learner.InsertionStatus != payload.NewStatus {
			learner.InsertionStatus = payload.NewStatus
			if err := learners.Update(ctx, &learner); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return dto.TrackingEntryResponse{}, err
	}

	s.logger.Info().
		Uint("learner_id", learnerID).
		Str("new_status", payload.NewStatus).
		Uint("actor_id", actor.UserID).
		Msg("insertion ledger entry appended")

	return dto.NewTrackingEntryResponse(entry), nil
}

// appendTransition writes the ledger entry that accompanies a status change
// made through a profile update. It runs inside the caller's transaction and
// is only called for genuine changes: profile updates that leave the status
// untouched append nothing.
func appendTransition(ctx context.Context, trackings repository.TrackingRepository, learner models.Learner, previous string, actorID uint) error {
	entry := models.InsertionTracking{
		LearnerID:      learner.ID,
		PreviousStatus: previous,
		NewStatus:      learner.InsertionStatus,
		CreatedBy:      &actorID,
	}
	return trackings.Append(ctx, &entry)
}
