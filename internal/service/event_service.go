package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/repository"
)

// EventService orchestrates events and registrations. Admission checks
// (status, start date, capacity, one registration per learner) all run inside
// the registration transaction so two concurrent registrations cannot both
// claim the last seat.
type EventService interface {
	List(ctx context.Context, actor Actor, filter dto.EventFilter) ([]dto.EventResponse, error)
	GetByID(ctx context.Context, actor Actor, id uint) (dto.EventResponse, error)
	Create(ctx context.Context, actor Actor, payload dto.EventCreateRequest) (dto.EventResponse, error)
	Update(ctx context.Context, actor Actor, id uint, payload dto.EventUpdateRequest) (dto.EventResponse, error)
	Register(ctx context.Context, actor Actor, eventID uint, payload dto.RegistrationRequest) (dto.ParticipantResponse, error)
	UpdateParticipation(ctx context.Context, actor Actor, participantID uint, payload dto.ParticipationStatusUpdateRequest) (dto.ParticipantResponse, error)
}

type eventService struct {
	events       repository.EventRepository
	participants repository.ParticipantRepository
	learners     repository.LearnerRepository
	authz        *Authorizer
	validator    *validator.Validate
	txRunner     TxRunner
	logger       zerolog.Logger
	tracer       trace.Tracer
	now          func() time.Time
}

// NewEventService constructs an EventService instance.
func NewEventService(eventRepo repository.EventRepository, participantRepo repository.ParticipantRepository, learnerRepo repository.LearnerRepository, authz *Authorizer, validate *validator.Validate, txRunner TxRunner, logger zerolog.Logger) EventService {
	return &eventService{
		events:       eventRepo,
		participants: participantRepo,
		learners:     learnerRepo,
		authz:        authz,
		validator:    validate,
		txRunner:     txRunner,
		logger:       logger.With().Str("component", "event_service").Logger(),
		tracer:       otel.Tracer("github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/service/event"),
		now:          time.Now,
	}
}

func (s *eventService) List(ctx context.Context, _ Actor, filter dto.EventFilter) ([]dto.EventResponse, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, err
	}

	repoFilter := repository.EventFilter{
		Status: filter.Status,
		Type:   filter.Type,
	}
	if filter.Upcoming {
		after := s.now()
		repoFilter.UpcomingAfter = &after
	}

	events, err := s.events.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.EventResponse, 0, len(events))
	for _, event := range events {
		response := dto.NewEventResponse(event)
		occupied, err := s.participants.CountOccupied(ctx, event.ID)
		if err != nil {
			return nil, err
		}
		response.Occupied = occupied
		responses = append(responses, response)
	}
	return responses, nil
}

// GetByID returns the event with its seat count. Staff also get the
// participant roster; other roles only see the aggregate.
func (s *eventService) GetByID(ctx context.Context, actor Actor, id uint) (dto.EventResponse, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EventResponse{}, ErrEventNotFound
		}
		return dto.EventResponse{}, err
	}

	response := dto.NewEventResponse(event)
	occupied, err := s.participants.CountOccupied(ctx, id)
	if err != nil {
		return dto.EventResponse{}, err
	}
	response.Occupied = occupied

	if s.authz.IsStaff(actor) {
		roster, err := s.participants.ListForEvent(ctx, id)
		if err != nil {
			return dto.EventResponse{}, err
		}
		response.Participants = dto.NewParticipantResponseSlice(roster)
	}
	return response, nil
}

func (s *eventService) Create(ctx context.Context, actor Actor, payload dto.EventCreateRequest) (dto.EventResponse, error) {
	if !s.authz.CanAct(actor, ActionCreate, ResourceEvent, 0) {
		return dto.EventResponse{}, ErrPermissionDenied
	}
	if err := s.validator.Struct(payload); err != nil {
		return dto.EventResponse{}, err
	}

	creatorID := actor.UserID
	event := models.Event{
		Title:       payload.Title,
		Description: payload.Description,
		Type:        payload.Type,
		StartDate:   payload.StartDate,
		EndDate:     payload.EndDate,
		Location:    payload.Location,
		Capacity:    payload.Capacity,
		Facilitator: payload.Facilitator,
		Status:      models.EventStatusScheduled,
		CreatedBy:   &creatorID,
	}
	if err := s.events.Create(ctx, &event); err != nil {
		return dto.EventResponse{}, err
	}

	s.logger.Info().Uint("event_id", event.ID).Str("type", event.Type).Msg("event created")
	return dto.NewEventResponse(event), nil
}

func (s *eventService) Update(ctx context.Context, actor Actor, id uint, payload dto.EventUpdateRequest) (dto.EventResponse, error) {
	if !s.authz.CanAct(actor, ActionUpdate, ResourceEvent, 0) {
		return dto.EventResponse{}, ErrPermissionDenied
	}
	if err := s.validator.Struct(payload); err != nil {
		return dto.EventResponse{}, err
	}

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EventResponse{}, ErrEventNotFound
		}
		return dto.EventResponse{}, err
	}

	if payload.Title != nil {
		event.Title = *payload.Title
	}
	if payload.Description != nil {
		event.Description = *payload.Description
	}
	if payload.Location != nil {
		event.Location = *payload.Location
	}
	if payload.Facilitator != nil {
		event.Facilitator = *payload.Facilitator
	}
	if payload.Status != nil && *payload.Status != event.Status {
		if !models.ValidEventStatus(*payload.Status) {
			return dto.EventResponse{}, ErrInvalidStatus
		}
		event.Status = *payload.Status
	}

	if err := s.events.Update(ctx, &event); err != nil {
		return dto.EventResponse{}, err
	}
	return dto.NewEventResponse(event), nil
}

// Register enrolls the acting learner. The whole admission sequence runs in
// one transaction with the event row locked: scheduled check, start-date
// check, seat count against capacity (participants marked absent do not hold
// a seat), then the insert guarded by the unique (event_id, learner_id)
// index. The row lock serializes racing registrations for the last seat;
// the unique index catches duplicate pairs.
func (s *eventService) Register(ctx context.Context, actor Actor, eventID uint, payload dto.RegistrationRequest) (dto.ParticipantResponse, error) {
	ctx, span := s.tracer.Start(ctx, "event.register")
	defer span.End()
	span.SetAttributes(attribute.Int("event.id", int(eventID)))

	if actor.Role != models.RoleLearner {
		return dto.ParticipantResponse{}, ErrPermissionDenied
	}
	if err := s.validator.Struct(payload); err != nil {
		return dto.ParticipantResponse{}, err
	}

	learner, err := s.learners.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ParticipantResponse{}, ErrLearnerNotFound
		}
		return dto.ParticipantResponse{}, err
	}

	var participant models.EventParticipant
	err = s.txRunner.InTx(ctx, func(tx *gorm.DB) error {
		event, err := s.events.WithTx(tx).GetByIDForUpdate(ctx, eventID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		if event.Status != models.EventStatusScheduled {
			return ErrEventNotOpen
		}
		if !event.StartDate.After(s.now()) {
			return ErrEventInPast
		}

		participants := s.participants.WithTx(tx)
		if event.Capacity != nil {
			occupied, err := participants.CountOccupied(ctx, eventID)
			if err != nil {
				return err
			}
			if occupied >= int64(*event.Capacity) {
				return ErrEventFull
			}
		}

		if _, err := participants.GetByEventAndLearner(ctx, eventID, learner.ID); err == nil {
			return ErrDuplicateRegistration
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		participant = models.EventParticipant{
			EventID:             eventID,
			LearnerID:           learner.ID,
			ParticipationStatus: models.ParticipationStatusRegistered,
			Comments:            payload.Comments,
		}
		if err := participants.Create(ctx, &participant); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateRegistration
			}
			return err
		}
		return nil
	})
	if err != nil {
		return dto.ParticipantResponse{}, err
	}

	s.logger.Info().
		Uint("event_id", eventID).
		Uint("learner_id", learner.ID).
		Msg("learner registered for event")

	created, err := s.participants.GetByID(ctx, participant.ID)
	if err != nil {
		return dto.NewParticipantResponse(participant), nil
	}
	return dto.NewParticipantResponse(created), nil
}

// UpdateParticipation moves a registration through the attendance lifecycle.
// Staff only: learners cannot mark themselves present.
func (s *eventService) UpdateParticipation(ctx context.Context, actor Actor, participantID uint, payload dto.ParticipationStatusUpdateRequest) (dto.ParticipantResponse, error) {
	if !s.authz.IsStaff(actor) {
		return dto.ParticipantResponse{}, ErrPermissionDenied
	}
	if err := s.validator.Struct(payload); err != nil {
		return dto.ParticipantResponse{}, err
	}

	participant, err := s.participants.GetByID(ctx, participantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ParticipantResponse{}, ErrParticipantNotFound
		}
		return dto.ParticipantResponse{}, err
	}

	if !CanTransitionParticipation(participant.ParticipationStatus, payload.Status) {
		return dto.ParticipantResponse{}, ErrInvalidStatus
	}

	participant.ParticipationStatus = payload.Status
	if payload.Comments != "" {
		participant.Comments = payload.Comments
	}
	if err := s.participants.Update(ctx, &participant); err != nil {
		return dto.ParticipantResponse{}, err
	}

	s.logger.Info().
		Uint("participant_id", participant.ID).
		Str("status", payload.Status).
		Msg("participation status updated")

	return dto.NewParticipantResponse(participant), nil
}
