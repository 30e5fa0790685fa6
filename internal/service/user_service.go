package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/repository"
)

// UserService manages accounts. Accounts are never deleted: SetActive flips
// the active flag so applications and the insertion ledger keep their
// history, and the flip is written to the activity log.
type UserService interface {
	List(ctx context.Context, actor Actor, filter dto.UserListFilter) ([]dto.UserResponse, error)
	GetByID(ctx context.Context, actor Actor, id uint) (dto.UserResponse, error)
	Update(ctx context.Context, actor Actor, id uint, payload dto.UserUpdateRequest) (dto.UserResponse, error)
	SetActive(ctx context.Context, actor Actor, id uint, payload dto.UserStatusRequest) (dto.UserResponse, error)
}

type userService struct {
	users     repository.UserRepository
	authz     *Authorizer
	validator *validator.Validate
	activity  ActivityRecorder
	logger    zerolog.Logger
}

// NewUserService constructs a UserService instance.
func NewUserService(userRepo repository.UserRepository, authz *Authorizer, validate *validator.Validate, activity ActivityRecorder, logger zerolog.Logger) UserService {
	return &userService{
		users:     userRepo,
		authz:     authz,
		validator: validate,
		activity:  activity,
		logger:    logger.With().Str("component", "user_service").Logger(),
	}
}

func (s *userService) List(ctx context.Context, actor Actor, filter dto.UserListFilter) ([]dto.UserResponse, error) {
	if !s.authz.IsStaff(actor) {
		return nil, ErrPermissionDenied
	}
	if err := s.validator.Struct(filter); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx, repository.UserFilter{
		Role:     filter.Role,
		IsActive: filter.IsActive,
		Search:   strings.TrimSpace(filter.Search),
	})
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponseSlice(users), nil
}

func (s *userService) GetByID(ctx context.Context, actor Actor, id uint) (dto.UserResponse, error) {
	if !s.authz.CanView(actor, ResourceUser, id) {
		return dto.UserResponse{}, ErrPermissionDenied
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, ErrUserNotFound
		}
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) Update(ctx context.Context, actor Actor, id uint, payload dto.UserUpdateRequest) (dto.UserResponse, error) {
	if !s.authz.CanAct(actor, ActionUpdate, ResourceUser, id) {
		return dto.UserResponse{}, ErrPermissionDenied
	}
	if err := s.validator.Struct(payload); err != nil {
		return dto.UserResponse{}, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, ErrUserNotFound
		}
		return dto.UserResponse{}, err
	}

	if payload.FirstName != nil {
		user.FirstName = strings.TrimSpace(*payload.FirstName)
	}
	if payload.LastName != nil {
		user.LastName = strings.TrimSpace(*payload.LastName)
	}
	if payload.Phone != nil {
		user.Phone = strings.TrimSpace(*payload.Phone)
	}

	if err := s.users.Update(ctx, &user); err != nil {
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

// SetActive toggles the account flag. Administrator only: ActionManage is the
// one verb coaches do not hold.
func (s *userService) SetActive(ctx context.Context, actor Actor, id uint, payload dto.UserStatusRequest) (dto.UserResponse, error) {
	if !s.authz.CanAct(actor, ActionManage, ResourceUser, 0) {
		return dto.UserResponse{}, ErrPermissionDenied
	}
	if err := s.validator.Struct(payload); err != nil {
		return dto.UserResponse{}, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, ErrUserNotFound
		}
		return dto.UserResponse{}, err
	}

	active := *payload.IsActive
	if err := s.users.SetActive(ctx, id, active); err != nil {
		return dto.UserResponse{}, err
	}
	user.IsActive = active

	targetID := user.ID
	action := "user.deactivated"
	if active {
		action = "user.activated"
	}
	if _, err := s.activity.Record(ctx, ActivityEntry{
		ActorID:    actor.UserID,
		ActorRole:  actor.Role,
		Action:     action,
		EntityType: "user",
		EntityID:   &targetID,
		Metadata:   map[string]interface{}{"email": user.Email},
	}); err != nil {
		s.logger.Warn().Err(err).Uint("user_id", id).Msg("failed to record account status change")
	}

	s.logger.Info().
		Uint("user_id", id).
		Bool("active", active).
		Uint("actor_id", actor.UserID).
		Msg("account status changed")

	return dto.NewUserResponse(user), nil
}
