package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/repository"
)

// AuthService handles registration and login. Registering an apprenant or
// entreprise account creates the role profile in the same transaction, so an
// account never exists without its profile.
type AuthService interface {
	Register(ctx context.Context, payload dto.RegisterRequest) (dto.LoginResponse, error)
	Login(ctx context.Context, payload dto.LoginRequest) (dto.LoginResponse, error)
	Verify(ctx context.Context, userID uint) (dto.AuthUser, error)
}

type authService struct {
	users     repository.UserRepository
	learners  repository.LearnerRepository
	companies repository.CompanyRepository
	validator *validator.Validate
	txRunner  TxRunner
	logger    zerolog.Logger
	secret    string
	tokenTTL  time.Duration
	now       func() time.Time
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(userRepo repository.UserRepository, learnerRepo repository.LearnerRepository, companyRepo repository.CompanyRepository, validate *validator.Validate, txRunner TxRunner, secret string, tokenTTL time.Duration, logger zerolog.Logger) AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &authService{
		users:     userRepo,
		learners:  learnerRepo,
		companies: companyRepo,
		validator: validate,
		txRunner:  txRunner,
		logger:    logger.With().Str("component", "auth_service").Logger(),
		secret:    secret,
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

func (s *authService) Register(ctx context.Context, payload dto.RegisterRequest) (dto.LoginResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.LoginResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return dto.LoginResponse{}, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.LoginResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         payload.Role,
		FirstName:    strings.TrimSpace(payload.FirstName),
		LastName:     strings.TrimSpace(payload.LastName),
		Phone:        strings.TrimSpace(payload.Phone),
		IsActive:     true,
	}

	err = s.txRunner.InTx(ctx, func(tx *gorm.DB) error {
		if err := s.users.WithTx(tx).Create(ctx, &user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailTaken
			}
			return err
		}
		switch user.Role {
		case models.RoleLearner:
			learner := models.Learner{
				UserID:          user.ID,
				InsertionStatus: models.InsertionStatusSearching,
			}
			return s.learners.WithTx(tx).Create(ctx, &learner)
		case models.RoleCompany:
			company := models.Company{
				UserID:            user.ID,
				Name:              user.FirstName + " " + user.LastName,
				PartnershipStatus: models.PartnershipStatusInDiscussion,
			}
			return s.companies.WithTx(tx).Create(ctx, &company)
		}
		return nil
	})
	if err != nil {
		return dto.LoginResponse{}, err
	}

	s.logger.Info().Uint("user_id", user.ID).Str("role", user.Role).Msg("account registered")
	return s.issueToken(user)
}

func (s *authService) Login(ctx context.Context, payload dto.LoginRequest) (dto.LoginResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.LoginResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LoginResponse{}, ErrInvalidCredentials
		}
		return dto.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)); err != nil {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return dto.LoginResponse{}, ErrAccountDisabled
	}

	return s.issueToken(user)
}

// Verify resolves the account behind a validated token.
func (s *authService) Verify(ctx context.Context, userID uint) (dto.AuthUser, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AuthUser{}, ErrUserNotFound
		}
		return dto.AuthUser{}, err
	}
	if !user.IsActive {
		return dto.AuthUser{}, ErrAccountDisabled
	}

	return dto.AuthUser{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

func (s *authService) issueToken(user models.User) (dto.LoginResponse, error) {
	issuedAt := s.now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"iat":  issuedAt.Unix(),
		"exp":  issuedAt.Add(s.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return dto.LoginResponse{}, err
	}

	return dto.LoginResponse{
		Token: token,
		User: dto.AuthUser{
			ID:        user.ID,
			Email:     user.Email,
			Role:      user.Role,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	}, nil
}
