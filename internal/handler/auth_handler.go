package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/service"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/utils"
)

// AuthHandler exposes account registration and login.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler constructs the auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register wires the public auth routes.
func (h *AuthHandler) Register(router fiber.Router) {
	router.Post("/register", h.register)
	router.Post("/login", h.login)
}

// RegisterProtected wires auth routes that require a valid token.
func (h *AuthHandler) RegisterProtected(router fiber.Router) {
	router.Get("/verify", h.verify)
}

func (h *AuthHandler) register(c *fiber.Ctx) error {
	var payload dto.RegisterRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	response, err := h.service.Register(c.Context(), payload)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to register account")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "account created", response)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var payload dto.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	response, err := h.service.Login(c.Context(), payload)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to authenticate")
	}

	return utils.SendSuccess(c, "authenticated", response)
}

func (h *AuthHandler) verify(c *fiber.Ctx) error {
	user, err := h.service.Verify(c.Context(), userIDFromContext(c))
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to verify token")
	}

	return utils.SendSuccess(c, "token valid", user)
}
