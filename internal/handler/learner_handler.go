package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/service"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/utils"
)

// LearnerHandler exposes learner profiles and their insertion history.
type LearnerHandler struct {
	service  service.LearnerService
	tracking service.TrackingService
	logger   zerolog.Logger
}

// NewLearnerHandler constructs the learner handler.
func NewLearnerHandler(service service.LearnerService, tracking service.TrackingService, logger zerolog.Logger) *LearnerHandler {
	return &LearnerHandler{
		service:  service,
		tracking: tracking,
		logger:   logger.With().Str("component", "learner_handler").Logger(),
	}
}

// Register wires learner routes, including the insertion ledger.
func (h *LearnerHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/me", h.me)
	router.Get("/:id", h.get)
	router.Patch("/:id", h.update)
	router.Get("/:id/tracking", h.history)
	router.Post("/:id/tracking", h.addEntry)
}

func (h *LearnerHandler) list(c *fiber.Ctx) error {
	filter := dto.LearnerListFilter{
		InsertionStatus: strings.TrimSpace(c.Query("statut_insertion")),
		Promotion:       strings.TrimSpace(c.Query("promotion")),
		Search:          strings.TrimSpace(c.Query("search")),
	}

	learners, err := h.service.List(c.Context(), actorFromContext(c), filter)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to list learners")
	}

	return utils.SendSuccess(c, "learners retrieved", learners)
}

func (h *LearnerHandler) me(c *fiber.Ctx) error {
	actor := actorFromContext(c)
	learner, err := h.service.GetByUserID(c.Context(), actor, actor.UserID)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to fetch learner profile")
	}

	return utils.SendSuccess(c, "learner profile retrieved", learner)
}

func (h *LearnerHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	learner, err := h.service.GetByID(c.Context(), actorFromContext(c), id)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to fetch learner profile")
	}

	return utils.SendSuccess(c, "learner profile retrieved", learner)
}

func (h *LearnerHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.LearnerUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	learner, err := h.service.Update(c.Context(), actorFromContext(c), id, payload)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to update learner profile")
	}

	return utils.SendSuccess(c, "learner profile updated", learner)
}

func (h *LearnerHandler) history(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	entries, err := h.tracking.History(c.Context(), actorFromContext(c), id)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to fetch insertion history")
	}

	return utils.SendSuccess(c, "insertion history retrieved", entries)
}

func (h *LearnerHandler) addEntry(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.TrackingCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	entry, err := h.tracking.AddEntry(c.Context(), actorFromContext(c), id, payload)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to record insertion entry")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "insertion entry recorded", entry)
}
