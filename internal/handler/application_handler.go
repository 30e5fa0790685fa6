package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/service"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/utils"
)

// ApplicationHandler exposes application review endpoints.
type ApplicationHandler struct {
	service service.ApplicationService
	logger  zerolog.Logger
}

// NewApplicationHandler constructs the application handler.
func NewApplicationHandler(service service.ApplicationService, logger zerolog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		service: service,
		logger:  logger.With().Str("component", "application_handler").Logger(),
	}
}

// Register wires application routes.
func (h *ApplicationHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Patch("/:id/status", h.updateStatus)
}

func (h *ApplicationHandler) list(c *fiber.Ctx) error {
	filter := dto.ApplicationFilter{
		Status: strings.TrimSpace(c.Query("statut")),
	}

	offerID, err := parseQueryUintPtr(c, "job_offer_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid job offer filter")
	}
	filter.JobOfferID = offerID

	learnerID, err := parseQueryUintPtr(c, "learner_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid learner filter")
	}
	filter.LearnerID = learnerID

	applications, err := h.service.List(c.Context(), actorFromContext(c), filter)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to list applications")
	}

	return utils.SendSuccess(c, "applications retrieved", applications)
}

func (h *ApplicationHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	application, err := h.service.GetByID(c.Context(), actorFromContext(c), id)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to fetch application")
	}

	return utils.SendSuccess(c, "application retrieved", application)
}

func (h *ApplicationHandler) updateStatus(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.ApplicationStatusUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	application, err := h.service.UpdateStatus(c.Context(), actorFromContext(c), id, payload)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to update application status")
	}

	return utils.SendSuccess(c, "application status updated", application)
}
