package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/service"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/utils"
)

// JobOfferHandler exposes job offer publication and browsing.
type JobOfferHandler struct {
	service      service.JobOfferService
	applications service.ApplicationService
	logger       zerolog.Logger
}

// NewJobOfferHandler constructs the job offer handler.
func NewJobOfferHandler(service service.JobOfferService, applications service.ApplicationService, logger zerolog.Logger) *JobOfferHandler {
	return &JobOfferHandler{
		service:      service,
		applications: applications,
		logger:       logger.With().Str("component", "job_offer_handler").Logger(),
	}
}

// Register wires offer routes, including the learner application entry point.
func (h *JobOfferHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Get("/:id", h.get)
	router.Patch("/:id", h.update)
	router.Post("/:id/apply", h.apply)
}

func (h *JobOfferHandler) list(c *fiber.Ctx) error {
	filter := dto.JobOfferFilter{
		Status:       strings.TrimSpace(c.Query("statut")),
		ContractType: strings.TrimSpace(c.Query("type_contrat")),
		Region:       strings.TrimSpace(c.Query("region")),
		Search:       strings.TrimSpace(c.Query("search")),
	}

	offers, err := h.service.List(c.Context(), actorFromContext(c), filter)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to list job offers")
	}

	return utils.SendSuccess(c, "job offers retrieved", offers)
}

func (h *JobOfferHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	offer, err := h.service.GetByID(c.Context(), actorFromContext(c), id)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to fetch job offer")
	}

	return utils.SendSuccess(c, "job offer retrieved", offer)
}

func (h *JobOfferHandler) create(c *fiber.Ctx) error {
	var payload dto.JobOfferCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	offer, err := h.service.Create(c.Context(), actorFromContext(c), payload)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to publish job offer")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "job offer published", offer)
}

func (h *JobOfferHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.JobOfferUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	offer, err := h.service.Update(c.Context(), actorFromContext(c), id, payload)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to update job offer")
	}

	return utils.SendSuccess(c, "job offer updated", offer)
}

func (h *JobOfferHandler) apply(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.ApplicationCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	application, err := h.applications.Apply(c.Context(), actorFromContext(c), id, payload)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to submit application")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "application submitted", application)
}
