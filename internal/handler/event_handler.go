package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/service"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/utils"
)

// EventHandler exposes event planning and registration endpoints.
type EventHandler struct {
	service service.EventService
	logger  zerolog.Logger
}

// NewEventHandler constructs the event handler.
func NewEventHandler(service service.EventService, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		logger:  logger.With().Str("component", "event_handler").Logger(),
	}
}

// Register wires event routes.
func (h *EventHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Get("/:id", h.get)
	router.Patch("/:id", h.update)
	router.Post("/:id/register", h.register)
	router.Patch("/participants/:id", h.updateParticipation)
}

func (h *EventHandler) list(c *fiber.Ctx) error {
	filter := dto.EventFilter{
		Status: strings.TrimSpace(c.Query("statut")),
		Type:   strings.TrimSpace(c.Query("type_evenement")),
	}

	events, err := h.service.List(c.Context(), actorFromContext(c), filter)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to list events")
	}

	return utils.SendSuccess(c, "events retrieved", events)
}

func (h *EventHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	event, err := h.service.GetByID(c.Context(), actorFromContext(c), id)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to fetch event")
	}

	return utils.SendSuccess(c, "event retrieved", event)
}

func (h *EventHandler) create(c *fiber.Ctx) error {
	var payload dto.EventCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	event, err := h.service.Create(c.Context(), actorFromContext(c), payload)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to create event")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "event created", event)
}

func (h *EventHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.EventUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	event, err := h.service.Update(c.Context(), actorFromContext(c), id, payload)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to update event")
	}

	return utils.SendSuccess(c, "event updated", event)
}

func (h *EventHandler) register(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.RegistrationRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	participant, err := h.service.Register(c.Context(), actorFromContext(c), id, payload)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to register for event")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "registration recorded", participant)
}

func (h *EventHandler) updateParticipation(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.ParticipationStatusUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	participant, err := h.service.UpdateParticipation(c.Context(), actorFromContext(c), id, payload)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to update participation")
	}

	return utils.SendSuccess(c, "participation updated", participant)
}
