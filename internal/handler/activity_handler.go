package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/service"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/utils"
)

// ActivityHandler exposes the administrative audit log.
type ActivityHandler struct {
	service service.ActivityService
	logger  zerolog.Logger
}

// NewActivityHandler constructs the activity handler.
func NewActivityHandler(service service.ActivityService, logger zerolog.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		logger:  logger.With().Str("component", "activity_handler").Logger(),
	}
}

// Register wires the audit log route.
func (h *ActivityHandler) Register(router fiber.Router) {
	router.Get("", h.list)
}

func (h *ActivityHandler) list(c *fiber.Ctx) error {
	page, err := parseQueryInt(c, "page")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page")
	}

	pageSize, err := parseQueryInt(c, "page_size")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page size")
	}

	req := dto.ActivityListRequest{
		Page:       page,
		PageSize:   pageSize,
		Action:     strings.TrimSpace(c.Query("action")),
		EntityType: strings.TrimSpace(c.Query("entity_type")),
	}

	actorID, err := parseQueryUintPtr(c, "actor_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid actor filter")
	}
	req.ActorID = actorID

	response, err := h.service.List(c.Context(), actorFromContext(c), req)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to list activity entries")
	}

	return utils.SendSuccess(c, "activity entries retrieved", response)
}
