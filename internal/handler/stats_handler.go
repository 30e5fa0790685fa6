package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/service"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/utils"
)

// StatsHandler exposes the staff dashboard aggregates.
type StatsHandler struct {
	service service.StatsService
	logger  zerolog.Logger
}

// NewStatsHandler constructs the stats handler.
func NewStatsHandler(service service.StatsService, logger zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		logger:  logger.With().Str("component", "stats_handler").Logger(),
	}
}

// Register wires the dashboard route.
func (h *StatsHandler) Register(router fiber.Router) {
	router.Get("/dashboard", h.dashboard)
}

func (h *StatsHandler) dashboard(c *fiber.Ctx) error {
	dashboard, err := h.service.Dashboard(c.Context(), actorFromContext(c))
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to build dashboard")
	}

	return utils.SendSuccess(c, "dashboard retrieved", dashboard)
}
