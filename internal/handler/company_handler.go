package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/service"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/utils"
)

// CompanyHandler exposes partner company profiles.
type CompanyHandler struct {
	service service.CompanyService
	logger  zerolog.Logger
}

// NewCompanyHandler constructs the company handler.
func NewCompanyHandler(service service.CompanyService, logger zerolog.Logger) *CompanyHandler {
	return &CompanyHandler{
		service: service,
		logger:  logger.With().Str("component", "company_handler").Logger(),
	}
}

// Register wires company routes.
func (h *CompanyHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/me", h.me)
	router.Get("/:id", h.get)
	router.Patch("/:id", h.update)
}

func (h *CompanyHandler) list(c *fiber.Ctx) error {
	filter := dto.CompanyListFilter{
		PartnershipStatus: strings.TrimSpace(c.Query("statut_partenariat")),
		Sector:            strings.TrimSpace(c.Query("secteur")),
		Region:            strings.TrimSpace(c.Query("region")),
	}

	companies, err := h.service.List(c.Context(), actorFromContext(c), filter)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to list companies")
	}

	return utils.SendSuccess(c, "companies retrieved", companies)
}

func (h *CompanyHandler) me(c *fiber.Ctx) error {
	actor := actorFromContext(c)
	company, err := h.service.GetByUserID(c.Context(), actor, actor.UserID)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to fetch company profile")
	}

	return utils.SendSuccess(c, "company profile retrieved", company)
}

func (h *CompanyHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	company, err := h.service.GetByID(c.Context(), actorFromContext(c), id)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to fetch company profile")
	}

	return utils.SendSuccess(c, "company profile retrieved", company)
}

func (h *CompanyHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.CompanyUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	company, err := h.service.Update(c.Context(), actorFromContext(c), id, payload)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to update company profile")
	}

	return utils.SendSuccess(c, "company profile updated", company)
}
