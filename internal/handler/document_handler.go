package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/service"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/utils"
)

// DocumentHandler exposes the shared resource library.
type DocumentHandler struct {
	service service.DocumentService
	logger  zerolog.Logger
}

// NewDocumentHandler constructs the document handler.
func NewDocumentHandler(service service.DocumentService, logger zerolog.Logger) *DocumentHandler {
	return &DocumentHandler{
		service: service,
		logger:  logger.With().Str("component", "document_handler").Logger(),
	}
}

// Register wires document routes.
func (h *DocumentHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.upload)
	router.Get("/:id/download", h.download)
	router.Delete("/:id", h.delete)
}

func (h *DocumentHandler) list(c *fiber.Ctx) error {
	documents, err := h.service.List(c.Context(), actorFromContext(c), strings.TrimSpace(c.Query("type_document")))
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to list documents")
	}

	return utils.SendSuccess(c, "documents retrieved", documents)
}

func (h *DocumentHandler) upload(c *fiber.Ctx) error {
	payload := dto.DocumentUploadRequest{
		Title:       strings.TrimSpace(c.FormValue("titre")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Type:        strings.TrimSpace(c.FormValue("type_document")),
	}
	if raw := strings.TrimSpace(c.FormValue("is_public")); raw != "" {
		public, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid is_public value")
		}
		payload.IsPublic = public
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "file is required")
	}

	document, err := h.service.Upload(c.Context(), actorFromContext(c), payload, file)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to upload document")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "document uploaded", document)
}

func (h *DocumentHandler) download(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	document, err := h.service.Download(c.Context(), actorFromContext(c), id)
	if err != nil {
		return respondServiceError(c, h.logger, err, "failed to fetch document")
	}

	return utils.SendSuccess(c, "document retrieved", document)
}

func (h *DocumentHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	if err := h.service.Delete(c.Context(), actorFromContext(c), id); err != nil {
		return respondServiceError(c, h.logger, err, "failed to delete document")
	}

	return utils.SendSuccess(c, "document deleted", nil)
}
