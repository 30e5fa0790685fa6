package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/repository"
)

var (
	// ErrFileRequired indicates no file accompanied the upload request.
	ErrFileRequired = errors.New("document file is required")
	// ErrFileTooLarge indicates the file exceeded the configured limit.
	ErrFileTooLarge = errors.New("file exceeds maximum allowed size")
	// ErrFileTypeNotAllowed indicates the detected MIME type is not permitted.
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
)

// FileUploader abstracts uploading binary data and returning a URL.
type FileUploader interface {
	Upload(ctx context.Context, name string, reader io.Reader) (string, error)
}

// Document uploads accept office formats and PDFs; type detection reads the
// file content, never the client-declared header.
var allowedDocumentTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-powerpoint",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"image/png",
	"image/jpeg",
}

// DocumentService manages the shared resource library. Staff upload and
// remove documents; everyone reads public ones, staff also read private ones.
type DocumentService interface {
	List(ctx context.Context, actor Actor, docType string) ([]dto.DocumentResponse, error)
	Download(ctx context.Context, actor Actor, id uint) (dto.DocumentResponse, error)
	Upload(ctx context.Context, actor Actor, payload dto.DocumentUploadRequest, file *multipart.FileHeader) (dto.DocumentResponse, error)
	Delete(ctx context.Context, actor Actor, id uint) error
}

type documentService struct {
	documents repository.DocumentRepository
	uploader  FileUploader
	authz     *Authorizer
	validator *validator.Validate
	logger    zerolog.Logger
	maxSize   int64
}

// NewDocumentService constructs a DocumentService instance.
func NewDocumentService(documentRepo repository.DocumentRepository, uploader FileUploader, authz *Authorizer, validate *validator.Validate, maxSizeMB int, logger zerolog.Logger) DocumentService {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	return &documentService{
		documents: documentRepo,
		uploader:  uploader,
		authz:     authz,
		validator: validate,
		logger:    logger.With().Str("component", "document_service").Logger(),
		maxSize:   int64(maxSizeMB) * 1024 * 1024,
	}
}

func (s *documentService) List(ctx context.Context, actor Actor, docType string) ([]dto.DocumentResponse, error) {
	if docType != "" && !models.ValidDocumentType(docType) {
		return nil, ErrInvalidStatus
	}

	documents, err := s.documents.List(ctx, repository.DocumentFilter{
		Type:       docType,
		PublicOnly: !s.authz.IsStaff(actor),
	})
	if err != nil {
		return nil, err
	}
	return dto.NewDocumentResponseSlice(documents), nil
}

// Download returns the document metadata and counts the download. Private
// documents are staff-only.
func (s *documentService) Download(ctx context.Context, actor Actor, id uint) (dto.DocumentResponse, error) {
	document, err := s.documents.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DocumentResponse{}, ErrDocumentNotFound
		}
		return dto.DocumentResponse{}, err
	}

	if !document.IsPublic && !s.authz.IsStaff(actor) {
		return dto.DocumentResponse{}, ErrPermissionDenied
	}

	if err := s.documents.IncrementDownloads(ctx, id); err != nil {
		s.logger.Warn().Err(err).Uint("document_id", id).Msg("failed to count download")
	} else {
		document.DownloadCount++
	}
	return dto.NewDocumentResponse(document), nil
}

func (s *documentService) Upload(ctx context.Context, actor Actor, payload dto.DocumentUploadRequest, file *multipart.FileHeader) (dto.DocumentResponse, error) {
	if !s.authz.IsStaff(actor) {
		return dto.DocumentResponse{}, ErrPermissionDenied
	}
	if err := s.validator.Struct(payload); err != nil {
		return dto.DocumentResponse{}, err
	}
	if file == nil {
		return dto.DocumentResponse{}, ErrFileRequired
	}
	if file.Size > s.maxSize {
		return dto.DocumentResponse{}, ErrFileTooLarge
	}

	source, err := file.Open()
	if err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer source.Close()

	detected, err := mimetype.DetectReader(source)
	if err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("failed to detect file type: %w", err)
	}
	if !mimeAllowed(detected.String()) {
		return dto.DocumentResponse{}, ErrFileTypeNotAllowed
	}
	if _, err := source.Seek(0, io.SeekStart); err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("failed to rewind upload: %w", err)
	}

	url, err := s.uploader.Upload(ctx, file.Filename, source)
	if err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("failed to upload document: %w", err)
	}

	uploaderID := actor.UserID
	document := models.Document{
		Title:       payload.Title,
		Description: payload.Description,
		Type:        payload.Type,
		FileURL:     url,
		FileSize:    file.Size,
		MimeType:    detected.String(),
		UploadedBy:  &uploaderID,
		IsPublic:    payload.IsPublic,
	}
	if err := s.documents.Create(ctx, &document); err != nil {
		return dto.DocumentResponse{}, err
	}

	s.logger.Info().
		Uint("document_id", document.ID).
		Str("mime_type", document.MimeType).
		Msg("document uploaded")

	return dto.NewDocumentResponse(document), nil
}

func (s *documentService) Delete(ctx context.Context, actor Actor, id uint) error {
	if !s.authz.CanAct(actor, ActionDelete, ResourceDocument, 0) {
		return ErrPermissionDenied
	}

	if _, err := s.documents.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDocumentNotFound
		}
		return err
	}
	return s.documents.Delete(ctx, id)
}

func mimeAllowed(detected string) bool {
	base := strings.Split(detected, ";")[0]
	for _, allowed := range allowedDocumentTypes {
		if base == allowed {
			return true
		}
	}
	return false
}
