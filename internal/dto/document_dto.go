package dto

import (
	"time"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
)

// DocumentUploadRequest describes the metadata accompanying an upload.
type DocumentUploadRequest struct {
	Title       string `json:"titre" validate:"required,min=2,max=200"`
	Description string `json:"description"`
	Type        string `json:"type_document" validate:"required,oneof=cv_template guide presentation rapport autre"`
	IsPublic    bool   `json:"is_public"`
}

// DocumentResponse is the projection of a shared document.
type DocumentResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"titre"`
	Description   string    `json:"description"`
	Type          string    `json:"type_document"`
	FileURL       string    `json:"file_url"`
	FileSize      int64     `json:"file_size"`
	MimeType      string    `json:"mime_type"`
	UploadedBy    *uint     `json:"uploaded_by"`
	IsPublic      bool      `json:"is_public"`
	DownloadCount int       `json:"download_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewDocumentResponse maps a document model to its response payload.
func NewDocumentResponse(document models.Document) DocumentResponse {
	return DocumentResponse{
		ID:            document.ID,
		Title:         document.Title,
		Description:   document.Description,
		Type:          document.Type,
		FileURL:       document.FileURL,
		FileSize:      document.FileSize,
		MimeType:      document.MimeType,
		UploadedBy:    document.UploadedBy,
		IsPublic:      document.IsPublic,
		DownloadCount: document.DownloadCount,
		CreatedAt:     document.CreatedAt,
	}
}

// NewDocumentResponseSlice maps a slice of document models.
func NewDocumentResponseSlice(documents []models.Document) []DocumentResponse {
	responses := make([]DocumentResponse, 0, len(documents))
	for _, document := range documents {
		responses = append(responses, NewDocumentResponse(document))
	}
	return responses
}
