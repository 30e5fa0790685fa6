package models

import "time"

// Document kinds.
const (
	DocumentTypeCVTemplate   = "cv_template"
	DocumentTypeGuide        = "guide"
	DocumentTypePresentation = "presentation"
	DocumentTypeReport       = "rapport"
	DocumentTypeOther        = "autre"
)

// Document is a shared resource uploaded by staff. Non-staff readers only see
// public documents.
type Document struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:200;not null" json:"titre"`
	Description   string    `gorm:"type:text" json:"description"`
	Type          string    `gorm:"size:32;not null" json:"type_document"`
	FileURL       string    `gorm:"size:512;not null" json:"file_url"`
	FileSize      int64     `json:"file_size"`
	MimeType      string    `gorm:"size:100" json:"mime_type"`
	UploadedBy    *uint     `json:"uploaded_by"`
	IsPublic      bool      `gorm:"not null;default:true" json:"is_public"`
	DownloadCount int       `gorm:"not null;default:0" json:"download_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ValidDocumentType reports whether the value belongs to the document enum.
func ValidDocumentType(kind string) bool {
	switch kind {
	case DocumentTypeCVTemplate, DocumentTypeGuide, DocumentTypePresentation,
		DocumentTypeReport, DocumentTypeOther:
		return true
	}
	return false
}
