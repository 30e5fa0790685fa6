package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
)

// DocumentFilter narrows document listings.
type DocumentFilter struct {
	Type       string
	PublicOnly bool
}

// DocumentRepository provides access to shared documents.
type DocumentRepository interface {
	List(ctx context.Context, filter DocumentFilter) ([]models.Document, error)
	GetByID(ctx context.Context, id uint) (models.Document, error)
	Create(ctx context.Context, document *models.Document) error
	Delete(ctx context.Context, id uint) error
	IncrementDownloads(ctx context.Context, id uint) error
}

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository constructs a document repository.
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) List(ctx context.Context, filter DocumentFilter) ([]models.Document, error) {
	query := r.db.WithContext(ctx).Model(&models.Document{})

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	if filter.PublicOnly {
		query = query.Where("is_public = ?", true)
	}

	var documents []models.Document
	if err := query.Order("created_at DESC").Find(&documents).Error; err != nil {
		return nil, err
	}

	return documents, nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uint) (models.Document, error) {
	var document models.Document
	if err := r.db.WithContext(ctx).First(&document, id).Error; err != nil {
		return models.Document{}, err
	}

	return document, nil
}

func (r *documentRepository) Create(ctx context.Context, document *models.Document) error {
	return r.db.WithContext(ctx).Create(document).Error
}

func (r *documentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Document{}, id).Error
}

func (r *documentRepository) IncrementDownloads(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Document{}).
		Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + 1")).Error
}
