package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
)

// JobOfferFilter narrows offer listings.
type JobOfferFilter struct {
	Status       string
	ContractType string
	Region       string
	CompanyID    *uint
	Search       string
}

// JobOfferRepository provides access to job offers published by partner
// companies. Listings exclude offers whose owning account is deactivated.
type JobOfferRepository interface {
	List(ctx context.Context, filter JobOfferFilter) ([]models.JobOffer, error)
	GetByID(ctx context.Context, id uint) (models.JobOffer, error)
	Create(ctx context.Context, offer *models.JobOffer) error
	Update(ctx context.Context, offer *models.JobOffer) error
	WithTx(tx *gorm.DB) JobOfferRepository
}

type jobOfferRepository struct {
	db *gorm.DB
}

// NewJobOfferRepository constructs a job offer repository.
func NewJobOfferRepository(db *gorm.DB) JobOfferRepository {
	return &jobOfferRepository{db: db}
}

func (r *jobOfferRepository) WithTx(tx *gorm.DB) JobOfferRepository {
	return &jobOfferRepository{db: tx}
}

func (r *jobOfferRepository) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.JobOffer{}).
		Joins("JOIN companies ON companies.id = job_offers.company_id").
		Joins("JOIN users ON users.id = companies.user_id").
		Where("users.is_active = ?", true).
		Preload("Company")
}

func (r *jobOfferRepository) List(ctx context.Context, filter JobOfferFilter) ([]models.JobOffer, error) {
	query := r.baseQuery(ctx)

	if filter.Status != "" {
		query = query.Where("job_offers.status = ?", filter.Status)
	}

	if filter.ContractType != "" {
		query = query.Where("job_offers.contract_type = ?", filter.ContractType)
	}

	if filter.Region != "" {
		query = query.Where("job_offers.region = ?", filter.Region)
	}

	if filter.CompanyID != nil {
		query = query.Where("job_offers.company_id = ?", *filter.CompanyID)
	}

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("job_offers.title LIKE ? OR job_offers.description LIKE ? OR companies.name LIKE ?", like, like, like)
	}

	var offers []models.JobOffer
	if err := query.Order("job_offers.published_at DESC").Find(&offers).Error; err != nil {
		return nil, err
	}

	return offers, nil
}

func (r *jobOfferRepository) GetByID(ctx context.Context, id uint) (models.JobOffer, error) {
	var offer models.JobOffer
	if err := r.baseQuery(ctx).Where("job_offers.id = ?", id).First(&offer).Error; err != nil {
		return models.JobOffer{}, err
	}

	return offer, nil
}

func (r *jobOfferRepository) Create(ctx context.Context, offer *models.JobOffer) error {
	return r.db.WithContext(ctx).Create(offer).Error
}

func (r *jobOfferRepository) Update(ctx context.Context, offer *models.JobOffer) error {
	return r.db.WithContext(ctx).Save(offer).Error
}
