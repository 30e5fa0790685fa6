package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
)

// ApplicationFilter narrows application listings.
type ApplicationFilter struct {
	JobOfferID *uint
	LearnerID  *uint
	Status     string
}

// ApplicationRepository provides access to job applications. Create relies on
// the composite unique index on (job_offer_id, learner_id); a concurrent
// duplicate insert surfaces as gorm.ErrDuplicatedKey.
type ApplicationRepository interface {
	List(ctx context.Context, filter ApplicationFilter) ([]models.Application, error)
	GetByID(ctx context.Context, id uint) (models.Application, error)
	GetByOfferAndLearner(ctx context.Context, offerID, learnerID uint) (models.Application, error)
	Create(ctx context.Context, application *models.Application) error
	Update(ctx context.Context, application *models.Application) error
	WithTx(tx *gorm.DB) ApplicationRepository
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository constructs an application repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) WithTx(tx *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: tx}
}

func (r *applicationRepository) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Application{}).
		Preload("JobOffer").
		Preload("JobOffer.Company").
		Preload("Learner").
		Preload("Learner.User")
}

func (r *applicationRepository) List(ctx context.Context, filter ApplicationFilter) ([]models.Application, error) {
	query := r.baseQuery(ctx)

	if filter.JobOfferID != nil {
		query = query.Where("job_offer_id = ?", *filter.JobOfferID)
	}

	if filter.LearnerID != nil {
		query = query.Where("learner_id = ?", *filter.LearnerID)
	}

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var applications []models.Application
	if err := query.Order("applied_at DESC").Find(&applications).Error; err != nil {
		return nil, err
	}

	return applications, nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id uint) (models.Application, error) {
	var application models.Application
	if err := r.baseQuery(ctx).First(&application, id).Error; err != nil {
		return models.Application{}, err
	}

	return application, nil
}

func (r *applicationRepository) GetByOfferAndLearner(ctx context.Context, offerID, learnerID uint) (models.Application, error) {
	var application models.Application
	if err := r.db.WithContext(ctx).
		Where("job_offer_id = ?", offerID).
		Where("learner_id = ?", learnerID).
		First(&application).Error; err != nil {
		return models.Application{}, err
	}

	return application, nil
}

func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) Update(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Save(application).Error
}
