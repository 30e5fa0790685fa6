package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
)

// LearnerFilter narrows learner listings.
type LearnerFilter struct {
	InsertionStatus string
	Promotion       string
	Search          string
}

// LearnerRepository provides access to learner profiles. Read paths only
// return learners whose owning account is still active.
type LearnerRepository interface {
	List(ctx context.Context, filter LearnerFilter) ([]models.Learner, error)
	GetByID(ctx context.Context, id uint) (models.Learner, error)
	GetByUserID(ctx context.Context, userID uint) (models.Learner, error)
	Create(ctx context.Context, learner *models.Learner) error
	Update(ctx context.Context, learner *models.Learner) error
	WithTx(tx *gorm.DB) LearnerRepository
}

type learnerRepository struct {
	db *gorm.DB
}

// NewLearnerRepository constructs a learner repository.
func NewLearnerRepository(db *gorm.DB) LearnerRepository {
	return &learnerRepository{db: db}
}

func (r *learnerRepository) WithTx(tx *gorm.DB) LearnerRepository {
	return &learnerRepository{db: tx}
}

func (r *learnerRepository) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Learner{}).
		Joins("JOIN users ON users.id = learners.user_id").
		Where("users.is_active = ?", true).
		Preload("User")
}

func (r *learnerRepository) List(ctx context.Context, filter LearnerFilter) ([]models.Learner, error) {
	query := r.baseQuery(ctx)

	if filter.InsertionStatus != "" {
		query = query.Where("learners.insertion_status = ?", filter.InsertionStatus)
	}

	if filter.Promotion != "" {
		query = query.Where("learners.promotion = ?", filter.Promotion)
	}

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("users.first_name LIKE ? OR users.last_name LIKE ? OR users.email LIKE ?", like, like, like)
	}

	var learners []models.Learner
	if err := query.Order("learners.created_at DESC").Find(&learners).Error; err != nil {
		return nil, err
	}

	return learners, nil
}

func (r *learnerRepository) GetByID(ctx context.Context, id uint) (models.Learner, error) {
	var learner models.Learner
	if err := r.baseQuery(ctx).Where("learners.id = ?", id).First(&learner).Error; err != nil {
		return models.Learner{}, err
	}

	return learner, nil
}

func (r *learnerRepository) GetByUserID(ctx context.Context, userID uint) (models.Learner, error) {
	var learner models.Learner
	if err := r.baseQuery(ctx).Where("learners.user_id = ?", userID).First(&learner).Error; err != nil {
		return models.Learner{}, err
	}

	return learner, nil
}

func (r *learnerRepository) Create(ctx context.Context, learner *models.Learner) error {
	return r.db.WithContext(ctx).Create(learner).Error
}

func (r *learnerRepository) Update(ctx context.Context, learner *models.Learner) error {
	return r.db.WithContext(ctx).Save(learner).Error
}
