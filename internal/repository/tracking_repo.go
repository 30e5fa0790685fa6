package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
)

// TrackingRepository persists the insertion ledger. Append is the only write
// operation: rows are immutable once created.
type TrackingRepository interface {
	Append(ctx context.Context, entry *models.InsertionTracking) error
	History(ctx context.Context, learnerID uint) ([]models.InsertionTracking, error)
	Latest(ctx context.Context, learnerID uint) (*models.InsertionTracking, error)
	WithTx(tx *gorm.DB) TrackingRepository
}

type trackingRepository struct {
	db *gorm.DB
}

// NewTrackingRepository constructs a tracking repository.
func NewTrackingRepository(db *gorm.DB) TrackingRepository {
	return &trackingRepository{db: db}
}

func (r *trackingRepository) WithTx(tx *gorm.DB) TrackingRepository {
	return &trackingRepository{db: tx}
}

func (r *trackingRepository) Append(ctx context.Context, entry *models.InsertionTracking) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *trackingRepository) History(ctx context.Context, learnerID uint) ([]models.InsertionTracking, error) {
	var entries []models.InsertionTracking
	err := r.db.WithContext(ctx).
		Where("learner_id = ?", learnerID).
		Order("created_at DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *trackingRepository) Latest(ctx context.Context, learnerID uint) (*models.InsertionTracking, error) {
	var entry models.InsertionTracking
	err := r.db.WithContext(ctx).
		Where("learner_id = ?", learnerID).
		Order("created_at DESC, id DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entry, nil
}
