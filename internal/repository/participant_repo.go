package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
)

// ParticipantRepository provides access to event registrations. Create relies
// on the composite unique index on (event_id, learner_id). CountOccupied is
// the capacity source of truth: absent participants do not hold a seat.
type ParticipantRepository interface {
	ListForEvent(ctx context.Context, eventID uint) ([]models.EventParticipant, error)
	GetByID(ctx context.Context, id uint) (models.EventParticipant, error)
	GetByEventAndLearner(ctx context.Context, eventID, learnerID uint) (models.EventParticipant, error)
	CountOccupied(ctx context.Context, eventID uint) (int64, error)
	Create(ctx context.Context, participant *models.EventParticipant) error
	Update(ctx context.Context, participant *models.EventParticipant) error
	WithTx(tx *gorm.DB) ParticipantRepository
}

type participantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository constructs a participant repository.
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) WithTx(tx *gorm.DB) ParticipantRepository {
	return &participantRepository{db: tx}
}

func (r *participantRepository) ListForEvent(ctx context.Context, eventID uint) ([]models.EventParticipant, error) {
	var participants []models.EventParticipant
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Preload("Learner").
		Preload("Learner.User").
		Order("registered_at DESC").
		Find(&participants).Error
	if err != nil {
		return nil, err
	}

	return participants, nil
}

func (r *participantRepository) GetByID(ctx context.Context, id uint) (models.EventParticipant, error) {
	var participant models.EventParticipant
	if err := r.db.WithContext(ctx).Preload("Event").First(&participant, id).Error; err != nil {
		return models.EventParticipant{}, err
	}

	return participant, nil
}

func (r *participantRepository) GetByEventAndLearner(ctx context.Context, eventID, learnerID uint) (models.EventParticipant, error) {
	var participant models.EventParticipant
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Where("learner_id = ?", learnerID).
		First(&participant).Error; err != nil {
		return models.EventParticipant{}, err
	}

	return participant, nil
}

func (r *participantRepository) CountOccupied(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.EventParticipant{}).
		Where("event_id = ?", eventID).
		Where("participation_status <> ?", models.ParticipationStatusAbsent).
		Count(&count).Error
	return count, err
}

func (r *participantRepository) Create(ctx context.Context, participant *models.EventParticipant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *participantRepository) Update(ctx context.Context, participant *models.EventParticipant) error {
	return r.db.WithContext(ctx).Save(participant).Error
}
