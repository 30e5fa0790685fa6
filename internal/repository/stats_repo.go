package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
)

// StatusCount is a status-to-count aggregate row.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// RoleCount aggregates accounts per role, split by activity flag.
type RoleCount struct {
	Role        string `json:"role"`
	Count       int64  `json:"count"`
	ActiveCount int64  `json:"active_count"`
}

// MonthlyInsertion aggregates positive insertion outcomes per month.
type MonthlyInsertion struct {
	Month     string `json:"month"`
	NewStatus string `json:"nouveau_statut"`
	Count     int64  `json:"count"`
}

// StatsRepository answers dashboard aggregation queries.
type StatsRepository interface {
	UsersByRole(ctx context.Context) ([]RoleCount, error)
	InsertionDistribution(ctx context.Context) ([]StatusCount, error)
	JobOffersByStatus(ctx context.Context) ([]StatusCount, error)
	ApplicationsByStatus(ctx context.Context) ([]StatusCount, error)
	EventsByStatus(ctx context.Context) ([]StatusCount, error)
	MonthlyInsertions(ctx context.Context, since time.Time) ([]MonthlyInsertion, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository constructs a stats repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) UsersByRole(ctx context.Context) ([]RoleCount, error) {
	var rows []RoleCount
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("role, COUNT(*) AS count, SUM(CASE WHEN is_active THEN 1 ELSE 0 END) AS active_count").
		Group("role").
		Scan(&rows).Error
	return rows, err
}

func (r *statsRepository) InsertionDistribution(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).
		Model(&models.Learner{}).
		Select("learners.insertion_status AS status, COUNT(*) AS count").
		Joins("JOIN users ON users.id = learners.user_id").
		Where("users.is_active = ?", true).
		Group("learners.insertion_status").
		Scan(&rows).Error
	return rows, err
}

func (r *statsRepository) JobOffersByStatus(ctx context.Context) ([]StatusCount, error) {
	return r.countByStatus(ctx, &models.JobOffer{})
}

func (r *statsRepository) ApplicationsByStatus(ctx context.Context) ([]StatusCount, error) {
	return r.countByStatus(ctx, &models.Application{})
}

func (r *statsRepository) EventsByStatus(ctx context.Context) ([]StatusCount, error) {
	return r.countByStatus(ctx, &models.Event{})
}

func (r *statsRepository) countByStatus(ctx context.Context, model interface{}) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).
		Model(model).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *statsRepository) MonthlyInsertions(ctx context.Context, since time.Time) ([]MonthlyInsertion, error) {
	monthExpr := "to_char(created_at, 'YYYY-MM')"
	if r.db.Dialector.Name() == "sqlite" {
		monthExpr = "strftime('%Y-%m', created_at)"
	}

	var rows []MonthlyInsertion
	err := r.db.WithContext(ctx).
		Model(&models.InsertionTracking{}).
		Select(monthExpr + " AS month, new_status, COUNT(*) AS count").
		Where("new_status IN ?", []string{models.InsertionStatusEmployed, models.InsertionStatusInterning}).
		Where("created_at >= ?", since).
		Group("month").Group("new_status").
		Order("month").
		Scan(&rows).Error
	return rows, err
}
