package dto

import (
	"time"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
)

// ActivityListRequest paginates and filters the administrative audit log.
type ActivityListRequest struct {
	Page       int    `validate:"omitempty,gte=1"`
	PageSize   int    `validate:"omitempty,gte=1,lte=100"`
	ActorID    *uint  `validate:"omitempty"`
	Action     string `validate:"omitempty,max=64"`
	EntityType string `validate:"omitempty,max=64"`
}

// ActivityResponse is one audit log entry.
type ActivityResponse struct {
	ID         uint                   `json:"id"`
	ActorID    uint                   `json:"actor_id"`
	ActorRole  string                 `json:"actor_role"`
	Action     string                 `json:"action"`
	EntityType string                 `json:"entity_type"`
	EntityID   *uint                  `json:"entity_id"`
	Metadata   map[string]interface{} `json:"metadata"`
	CreatedAt  time.Time              `json:"created_at"`
}

// ActivityListResponse pages audit log entries.
type ActivityListResponse struct {
	Entries  []ActivityResponse `json:"entries"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// NewActivityResponse maps an audit model to its response payload.
func NewActivityResponse(entry models.ActivityLog) ActivityResponse {
	return ActivityResponse{
		ID:         entry.ID,
		ActorID:    entry.ActorID,
		ActorRole:  entry.ActorRole,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Metadata:   entry.Metadata,
		CreatedAt:  entry.CreatedAt,
	}
}
