package dto

import (
	"time"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
)

// TrackingCreateRequest appends an insertion ledger entry with enrichment.
type TrackingCreateRequest struct {
	NewStatus    string     `json:"nouveau_statut" validate:"required,oneof=en_recherche en_emploi en_stage en_formation autre"`
	CompanyName  string     `json:"entreprise" validate:"omitempty,max=200"`
	Position     string     `json:"poste" validate:"omitempty,max=200"`
	ContractType string     `json:"type_contrat" validate:"omitempty,oneof=cdi cdd stage freelance apprentissage"`
	Salary       *float64   `json:"salaire" validate:"omitempty,gte=0"`
	StartDate    *time.Time `json:"date_debut"`
	EndDate      *time.Time `json:"date_fin"`
	Comments     string     `json:"commentaires"`
}

// TrackingEntryResponse is one immutable ledger row.
type TrackingEntryResponse struct {
	ID             uint       `json:"id"`
	LearnerID      uint       `json:"learner_id"`
	PreviousStatus string     `json:"statut_precedent"`
	NewStatus      string     `json:"nouveau_statut"`
	CompanyName    string     `json:"entreprise,omitempty"`
	Position       string     `json:"poste,omitempty"`
	ContractType   string     `json:"type_contrat,omitempty"`
	Salary         *float64   `json:"salaire,omitempty"`
	StartDate      *time.Time `json:"date_debut,omitempty"`
	EndDate        *time.Time `json:"date_fin,omitempty"`
	Comments       string     `json:"commentaires,omitempty"`
	CreatedBy      *uint      `json:"created_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// NewTrackingEntryResponse maps a ledger row to its response payload.
func NewTrackingEntryResponse(entry models.InsertionTracking) TrackingEntryResponse {
	return TrackingEntryResponse{
		ID:             entry.ID,
		LearnerID:      entry.LearnerID,
		PreviousStatus: entry.PreviousStatus,
		NewStatus:      entry.NewStatus,
		CompanyName:    entry.CompanyName,
		Position:       entry.Position,
		ContractType:   entry.ContractType,
		Salary:         entry.Salary,
		StartDate:      entry.StartDate,
		EndDate:        entry.EndDate,
		Comments:       entry.Comments,
		CreatedBy:      entry.CreatedBy,
		CreatedAt:      entry.CreatedAt,
	}
}

// NewTrackingEntryResponseSlice maps a slice of ledger rows.
func NewTrackingEntryResponseSlice(entries []models.InsertionTracking) []TrackingEntryResponse {
	responses := make([]TrackingEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, NewTrackingEntryResponse(entry))
	}
	return responses
}
