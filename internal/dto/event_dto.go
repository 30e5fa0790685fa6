package dto

import (
	"time"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
)

// EventFilter narrows event listings.
type EventFilter struct {
	Status   string `validate:"omitempty,oneof=planifie en_cours termine annule"`
	Type     string `validate:"omitempty,oneof=atelier visite_entreprise job_dating conference formation autre"`
	Upcoming bool
}

// EventCreateRequest schedules a new event (staff only).
type EventCreateRequest struct {
	Title       string     `json:"titre" validate:"required,min=5,max=200"`
	Description string     `json:"description"`
	Type        string     `json:"type_evenement" validate:"required,oneof=atelier visite_entreprise job_dating conference formation autre"`
	StartDate   time.Time  `json:"date_debut" validate:"required"`
	EndDate     *time.Time `json:"date_fin"`
	Location    string     `json:"lieu" validate:"omitempty,max=255"`
	Capacity    *int       `json:"capacite_max" validate:"omitempty,gte=1"`
	Facilitator string     `json:"animateur" validate:"omitempty,max=100"`
}

// EventUpdateRequest is a typed partial update for an event.
type EventUpdateRequest struct {
	Title       *string `json:"titre" validate:"omitempty,min=5,max=200"`
	Description *string `json:"description"`
	Status      *string `json:"statut" validate:"omitempty,oneof=planifie en_cours termine annule"`
	Location    *string `json:"lieu" validate:"omitempty,max=255"`
	Facilitator *string `json:"animateur" validate:"omitempty,max=100"`
}

// RegistrationRequest registers the acting learner for an event.
type RegistrationRequest struct {
	Comments string `json:"commentaires" validate:"omitempty,max=5000"`
}

// ParticipationStatusUpdateRequest moves a registration through its lifecycle
// (staff only).
type ParticipationStatusUpdateRequest struct {
	Status   string `json:"statut_participation" validate:"required,oneof=inscrit present absent excuse"`
	Comments string `json:"commentaires" validate:"omitempty,max=5000"`
}

// EventResponse is the projection of an event.
type EventResponse struct {
	ID           uint                  `json:"id"`
	Title        string                `json:"titre"`
	Description  string                `json:"description"`
	Type         string                `json:"type_evenement"`
	StartDate    time.Time             `json:"date_debut"`
	EndDate      *time.Time            `json:"date_fin"`
	Location     string                `json:"lieu"`
	Capacity     *int                  `json:"capacite_max"`
	Facilitator  string                `json:"animateur"`
	Status       string                `json:"statut"`
	CreatedBy    *uint                 `json:"created_by"`
	Occupied     int64                 `json:"participants_count"`
	Participants []ParticipantResponse `json:"participants,omitempty"`
}

// ParticipantResponse is the projection of an event registration.
type ParticipantResponse struct {
	ID                  uint      `json:"id"`
	EventID             uint      `json:"event_id"`
	LearnerID           uint      `json:"learner_id"`
	FirstName           string    `json:"first_name,omitempty"`
	LastName            string    `json:"last_name,omitempty"`
	ParticipationStatus string    `json:"statut_participation"`
	RegisteredAt        time.Time `json:"date_inscription"`
	Comments            string    `json:"commentaires"`
}

// NewEventResponse maps an event model to its response payload.
func NewEventResponse(event models.Event) EventResponse {
	return EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Type:        event.Type,
		StartDate:   event.StartDate,
		EndDate:     event.EndDate,
		Location:    event.Location,
		Capacity:    event.Capacity,
		Facilitator: event.Facilitator,
		Status:      event.Status,
		CreatedBy:   event.CreatedBy,
	}
}

// NewParticipantResponse maps a registration model to its response payload.
func NewParticipantResponse(participant models.EventParticipant) ParticipantResponse {
	return ParticipantResponse{
		ID:                  participant.ID,
		EventID:             participant.EventID,
		LearnerID:           participant.LearnerID,
		FirstName:           participant.Learner.User.FirstName,
		LastName:            participant.Learner.User.LastName,
		ParticipationStatus: participant.ParticipationStatus,
		RegisteredAt:        participant.RegisteredAt,
		Comments:            participant.Comments,
	}
}

// NewParticipantResponseSlice maps a slice of registration models.
func NewParticipantResponseSlice(participants []models.EventParticipant) []ParticipantResponse {
	responses := make([]ParticipantResponse, 0, len(participants))
	for _, participant := range participants {
		responses = append(responses, NewParticipantResponse(participant))
	}
	return responses
}
