package dto

import (
	"time"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
)

// ApplicationFilter narrows application listings.
type ApplicationFilter struct {
	JobOfferID *uint
	LearnerID  *uint
	Status     string `validate:"omitempty,oneof=en_attente vue entretien acceptee refusee"`
}

// ApplicationCreateRequest submits a learner's application to an offer.
type ApplicationCreateRequest struct {
	MotivationMessage string `json:"message_motivation" validate:"omitempty,max=5000"`
}

// ApplicationStatusUpdateRequest moves an application through its review
// lifecycle.
type ApplicationStatusUpdateRequest struct {
	Status   string `json:"statut" validate:"required,oneof=en_attente vue entretien acceptee refusee"`
	Comments string `json:"commentaires" validate:"omitempty,max=5000"`
}

// ApplicationResponse is the projection of an application.
type ApplicationResponse struct {
	ID                uint       `json:"id"`
	JobOfferID        uint       `json:"job_offer_id"`
	JobOfferTitle     string     `json:"titre,omitempty"`
	LearnerID         uint       `json:"learner_id"`
	LearnerFirstName  string     `json:"first_name,omitempty"`
	LearnerLastName   string     `json:"last_name,omitempty"`
	Status            string     `json:"statut"`
	MotivationMessage string     `json:"message_motivation"`
	AppliedAt         time.Time  `json:"date_candidature"`
	RespondedAt       *time.Time `json:"date_reponse"`
	Comments          string     `json:"commentaires"`
}

// NewApplicationResponse maps an application model to its response payload.
func NewApplicationResponse(application models.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:                application.ID,
		JobOfferID:        application.JobOfferID,
		JobOfferTitle:     application.JobOffer.Title,
		LearnerID:         application.LearnerID,
		LearnerFirstName:  application.Learner.User.FirstName,
		LearnerLastName:   application.Learner.User.LastName,
		Status:            application.Status,
		MotivationMessage: application.MotivationMessage,
		AppliedAt:         application.AppliedAt,
		RespondedAt:       application.RespondedAt,
		Comments:          application.Comments,
	}
}

// NewApplicationResponseSlice maps a slice of application models.
func NewApplicationResponseSlice(applications []models.Application) []ApplicationResponse {
	responses := make([]ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		responses = append(responses, NewApplicationResponse(application))
	}
	return responses
}
