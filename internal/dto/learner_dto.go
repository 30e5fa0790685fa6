package dto

import (
	"time"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
)

// LearnerListFilter narrows learner listings from query parameters.
type LearnerListFilter struct {
	InsertionStatus string `validate:"omitempty,oneof=en_recherche en_emploi en_stage en_formation autre"`
	Promotion       string `validate:"omitempty,max=100"`
	Search          string `validate:"omitempty,max=200"`
}

// LearnerResponse is the projection of a learner profile.
type LearnerResponse struct {
	ID              uint                    `json:"id"`
	UserID          uint                    `json:"user_id"`
	FirstName       string                  `json:"first_name"`
	LastName        string                  `json:"last_name"`
	Email           string                  `json:"email"`
	Phone           string                  `json:"phone"`
	Promotion       string                  `json:"promotion"`
	Training        string                  `json:"formation"`
	StartDate       *time.Time              `json:"date_debut"`
	EndDate         *time.Time              `json:"date_fin"`
	InsertionStatus string                  `json:"statut_insertion"`
	Skills          string                  `json:"competences"`
	Experience      string                  `json:"experience"`
	Address         string                  `json:"adresse"`
	City            string                  `json:"ville"`
	Region          string                  `json:"region"`
	BirthDate       *time.Time              `json:"date_naissance"`
	Gender          string                  `json:"genre"`
	EducationLevel  string                  `json:"niveau_etude"`
	CreatedAt       time.Time               `json:"created_at"`
	History         []TrackingEntryResponse `json:"insertion_history,omitempty"`
}

// LearnerUpdateRequest is a typed partial update for a learner profile.
// InsertionStatus goes through the lifecycle transition when it changes;
// every other field is an ordinary apply-if-present edit.
type LearnerUpdateRequest struct {
	Promotion       *string    `json:"promotion" validate:"omitempty,max=100"`
	Training        *string    `json:"formation" validate:"omitempty,max=200"`
	StartDate       *time.Time `json:"date_debut"`
	EndDate         *time.Time `json:"date_fin"`
	Skills          *string    `json:"competences"`
	Experience      *string    `json:"experience"`
	Address         *string    `json:"adresse"`
	City            *string    `json:"ville" validate:"omitempty,max=100"`
	Region          *string    `json:"region" validate:"omitempty,max=100"`
	BirthDate       *time.Time `json:"date_naissance"`
	Gender          *string    `json:"genre" validate:"omitempty,oneof=homme femme autre"`
	EducationLevel  *string    `json:"niveau_etude" validate:"omitempty,max=100"`
	InsertionStatus *string    `json:"statut_insertion" validate:"omitempty,oneof=en_recherche en_emploi en_stage en_formation autre"`
}

// NewLearnerResponse maps a learner model to its response payload.
func NewLearnerResponse(learner models.Learner) LearnerResponse {
	return LearnerResponse{
		ID:              learner.ID,
		UserID:          learner.UserID,
		FirstName:       learner.User.FirstName,
		LastName:        learner.User.LastName,
		Email:           learner.User.Email,
		Phone:           learner.User.Phone,
		Promotion:       learner.Promotion,
		Training:        learner.Training,
		StartDate:       learner.StartDate,
		EndDate:         learner.EndDate,
		InsertionStatus: learner.InsertionStatus,
		Skills:          learner.Skills,
		Experience:      learner.Experience,
		Address:         learner.Address,
		City:            learner.City,
		Region:          learner.Region,
		BirthDate:       learner.BirthDate,
		Gender:          learner.Gender,
		EducationLevel:  learner.EducationLevel,
		CreatedAt:       learner.CreatedAt,
	}
}

// NewLearnerResponseSlice maps a slice of learner models.
func NewLearnerResponseSlice(learners []models.Learner) []LearnerResponse {
	responses := make([]LearnerResponse, 0, len(learners))
	for _, learner := range learners {
		responses = append(responses, NewLearnerResponse(learner))
	}
	return responses
}
