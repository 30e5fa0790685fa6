package dto

import (
	"time"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
)

// JobOfferFilter narrows offer listings from query parameters.
type JobOfferFilter struct {
	Status       string `validate:"omitempty,oneof=active fermee pourvue"`
	ContractType string `validate:"omitempty,oneof=cdi cdd stage freelance apprentissage"`
	Region       string `validate:"omitempty,max=100"`
	Search       string `validate:"omitempty,max=200"`
}

// JobOfferCreateRequest publishes a new offer. CompanyID is required when the
// actor is staff creating on behalf of a company; company accounts publish
// under their own profile.
type JobOfferCreateRequest struct {
	CompanyID          *uint      `json:"company_id"`
	Title              string     `json:"titre" validate:"required,min=5,max=200"`
	ContractType       string     `json:"type_contrat" validate:"required,oneof=cdi cdd stage freelance apprentissage"`
	Description        string     `json:"description" validate:"required,min=50"`
	RequiredSkills     string     `json:"competences_requises"`
	RequiredExperience string     `json:"experience_requise" validate:"omitempty,max=100"`
	SalaryMin          *float64   `json:"salaire_min" validate:"omitempty,gte=0"`
	SalaryMax          *float64   `json:"salaire_max" validate:"omitempty,gte=0"`
	City               string     `json:"ville" validate:"omitempty,max=100"`
	Region             string     `json:"region" validate:"omitempty,max=100"`
	ExpiresAt          *time.Time `json:"date_expiration"`
	Positions          int        `json:"nb_postes" validate:"omitempty,gte=1"`
}

// JobOfferUpdateRequest is a typed partial update for an offer.
type JobOfferUpdateRequest struct {
	Title              *string    `json:"titre" validate:"omitempty,min=5,max=200"`
	Description        *string    `json:"description" validate:"omitempty,min=50"`
	RequiredSkills     *string    `json:"competences_requises"`
	RequiredExperience *string    `json:"experience_requise" validate:"omitempty,max=100"`
	SalaryMin          *float64   `json:"salaire_min" validate:"omitempty,gte=0"`
	SalaryMax          *float64   `json:"salaire_max" validate:"omitempty,gte=0"`
	City               *string    `json:"ville" validate:"omitempty,max=100"`
	Region             *string    `json:"region" validate:"omitempty,max=100"`
	ExpiresAt          *time.Time `json:"date_expiration"`
	Status             *string    `json:"statut" validate:"omitempty,oneof=active fermee pourvue"`
	Positions          *int       `json:"nb_postes" validate:"omitempty,gte=1"`
}

// JobOfferResponse is the projection of a job offer.
type JobOfferResponse struct {
	ID                 uint                  `json:"id"`
	CompanyID          uint                  `json:"company_id"`
	CompanyName        string                `json:"nom_entreprise"`
	Title              string                `json:"titre"`
	ContractType       string                `json:"type_contrat"`
	Description        string                `json:"description"`
	RequiredSkills     string                `json:"competences_requises"`
	RequiredExperience string                `json:"experience_requise"`
	SalaryMin          *float64              `json:"salaire_min"`
	SalaryMax          *float64              `json:"salaire_max"`
	City               string                `json:"ville"`
	Region             string                `json:"region"`
	PublishedAt        time.Time             `json:"date_publication"`
	ExpiresAt          *time.Time            `json:"date_expiration"`
	Status             string                `json:"statut"`
	Positions          int                   `json:"nb_postes"`
	Applications       []ApplicationResponse `json:"applications,omitempty"`
}

// NewJobOfferResponse maps an offer model to its response payload.
func NewJobOfferResponse(offer models.JobOffer) JobOfferResponse {
	return JobOfferResponse{
		ID:                 offer.ID,
		CompanyID:          offer.CompanyID,
		CompanyName:        offer.Company.Name,
		Title:              offer.Title,
		ContractType:       offer.ContractType,
		Description:        offer.Description,
		RequiredSkills:     offer.RequiredSkills,
		RequiredExperience: offer.RequiredExperience,
		SalaryMin:          offer.SalaryMin,
		SalaryMax:          offer.SalaryMax,
		City:               offer.City,
		Region:             offer.Region,
		PublishedAt:        offer.PublishedAt,
		ExpiresAt:          offer.ExpiresAt,
		Status:             offer.Status,
		Positions:          offer.Positions,
	}
}

// NewJobOfferResponseSlice maps a slice of offer models.
func NewJobOfferResponseSlice(offers []models.JobOffer) []JobOfferResponse {
	responses := make([]JobOfferResponse, 0, len(offers))
	for _, offer := range offers {
		responses = append(responses, NewJobOfferResponse(offer))
	}
	return responses
}
