package dto

import (
	"time"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
)

// CompanyListFilter narrows the partner directory from query parameters.
type CompanyListFilter struct {
	PartnershipStatus string `validate:"omitempty,oneof=actif inactif en_discussion"`
	Sector            string `validate:"omitempty,max=100"`
	Region            string `validate:"omitempty,max=100"`
}

// CompanyResponse is the projection of a partner company profile.
type CompanyResponse struct {
	ID                uint       `json:"id"`
	UserID            uint       `json:"user_id"`
	Name              string     `json:"nom_entreprise"`
	Sector            string     `json:"secteur_activite"`
	Size              string     `json:"taille_entreprise"`
	Address           string     `json:"adresse"`
	City              string     `json:"ville"`
	Region            string     `json:"region"`
	Website           string     `json:"site_web"`
	Description       string     `json:"description"`
	ContactName       string     `json:"contact_rh_nom"`
	ContactEmail      string     `json:"contact_rh_email"`
	ContactPhone      string     `json:"contact_rh_phone"`
	PartnerSince      *time.Time `json:"partenaire_depuis"`
	PartnershipStatus string     `json:"statut_partenariat"`
	CreatedAt         time.Time  `json:"created_at"`
}

// CompanyUpdateRequest is a typed partial update for a company profile.
type CompanyUpdateRequest struct {
	Name              *string    `json:"nom_entreprise" validate:"omitempty,min=2,max=200"`
	Sector            *string    `json:"secteur_activite" validate:"omitempty,max=100"`
	Size              *string    `json:"taille_entreprise" validate:"omitempty,oneof=tpe pme eti ge"`
	Address           *string    `json:"adresse"`
	City              *string    `json:"ville" validate:"omitempty,max=100"`
	Region            *string    `json:"region" validate:"omitempty,max=100"`
	Website           *string    `json:"site_web" validate:"omitempty,max=255"`
	Description       *string    `json:"description"`
	ContactName       *string    `json:"contact_rh_nom" validate:"omitempty,max=100"`
	ContactEmail      *string    `json:"contact_rh_email" validate:"omitempty,email"`
	ContactPhone      *string    `json:"contact_rh_phone" validate:"omitempty,max=20"`
	PartnerSince      *time.Time `json:"partenaire_depuis"`
	PartnershipStatus *string    `json:"statut_partenariat" validate:"omitempty,oneof=actif inactif en_discussion"`
}

// NewCompanyResponse maps a company model to its response payload.
func NewCompanyResponse(company models.Company) CompanyResponse {
	return CompanyResponse{
		ID:                company.ID,
		UserID:            company.UserID,
		Name:              company.Name,
		Sector:            company.Sector,
		Size:              company.Size,
		Address:           company.Address,
		City:              company.City,
		Region:            company.Region,
		Website:           company.Website,
		Description:       company.Description,
		ContactName:       company.ContactName,
		ContactEmail:      company.ContactEmail,
		ContactPhone:      company.ContactPhone,
		PartnerSince:      company.PartnerSince,
		PartnershipStatus: company.PartnershipStatus,
		CreatedAt:         company.CreatedAt,
	}
}

// NewCompanyResponseSlice maps a slice of company models.
func NewCompanyResponseSlice(companies []models.Company) []CompanyResponse {
	responses := make([]CompanyResponse, 0, len(companies))
	for _, company := range companies {
		responses = append(responses, NewCompanyResponse(company))
	}
	return responses
}
