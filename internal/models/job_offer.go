package models

import "time"

// Job offer statuses.
const (
	JobOfferStatusActive = "active"
	JobOfferStatusClosed = "fermee"
	JobOfferStatusFilled = "pourvue"
)

// Contract kinds shared by job offers and insertion tracking entries.
const (
	ContractPermanent      = "cdi"
	ContractFixedTerm      = "cdd"
	ContractInternship     = "stage"
	ContractFreelance      = "freelance"
	ContractApprenticeship = "apprentissage"
)

// JobOffer is published by a partner company. Applications hang off it with a
// one-per-learner uniqueness guarantee enforced at the storage layer.
type JobOffer struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	CompanyID          uint       `gorm:"not null;index" json:"company_id"`
	Title              string     `gorm:"size:200;not null" json:"titre"`
	ContractType       string     `gorm:"size:32;not null" json:"type_contrat"`
	Description        string     `gorm:"type:text;not null" json:"description"`
	RequiredSkills     string     `gorm:"type:text" json:"competences_requises"`
	RequiredExperience string     `gorm:"size:100" json:"experience_requise"`
	SalaryMin          *float64   `json:"salaire_min"`
	SalaryMax          *float64   `json:"salaire_max"`
	City               string     `gorm:"size:100" json:"ville"`
	Region             string     `gorm:"size:100" json:"region"`
	PublishedAt        time.Time  `json:"date_publication"`
	ExpiresAt          *time.Time `json:"date_expiration"`
	Status             string     `gorm:"size:32;not null;default:active" json:"statut"`
	Positions          int        `gorm:"not null;default:1" json:"nb_postes"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	Company            Company    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"company"`
}

// ValidJobOfferStatus reports whether the value belongs to the offer enum.
func ValidJobOfferStatus(status string) bool {
	switch status {
	case JobOfferStatusActive, JobOfferStatusClosed, JobOfferStatusFilled:
		return true
	}
	return false
}

// ValidContractType reports whether the value belongs to the contract enum.
func ValidContractType(contract string) bool {
	switch contract {
	case ContractPermanent, ContractFixedTerm, ContractInternship,
		ContractFreelance, ContractApprenticeship:
		return true
	}
	return false
}

// IsOpen reports whether the offer still accepts applications.
func (o JobOffer) IsOpen() bool {
	return o.Status == JobOfferStatusActive
}
