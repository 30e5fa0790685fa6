package models

import "time"

// Partnership statuses for partner companies.
const (
	PartnershipStatusActive       = "actif"
	PartnershipStatusInactive     = "inactif"
	PartnershipStatusInDiscussion = "en_discussion"
)

// Company sizes, French SME taxonomy.
const (
	CompanySizeMicro        = "tpe"
	CompanySizeSmall        = "pme"
	CompanySizeIntermediate = "eti"
	CompanySizeLarge        = "ge"
)

// Company is the profile owned by an account with the entreprise role.
type Company struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	UserID            uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	Name              string     `gorm:"size:200;not null" json:"nom_entreprise"`
	Sector            string     `gorm:"size:100" json:"secteur_activite"`
	Size              string     `gorm:"size:8;default:pme" json:"taille_entreprise"`
	Address           string     `gorm:"type:text" json:"adresse"`
	City              string     `gorm:"size:100" json:"ville"`
	Region            string     `gorm:"size:100" json:"region"`
	Website           string     `gorm:"size:255" json:"site_web"`
	Description       string     `gorm:"type:text" json:"description"`
	ContactName       string     `gorm:"size:100" json:"contact_rh_nom"`
	ContactEmail      string     `gorm:"size:255" json:"contact_rh_email"`
	ContactPhone      string     `gorm:"size:20" json:"contact_rh_phone"`
	PartnerSince      *time.Time `json:"partenaire_depuis"`
	PartnershipStatus string     `gorm:"size:32;not null;default:en_discussion" json:"statut_partenariat"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	User              User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user"`
}

// ValidPartnershipStatus reports whether the value belongs to the partnership enum.
func ValidPartnershipStatus(status string) bool {
	switch status {
	case PartnershipStatusActive, PartnershipStatusInactive, PartnershipStatusInDiscussion:
		return true
	}
	return false
}
