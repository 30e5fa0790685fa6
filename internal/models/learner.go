package models

import "time"

// Insertion statuses a learner can be in. There is no terminal state: a
// learner can go back to en_recherche after en_emploi (job loss).
const (
	InsertionStatusSearching  = "en_recherche"
	InsertionStatusEmployed   = "en_emploi"
	InsertionStatusInterning  = "en_stage"
	InsertionStatusInTraining = "en_formation"
	InsertionStatusOther      = "autre"
)

// Learner is the profile owned by an account with the apprenant role.
// InsertionStatus is the current projection of the insertion ledger: it must
// always equal the NewStatus of the most recent InsertionTracking row.
type Learner struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	Promotion       string     `gorm:"size:100" json:"promotion"`
	Training        string     `gorm:"size:200" json:"formation"`
	StartDate       *time.Time `json:"date_debut"`
	EndDate         *time.Time `json:"date_fin"`
	InsertionStatus string     `gorm:"size:32;not null;default:en_recherche" json:"statut_insertion"`
	CVPath          string     `gorm:"size:500" json:"cv_path"`
	Skills          string     `gorm:"type:text" json:"competences"`
	Experience      string     `gorm:"type:text" json:"experience"`
	Address         string     `gorm:"type:text" json:"adresse"`
	City            string     `gorm:"size:100" json:"ville"`
	Region          string     `gorm:"size:100" json:"region"`
	BirthDate       *time.Time `json:"date_naissance"`
	Gender          string     `gorm:"size:16" json:"genre"`
	EducationLevel  string     `gorm:"size:100" json:"niveau_etude"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	User            User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user"`
}

// ValidInsertionStatus reports whether the value belongs to the insertion enum.
func ValidInsertionStatus(status string) bool {
	switch status {
	case InsertionStatusSearching, InsertionStatusEmployed, InsertionStatusInterning,
		InsertionStatusInTraining, InsertionStatusOther:
		return true
	}
	return false
}
