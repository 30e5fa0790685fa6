package models

import "time"

// InsertionTracking is one row of the append-only insertion ledger. Rows are
// never updated or deleted: corrections are expressed as new entries. The
// newest row's NewStatus must equal the learner's current InsertionStatus.
type InsertionTracking struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	LearnerID      uint       `gorm:"not null;index" json:"learner_id"`
	PreviousStatus string     `gorm:"size:32" json:"statut_precedent"`
	NewStatus      string     `gorm:"size:32;not null" json:"nouveau_statut"`
	CompanyName    string     `gorm:"size:200" json:"entreprise"`
	Position       string     `gorm:"size:200" json:"poste"`
	ContractType   string     `gorm:"size:32" json:"type_contrat"`
	Salary         *float64   `json:"salaire"`
	StartDate      *time.Time `json:"date_debut"`
	EndDate        *time.Time `json:"date_fin"`
	Comments       string     `gorm:"type:text" json:"commentaires"`
	CreatedBy      *uint      `json:"created_by"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	Learner        Learner    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
