package models

import "time"

// Application review statuses. acceptee and refusee are terminal in practice,
// although no transition is forbidden by the lifecycle tables.
const (
	ApplicationStatusPending      = "en_attente"
	ApplicationStatusViewed       = "vue"
	ApplicationStatusInterviewing = "entretien"
	ApplicationStatusAccepted     = "acceptee"
	ApplicationStatusRejected     = "refusee"
)

// Application links a learner to a job offer. The composite unique index is
// the authoritative guard against duplicate applications: concurrent writers
// race on the insert and the loser gets a duplicate-key error.
type Application struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	JobOfferID        uint       `gorm:"not null;uniqueIndex:idx_application_offer_learner" json:"job_offer_id"`
	LearnerID         uint       `gorm:"not null;uniqueIndex:idx_application_offer_learner" json:"learner_id"`
	Status            string     `gorm:"size:32;not null;default:en_attente" json:"statut"`
	MotivationMessage string     `gorm:"type:text" json:"message_motivation"`
	AppliedAt         time.Time  `gorm:"autoCreateTime" json:"date_candidature"`
	RespondedAt       *time.Time `json:"date_reponse"`
	Comments          string     `gorm:"type:text" json:"commentaires"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	JobOffer          JobOffer   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"job_offer"`
	Learner           Learner    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"learner"`
}

// ValidApplicationStatus reports whether the value belongs to the application enum.
func ValidApplicationStatus(status string) bool {
	switch status {
	case ApplicationStatusPending, ApplicationStatusViewed, ApplicationStatusInterviewing,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}
