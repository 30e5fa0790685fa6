package models

import "time"

// Event statuses. Registrations are only admitted while the event is planifie.
const (
	EventStatusScheduled = "planifie"
	EventStatusOngoing   = "en_cours"
	EventStatusCompleted = "termine"
	EventStatusCancelled = "annule"
)

// Event kinds.
const (
	EventTypeWorkshop     = "atelier"
	EventTypeCompanyVisit = "visite_entreprise"
	EventTypeJobDating    = "job_dating"
	EventTypeConference   = "conference"
	EventTypeTraining     = "formation"
	EventTypeOther        = "autre"
)

// Event is a group activity learners can register for. Capacity is optional;
// when set, admission counts participants whose status is not absent.
type Event struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"titre"`
	Description string     `gorm:"type:text" json:"description"`
	Type        string     `gorm:"size:32;not null" json:"type_evenement"`
	StartDate   time.Time  `gorm:"not null" json:"date_debut"`
	EndDate     *time.Time `json:"date_fin"`
	Location    string     `gorm:"size:255" json:"lieu"`
	Capacity    *int       `json:"capacite_max"`
	Facilitator string     `gorm:"size:100" json:"animateur"`
	Status      string     `gorm:"size:32;not null;default:planifie" json:"statut"`
	CreatedBy   *uint      `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ValidEventStatus reports whether the value belongs to the event enum.
func ValidEventStatus(status string) bool {
	switch status {
	case EventStatusScheduled, EventStatusOngoing, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

// ValidEventType reports whether the value belongs to the event type enum.
func ValidEventType(kind string) bool {
	switch kind {
	case EventTypeWorkshop, EventTypeCompanyVisit, EventTypeJobDating,
		EventTypeConference, EventTypeTraining, EventTypeOther:
		return true
	}
	return false
}
