package models

import "time"

// Participation statuses. Marking a participant absent frees their seat for
// future admission checks.
const (
	ParticipationStatusRegistered = "inscrit"
	ParticipationStatusAttended   = "present"
	ParticipationStatusAbsent     = "absent"
	ParticipationStatusExcused    = "excuse"
)

// EventParticipant links a learner to an event, at most once per pair.
type EventParticipant struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	EventID             uint      `gorm:"not null;uniqueIndex:idx_participant_event_learner" json:"event_id"`
	LearnerID           uint      `gorm:"not null;uniqueIndex:idx_participant_event_learner" json:"learner_id"`
	ParticipationStatus string    `gorm:"size:32;not null;default:inscrit" json:"statut_participation"`
	RegisteredAt        time.Time `gorm:"autoCreateTime" json:"date_inscription"`
	Comments            string    `gorm:"type:text" json:"commentaires"`
	Event               Event     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"event"`
	Learner             Learner   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"learner"`
}

// ValidParticipationStatus reports whether the value belongs to the participation enum.
func ValidParticipationStatus(status string) bool {
	switch status {
	case ParticipationStatusRegistered, ParticipationStatusAttended,
		ParticipationStatusAbsent, ParticipationStatusExcused:
		return true
	}
	return false
}

// CountsTowardCapacity reports whether the participant occupies a seat.
func (p EventParticipant) CountsTowardCapacity() bool {
	return p.ParticipationStatus != ParticipationStatusAbsent
}
