package models

import "time"

// Roles understood by the platform. Wire values are kept in French to stay
// compatible with the existing clients and seed data.
const (
	RoleAdmin   = "admin"
	RoleCoach   = "coach"
	RoleLearner = "apprenant"
	RoleCompany = "entreprise"
)

// User is an authenticated account. Accounts are never hard-deleted; an
// administrator flips IsActive instead so that applications and the insertion
// ledger keep their history.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:32;not null" json:"role"`
	FirstName    string    `gorm:"size:100;not null" json:"first_name"`
	LastName     string    `gorm:"size:100;not null" json:"last_name"`
	Phone        string    `gorm:"size:20" json:"phone"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether the value is one of the known account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleCoach, RoleLearner, RoleCompany:
		return true
	}
	return false
}

// IsStaff reports whether the role carries coach-or-above privileges.
func IsStaff(role string) bool {
	return role == RoleAdmin || role == RoleCoach
}
