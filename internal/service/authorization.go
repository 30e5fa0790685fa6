package service

import "github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"

// Action is the verb side of an authorization question.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	// ActionManage covers platform administration: user account management,
	// role changes, account activation. Coaches do not get it.
	ActionManage Action = "manage"
)

// Resource is the noun side.
type Resource string

const (
	ResourceUser        Resource = "user"
	ResourceLearner     Resource = "learner"
	ResourceCompany     Resource = "company"
	ResourceJobOffer    Resource = "job_offer"
	ResourceApplication Resource = "application"
	ResourceEvent       Resource = "event"
	ResourceTracking    Resource = "tracking"
	ResourceDocument    Resource = "document"
	ResourceStats       Resource = "stats"
)

// Actor is the authenticated principal extracted from the JWT.
type Actor struct {
	UserID uint
	Role   string
}

// Authorizer answers "may this actor perform this action on this resource".
// Decisions are pure: no I/O, no clock. Ownership is passed in by the caller
// because only the caller knows which user a resource belongs to.
type Authorizer struct{}

func NewAuthorizer() *Authorizer {
	return &Authorizer{}
}

// CanAct applies the role precedence: admins may do anything; coaches may do
// anything except ActionManage; everyone may act on resources they own
// (ownerUserID matching their own user id); everything else is denied.
// A zero ownerUserID means the resource has no owner, so the owner rule
// never fires for it.
func (a *Authorizer) CanAct(actor Actor, action Action, _ Resource, ownerUserID uint) bool {
	switch actor.Role {
	case models.RoleAdmin:
		return true
	case models.RoleCoach:
		return action != ActionManage
	}
	if ownerUserID != 0 && ownerUserID == actor.UserID {
		return true
	}
	return false
}

// CanView is CanAct specialized to reads, kept separate because list
// endpoints call it in a loop and the call sites read better.
func (a *Authorizer) CanView(actor Actor, resource Resource, ownerUserID uint) bool {
	return a.CanAct(actor, ActionView, resource, ownerUserID)
}

// IsStaff reports whether the actor holds a staff role.
func (a *Authorizer) IsStaff(actor Actor) bool {
	return actor.Role == models.RoleAdmin || actor.Role == models.RoleCoach
}
