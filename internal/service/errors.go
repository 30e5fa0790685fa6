package service

import "errors"

// Business-rule outcomes shared across the use-case services. Each precondition
// violation maps to exactly one sentinel so the transport layer can return the
// same response for the same violation, every time. None of these are
// transient: retrying is the caller's decision and generally wrong.
var (
	// ErrPermissionDenied means the authorization engine said no. It is a
	// normal outcome, not a fault.
	ErrPermissionDenied = errors.New("permission denied")

	ErrUserNotFound        = errors.New("user not found")
	ErrLearnerNotFound     = errors.New("learner not found")
	ErrCompanyNotFound     = errors.New("company not found")
	ErrJobOfferNotFound    = errors.New("job offer not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrDocumentNotFound    = errors.New("document not found")

	// ErrEmailTaken rejects a registration for an address already in use.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the two cases are indistinguishable to a caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDisabled rejects logins on deactivated accounts.
	ErrAccountDisabled = errors.New("account disabled")

	// Uniqueness violations: one application per (learner, offer), one
	// registration per (learner, event).
	ErrDuplicateApplication  = errors.New("application already exists for this offer")
	ErrDuplicateRegistration = errors.New("already registered for this event")

	// Admission-control refusals, each distinct so callers can present a
	// precise message.
	ErrOfferNotActive = errors.New("job offer is not active")
	ErrEventNotOpen   = errors.New("event registration is closed")
	ErrEventInPast    = errors.New("event has already started")
	ErrEventFull      = errors.New("event is full")

	// ErrInvalidStatus rejects a status outside the entity's enum.
	ErrInvalidStatus = errors.New("invalid status value")

	// ErrInconsistentState signals that a learner's current insertion status
	// disagrees with the newest ledger entry. It is surfaced, never silently
	// repaired: it indicates a bug upstream, not bad input.
	ErrInconsistentState = errors.New("insertion status inconsistent with ledger")
)
