package service

import "github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"

// The platform runs three independent status machines: insertion status on
// learners, application status on applications, participation status on event
// registrations. Each machine allows any transition between its own values;
// the tables exist so that tightening a machine later is a data change, not a
// code change. Values from one machine are never valid in another.

var insertionTransitions = map[string][]string{
	models.InsertionStatusSearching:  {models.InsertionStatusEmployed, models.InsertionStatusInterning, models.InsertionStatusInTraining, models.InsertionStatusOther},
	models.InsertionStatusEmployed:   {models.InsertionStatusSearching, models.InsertionStatusInterning, models.InsertionStatusInTraining, models.InsertionStatusOther},
	models.InsertionStatusInterning:  {models.InsertionStatusSearching, models.InsertionStatusEmployed, models.InsertionStatusInTraining, models.InsertionStatusOther},
	models.InsertionStatusInTraining: {models.InsertionStatusSearching, models.InsertionStatusEmployed, models.InsertionStatusInterning, models.InsertionStatusOther},
	models.InsertionStatusOther:      {models.InsertionStatusSearching, models.InsertionStatusEmployed, models.InsertionStatusInterning, models.InsertionStatusInTraining},
}

var applicationTransitions = map[string][]string{
	models.ApplicationStatusPending:      {models.ApplicationStatusViewed, models.ApplicationStatusInterviewing, models.ApplicationStatusAccepted, models.ApplicationStatusRejected},
	models.ApplicationStatusViewed:       {models.ApplicationStatusPending, models.ApplicationStatusInterviewing, models.ApplicationStatusAccepted, models.ApplicationStatusRejected},
	models.ApplicationStatusInterviewing: {models.ApplicationStatusPending, models.ApplicationStatusViewed, models.ApplicationStatusAccepted, models.ApplicationStatusRejected},
	models.ApplicationStatusAccepted:     {models.ApplicationStatusPending, models.ApplicationStatusViewed, models.ApplicationStatusInterviewing, models.ApplicationStatusRejected},
	models.ApplicationStatusRejected:     {models.ApplicationStatusPending, models.ApplicationStatusViewed, models.ApplicationStatusInterviewing, models.ApplicationStatusAccepted},
}

var participationTransitions = map[string][]string{
	models.ParticipationStatusRegistered: {models.ParticipationStatusAttended, models.ParticipationStatusAbsent, models.ParticipationStatusExcused},
	models.ParticipationStatusAttended:   {models.ParticipationStatusRegistered, models.ParticipationStatusAbsent, models.ParticipationStatusExcused},
	models.ParticipationStatusAbsent:     {models.ParticipationStatusRegistered, models.ParticipationStatusAttended, models.ParticipationStatusExcused},
	models.ParticipationStatusExcused:    {models.ParticipationStatusRegistered, models.ParticipationStatusAttended, models.ParticipationStatusAbsent},
}

func transitionAllowed(table map[string][]string, from, to string) bool {
	if from == to {
		// Same-status writes are handled by each machine's no-op rule, not
		// rejected here.
		return true
	}
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanTransitionInsertion reports whether a learner may move between the two
// insertion statuses. Both values must belong to the insertion machine.
func CanTransitionInsertion(from, to string) bool {
	if !models.ValidInsertionStatus(to) || !models.ValidInsertionStatus(from) {
		return false
	}
	return transitionAllowed(insertionTransitions, from, to)
}

// CanTransitionApplication reports whether an application may move between
// the two application statuses.
func CanTransitionApplication(from, to string) bool {
	if !models.ValidApplicationStatus(to) || !models.ValidApplicationStatus(from) {
		return false
	}
	return transitionAllowed(applicationTransitions, from, to)
}

// CanTransitionParticipation reports whether a registration may move between
// the two participation statuses.
func CanTransitionParticipation(from, to string) bool {
	if !models.ValidParticipationStatus(to) || !models.ValidParticipationStatus(from) {
		return false
	}
	return transitionAllowed(participationTransitions, from, to)
}
