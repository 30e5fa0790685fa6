package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
)

func eventFixtures(capacity *int) (*fakeEventRepo, *fakeParticipantRepo, *fakeLearnerRepo) {
	events := newFakeEventRepo(models.Event{
		ID:        1,
		Title:     "Job dating Dakar",
		Type:      models.EventTypeJobDating,
		StartDate: time.Now().Add(48 * time.Hour),
		Status:    models.EventStatusScheduled,
		Capacity:  capacity,
	})
	learners := newFakeLearnerRepo(
		models.Learner{ID: 1, UserID: 10, InsertionStatus: models.InsertionStatusSearching},
		models.Learner{ID: 2, UserID: 11, InsertionStatus: models.InsertionStatusSearching},
	)
	return events, newFakeParticipantRepo(), learners
}

func newEventService(events *fakeEventRepo, participants *fakeParticipantRepo, learners *fakeLearnerRepo) EventService {
	return NewEventService(events, participants, learners, NewAuthorizer(), newTestValidator(), fakeTxRunner{}, testLogger())
}

func TestRegisterCreatesRegistration(t *testing.T) {
	events, participants, learners := eventFixtures(nil)
	svc := newEventService(events, participants, learners)

	response, err := svc.Register(context.Background(), Actor{UserID: 10, Role: models.RoleLearner}, 1, dto.RegistrationRequest{})
	require.NoError(t, err)
	require.Equal(t, models.ParticipationStatusRegistered, response.ParticipationStatus)
	require.Equal(t, uint(1), response.LearnerID)
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	events, participants, learners := eventFixtures(nil)
	svc := newEventService(events, participants, learners)

	learner := Actor{UserID: 10, Role: models.RoleLearner}
	_, err := svc.Register(context.Background(), learner, 1, dto.RegistrationRequest{})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), learner, 1, dto.RegistrationRequest{})
	require.ErrorIs(t, err, ErrDuplicateRegistration)
	require.Len(t, participants.participants, 1)
}

func TestRegisterHoldsEventRowLock(t *testing.T) {
	// Admission relies on count-then-insert; without the SELECT FOR UPDATE
	// on the event row two racing registrations could both see the last
	// seat free and both commit.
	capacity := 1
	events, participants, learners := eventFixtures(&capacity)
	svc := newEventService(events, participants, learners)

	_, err := svc.Register(context.Background(), Actor{UserID: 10, Role: models.RoleLearner}, 1, dto.RegistrationRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, events.lockedFetches)
}

func TestRegisterRejectsWhenFull(t *testing.T) {
	capacity := 1
	events, participants, learners := eventFixtures(&capacity)
	svc := newEventService(events, participants, learners)

	_, err := svc.Register(context.Background(), Actor{UserID: 10, Role: models.RoleLearner}, 1, dto.RegistrationRequest{})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), Actor{UserID: 11, Role: models.RoleLearner}, 1, dto.RegistrationRequest{})
	require.ErrorIs(t, err, ErrEventFull)
}

func TestAbsentParticipantFreesSeat(t *testing.T) {
	// Capacity counts occupied seats, and a participant marked absent no
	// longer occupies one.
	capacity := 1
	events, participants, learners := eventFixtures(&capacity)
	svc := newEventService(events, participants, learners)

	first, err := svc.Register(context.Background(), Actor{UserID: 10, Role: models.RoleLearner}, 1, dto.RegistrationRequest{})
	require.NoError(t, err)

	_, err = svc.UpdateParticipation(context.Background(), Actor{UserID: 2, Role: models.RoleCoach}, first.ID, dto.ParticipationStatusUpdateRequest{
		Status: models.ParticipationStatusAbsent,
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), Actor{UserID: 11, Role: models.RoleLearner}, 1, dto.RegistrationRequest{})
	require.NoError(t, err)
}

func TestRegisterRejectsUnscheduledEvent(t *testing.T) {
	events, participants, learners := eventFixtures(nil)
	event, _ := events.GetByID(context.Background(), 1)
	event.Status = models.EventStatusCancelled
	require.NoError(t, events.Update(context.Background(), &event))

	svc := newEventService(events, participants, learners)
	_, err := svc.Register(context.Background(), Actor{UserID: 10, Role: models.RoleLearner}, 1, dto.RegistrationRequest{})
	require.ErrorIs(t, err, ErrEventNotOpen)
}

func TestRegisterRejectsStartedEvent(t *testing.T) {
	events, participants, learners := eventFixtures(nil)
	event, _ := events.GetByID(context.Background(), 1)
	event.StartDate = time.Now().Add(-time.Hour)
	require.NoError(t, events.Update(context.Background(), &event))

	svc := newEventService(events, participants, learners)
	_, err := svc.Register(context.Background(), Actor{UserID: 10, Role: models.RoleLearner}, 1, dto.RegistrationRequest{})
	require.ErrorIs(t, err, ErrEventInPast)
}

func TestRegisterRestrictedToLearners(t *testing.T) {
	events, participants, learners := eventFixtures(nil)
	svc := newEventService(events, participants, learners)

	_, err := svc.Register(context.Background(), Actor{UserID: 2, Role: models.RoleCoach}, 1, dto.RegistrationRequest{})
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestUpdateParticipationStaffOnly(t *testing.T) {
	events, participants, learners := eventFixtures(nil)
	svc := newEventService(events, participants, learners)

	registration, err := svc.Register(context.Background(), Actor{UserID: 10, Role: models.RoleLearner}, 1, dto.RegistrationRequest{})
	require.NoError(t, err)

	// A learner cannot mark themselves present.
	_, err = svc.UpdateParticipation(context.Background(), Actor{UserID: 10, Role: models.RoleLearner}, registration.ID, dto.ParticipationStatusUpdateRequest{
		Status: models.ParticipationStatusAttended,
	})
	require.ErrorIs(t, err, ErrPermissionDenied)

	updated, err := svc.UpdateParticipation(context.Background(), Actor{UserID: 3, Role: models.RoleAdmin}, registration.ID, dto.ParticipationStatusUpdateRequest{
		Status: models.ParticipationStatusAttended,
	})
	require.NoError(t, err)
	require.Equal(t, models.ParticipationStatusAttended, updated.ParticipationStatus)
}

func TestEventCreateStaffOnly(t *testing.T) {
	events, participants, learners := eventFixtures(nil)
	svc := newEventService(events, participants, learners)

	payload := dto.EventCreateRequest{
		Title:     "Atelier CV et entretien",
		Type:      models.EventTypeWorkshop,
		StartDate: time.Now().Add(72 * time.Hour),
	}

	_, err := svc.Create(context.Background(), Actor{UserID: 10, Role: models.RoleLearner}, payload)
	require.ErrorIs(t, err, ErrPermissionDenied)

	created, err := svc.Create(context.Background(), Actor{UserID: 2, Role: models.RoleCoach}, payload)
	require.NoError(t, err)
	require.Equal(t, models.EventStatusScheduled, created.Status)
}

func TestEventGetByIDExposesRosterToStaffOnly(t *testing.T) {
	events, participants, learners := eventFixtures(nil)
	svc := newEventService(events, participants, learners)

	_, err := svc.Register(context.Background(), Actor{UserID: 10, Role: models.RoleLearner}, 1, dto.RegistrationRequest{})
	require.NoError(t, err)

	staffView, err := svc.GetByID(context.Background(), Actor{UserID: 2, Role: models.RoleCoach}, 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), staffView.Occupied)
	require.Len(t, staffView.Participants, 1)

	learnerView, err := svc.GetByID(context.Background(), Actor{UserID: 11, Role: models.RoleLearner}, 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), learnerView.Occupied)
	require.Empty(t, learnerView.Participants)
}
