package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
)

func newLearnerTestService(learners *fakeLearnerRepo, trackings *fakeTrackingRepo) LearnerService {
	return NewLearnerService(learners, trackings, NewAuthorizer(), newTestValidator(), fakeTxRunner{}, testLogger())
}

func strPtr(s string) *string { return &s }

func TestLearnerUpdateStatusChangeAppendsLedgerEntry(t *testing.T) {
	learners := newFakeLearnerRepo(models.Learner{ID: 1, UserID: 10, InsertionStatus: models.InsertionStatusSearching})
	trackings := newFakeTrackingRepo()
	svc := newLearnerTestService(learners, trackings)

	self := Actor{UserID: 10, Role: models.RoleLearner}
	response, err := svc.Update(context.Background(), self, 1, dto.LearnerUpdateRequest{
		InsertionStatus: strPtr(models.InsertionStatusEmployed),
		City:            strPtr("Dakar"),
	})
	require.NoError(t, err)
	require.Equal(t, models.InsertionStatusEmployed, response.InsertionStatus)
	require.Equal(t, "Dakar", response.City)

	require.Len(t, trackings.entries, 1)
	require.Equal(t, models.InsertionStatusSearching, trackings.entries[0].PreviousStatus)
	require.Equal(t, models.InsertionStatusEmployed, trackings.entries[0].NewStatus)
	require.NotNil(t, trackings.entries[0].CreatedBy)
	require.Equal(t, uint(10), *trackings.entries[0].CreatedBy)
}

func TestLearnerUpdateSameStatusAppendsNothing(t *testing.T) {
	// A profile edit that carries the current status is not a transition:
	// the ledger stays untouched.
	learners := newFakeLearnerRepo(models.Learner{ID: 1, UserID: 10, InsertionStatus: models.InsertionStatusSearching})
	trackings := newFakeTrackingRepo()
	svc := newLearnerTestService(learners, trackings)

	_, err := svc.Update(context.Background(), Actor{UserID: 10, Role: models.RoleLearner}, 1, dto.LearnerUpdateRequest{
		InsertionStatus: strPtr(models.InsertionStatusSearching),
		Promotion:       strPtr("P7 2025"),
	})
	require.NoError(t, err)
	require.Empty(t, trackings.entries)

	learner, err := learners.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "P7 2025", learner.Promotion)
}

func TestLearnerUpdateWithoutStatusAppendsNothing(t *testing.T) {
	learners := newFakeLearnerRepo(models.Learner{ID: 1, UserID: 10, InsertionStatus: models.InsertionStatusEmployed})
	trackings := newFakeTrackingRepo()
	svc := newLearnerTestService(learners, trackings)

	_, err := svc.Update(context.Background(), Actor{UserID: 2, Role: models.RoleCoach}, 1, dto.LearnerUpdateRequest{
		Skills: strPtr("Go, PostgreSQL"),
	})
	require.NoError(t, err)
	require.Empty(t, trackings.entries)
}

func TestLearnerUpdateDeniedForOtherLearner(t *testing.T) {
	learners := newFakeLearnerRepo(models.Learner{ID: 1, UserID: 10, InsertionStatus: models.InsertionStatusSearching})
	svc := newLearnerTestService(learners, newFakeTrackingRepo())

	_, err := svc.Update(context.Background(), Actor{UserID: 11, Role: models.RoleLearner}, 1, dto.LearnerUpdateRequest{
		City: strPtr("Thies"),
	})
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestLearnerGetByIDIncludesHistory(t *testing.T) {
	learners := newFakeLearnerRepo(models.Learner{ID: 1, UserID: 10, InsertionStatus: models.InsertionStatusEmployed})
	trackings := newFakeTrackingRepo(models.InsertionTracking{
		ID: 1, LearnerID: 1,
		PreviousStatus: models.InsertionStatusSearching,
		NewStatus:      models.InsertionStatusEmployed,
	})
	svc := newLearnerTestService(learners, trackings)

	response, err := svc.GetByID(context.Background(), Actor{UserID: 2, Role: models.RoleCoach}, 1)
	require.NoError(t, err)
	require.Len(t, response.History, 1)
	require.Equal(t, models.InsertionStatusEmployed, response.History[0].NewStatus)
}

func TestLearnerGetByIDSurfacesInconsistency(t *testing.T) {
	learners := newFakeLearnerRepo(models.Learner{ID: 1, UserID: 10, InsertionStatus: models.InsertionStatusSearching})
	trackings := newFakeTrackingRepo(models.InsertionTracking{
		ID: 1, LearnerID: 1,
		PreviousStatus: models.InsertionStatusSearching,
		NewStatus:      models.InsertionStatusEmployed,
	})
	svc := newLearnerTestService(learners, trackings)

	_, err := svc.GetByID(context.Background(), Actor{UserID: 2, Role: models.RoleCoach}, 1)
	require.ErrorIs(t, err, ErrInconsistentState)
}

func TestLearnerListStaffOnly(t *testing.T) {
	learners := newFakeLearnerRepo(
		models.Learner{ID: 1, UserID: 10, InsertionStatus: models.InsertionStatusSearching},
		models.Learner{ID: 2, UserID: 11, InsertionStatus: models.InsertionStatusEmployed},
	)
	svc := newLearnerTestService(learners, newFakeTrackingRepo())

	_, err := svc.List(context.Background(), Actor{UserID: 10, Role: models.RoleLearner}, dto.LearnerListFilter{})
	require.ErrorIs(t, err, ErrPermissionDenied)

	all, err := svc.List(context.Background(), Actor{UserID: 2, Role: models.RoleCoach}, dto.LearnerListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	employed, err := svc.List(context.Background(), Actor{UserID: 2, Role: models.RoleCoach}, dto.LearnerListFilter{
		InsertionStatus: models.InsertionStatusEmployed,
	})
	require.NoError(t, err)
	require.Len(t, employed, 1)
}
