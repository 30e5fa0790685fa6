package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
)

func boolPtr(b bool) *bool { return &b }

func TestSetActiveAdminOnly(t *testing.T) {
	users := newFakeUserRepo(models.User{ID: 5, Email: "awa@example.sn", Role: models.RoleLearner, IsActive: true})
	recorder := &recordedActivity{}
	svc := NewUserService(users, NewAuthorizer(), newTestValidator(), recorder, testLogger())

	// Deactivation is account management; coaches do not hold it.
	_, err := svc.SetActive(context.Background(), Actor{UserID: 2, Role: models.RoleCoach}, 5, dto.UserStatusRequest{IsActive: boolPtr(false)})
	require.ErrorIs(t, err, ErrPermissionDenied)

	response, err := svc.SetActive(context.Background(), Actor{UserID: 1, Role: models.RoleAdmin}, 5, dto.UserStatusRequest{IsActive: boolPtr(false)})
	require.NoError(t, err)
	require.False(t, response.IsActive)

	stored, err := users.GetByID(context.Background(), 5)
	require.NoError(t, err)
	require.False(t, stored.IsActive)

	require.Len(t, recorder.entries, 1)
	require.Equal(t, "user.deactivated", recorder.entries[0].Action)
	require.Equal(t, "user", recorder.entries[0].EntityType)
}

func TestUserUpdateSelfOrStaff(t *testing.T) {
	users := newFakeUserRepo(models.User{ID: 5, Email: "awa@example.sn", Role: models.RoleLearner, FirstName: "Awa", IsActive: true})
	svc := NewUserService(users, NewAuthorizer(), newTestValidator(), &recordedActivity{}, testLogger())

	_, err := svc.Update(context.Background(), Actor{UserID: 6, Role: models.RoleLearner}, 5, dto.UserUpdateRequest{FirstName: strPtr("Binta")})
	require.ErrorIs(t, err, ErrPermissionDenied)

	updated, err := svc.Update(context.Background(), Actor{UserID: 5, Role: models.RoleLearner}, 5, dto.UserUpdateRequest{FirstName: strPtr("Binta")})
	require.NoError(t, err)
	require.Equal(t, "Binta", updated.FirstName)
}

func TestUserListStaffOnly(t *testing.T) {
	users := newFakeUserRepo(
		models.User{ID: 1, Email: "admin@example.sn", Role: models.RoleAdmin, IsActive: true},
		models.User{ID: 5, Email: "awa@example.sn", Role: models.RoleLearner, IsActive: true},
	)
	svc := NewUserService(users, NewAuthorizer(), newTestValidator(), &recordedActivity{}, testLogger())

	_, err := svc.List(context.Background(), Actor{UserID: 5, Role: models.RoleLearner}, dto.UserListFilter{})
	require.ErrorIs(t, err, ErrPermissionDenied)

	all, err := svc.List(context.Background(), Actor{UserID: 1, Role: models.RoleAdmin}, dto.UserListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	learnersOnly, err := svc.List(context.Background(), Actor{UserID: 1, Role: models.RoleAdmin}, dto.UserListFilter{Role: models.RoleLearner})
	require.NoError(t, err)
	require.Len(t, learnersOnly, 1)
}

func TestUserGetByIDSelfAccess(t *testing.T) {
	users := newFakeUserRepo(models.User{ID: 5, Email: "awa@example.sn", Role: models.RoleLearner, IsActive: true})
	svc := NewUserService(users, NewAuthorizer(), newTestValidator(), &recordedActivity{}, testLogger())

	own, err := svc.GetByID(context.Background(), Actor{UserID: 5, Role: models.RoleLearner}, 5)
	require.NoError(t, err)
	require.Equal(t, "awa@example.sn", own.Email)

	_, err = svc.GetByID(context.Background(), Actor{UserID: 6, Role: models.RoleLearner}, 5)
	require.ErrorIs(t, err, ErrPermissionDenied)
}
