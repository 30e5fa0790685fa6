package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
)

func TestAuthorizerPrecedence(t *testing.T) {
	authz := NewAuthorizer()

	cases := []struct {
		name    string
		actor   Actor
		action  Action
		ownerID uint
		want    bool
	}{
		{"admin may manage", Actor{UserID: 1, Role: models.RoleAdmin}, ActionManage, 0, true},
		{"admin may delete others", Actor{UserID: 1, Role: models.RoleAdmin}, ActionDelete, 99, true},
		{"coach may update others", Actor{UserID: 2, Role: models.RoleCoach}, ActionUpdate, 99, true},
		{"coach may not manage", Actor{UserID: 2, Role: models.RoleCoach}, ActionManage, 0, false},
		{"coach may not manage own account either", Actor{UserID: 2, Role: models.RoleCoach}, ActionManage, 2, false},
		{"learner may update self", Actor{UserID: 3, Role: models.RoleLearner}, ActionUpdate, 3, true},
		{"learner may not update others", Actor{UserID: 3, Role: models.RoleLearner}, ActionUpdate, 4, false},
		{"company may view own resource", Actor{UserID: 5, Role: models.RoleCompany}, ActionView, 5, true},
		{"company may not touch unowned resource", Actor{UserID: 5, Role: models.RoleCompany}, ActionUpdate, 0, false},
		{"ownerless resource denied to non-staff", Actor{UserID: 3, Role: models.RoleLearner}, ActionCreate, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := authz.CanAct(tc.actor, tc.action, ResourceLearner, tc.ownerID)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestAuthorizerZeroOwnerNeverMatchesZeroActor(t *testing.T) {
	authz := NewAuthorizer()

	// An unauthenticated zero actor never passes the owner rule on an
	// ownerless resource.
	require.False(t, authz.CanAct(Actor{}, ActionView, ResourceDocument, 0))
}

func TestAuthorizerIsStaff(t *testing.T) {
	authz := NewAuthorizer()

	require.True(t, authz.IsStaff(Actor{Role: models.RoleAdmin}))
	require.True(t, authz.IsStaff(Actor{Role: models.RoleCoach}))
	require.False(t, authz.IsStaff(Actor{Role: models.RoleLearner}))
	require.False(t, authz.IsStaff(Actor{Role: models.RoleCompany}))
}
