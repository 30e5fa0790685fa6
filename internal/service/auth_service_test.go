package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
)

func newAuthTestService(users *fakeUserRepo, learners *fakeLearnerRepo, companies *fakeCompanyRepo) AuthService {
	return NewAuthService(users, learners, companies, newTestValidator(), fakeTxRunner{}, "test-secret", time.Hour, testLogger())
}

func TestRegisterLearnerCreatesProfile(t *testing.T) {
	users := newFakeUserRepo()
	learners := newFakeLearnerRepo()
	svc := newAuthTestService(users, learners, newFakeCompanyRepo())

	response, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:     "Awa.Diop@example.sn",
		Password:  "secret123",
		FirstName: "Awa",
		LastName:  "Diop",
		Role:      models.RoleLearner,
	})
	require.NoError(t, err)
	require.NotEmpty(t, response.Token)
	require.Equal(t, models.RoleLearner, response.User.Role)
	require.Equal(t, "awa.diop@example.sn", response.User.Email)

	learner, err := learners.GetByUserID(context.Background(), response.User.ID)
	require.NoError(t, err)
	require.Equal(t, models.InsertionStatusSearching, learner.InsertionStatus)
}

func TestRegisterCompanyCreatesProfile(t *testing.T) {
	users := newFakeUserRepo()
	companies := newFakeCompanyRepo()
	svc := newAuthTestService(users, newFakeLearnerRepo(), companies)

	response, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:     "rh@sonatel.sn",
		Password:  "secret123",
		FirstName: "Fatou",
		LastName:  "Ndiaye",
		Role:      models.RoleCompany,
	})
	require.NoError(t, err)

	company, err := companies.GetByUserID(context.Background(), response.User.ID)
	require.NoError(t, err)
	require.Equal(t, models.PartnershipStatusInDiscussion, company.PartnershipStatus)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthTestService(users, newFakeLearnerRepo(), newFakeCompanyRepo())

	payload := dto.RegisterRequest{
		Email:     "awa@example.sn",
		Password:  "secret123",
		FirstName: "Awa",
		LastName:  "Diop",
		Role:      models.RoleLearner,
	}
	_, err := svc.Register(context.Background(), payload)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), payload)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginVerifiesPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthTestService(users, newFakeLearnerRepo(), newFakeCompanyRepo())

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:     "awa@example.sn",
		Password:  "secret123",
		FirstName: "Awa",
		LastName:  "Diop",
		Role:      models.RoleLearner,
	})
	require.NoError(t, err)

	response, err := svc.Login(context.Background(), dto.LoginRequest{Email: "awa@example.sn", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, response.Token)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "awa@example.sn", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown email reads the same as a wrong password.
	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "nobody@example.sn", Password: "secret123"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthTestService(users, newFakeLearnerRepo(), newFakeCompanyRepo())

	registered, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:     "awa@example.sn",
		Password:  "secret123",
		FirstName: "Awa",
		LastName:  "Diop",
		Role:      models.RoleLearner,
	})
	require.NoError(t, err)
	require.NoError(t, users.SetActive(context.Background(), registered.User.ID, false))

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "awa@example.sn", Password: "secret123"})
	require.ErrorIs(t, err, ErrAccountDisabled)
}
