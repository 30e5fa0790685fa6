package service

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/repository"
)

type fakeStatsRepo struct {
	calls int
	users []repository.RoleCount
}

func (f *fakeStatsRepo) UsersByRole(context.Context) ([]repository.RoleCount, error) {
	f.calls++
	return f.users, nil
}

func (f *fakeStatsRepo) InsertionDistribution(context.Context) ([]repository.StatusCount, error) {
	return []repository.StatusCount{{Status: models.InsertionStatusSearching, Count: 3}}, nil
}

func (f *fakeStatsRepo) JobOffersByStatus(context.Context) ([]repository.StatusCount, error) {
	return []repository.StatusCount{{Status: models.JobOfferStatusActive, Count: 2}}, nil
}

func (f *fakeStatsRepo) ApplicationsByStatus(context.Context) ([]repository.StatusCount, error) {
	return []repository.StatusCount{{Status: models.ApplicationStatusPending, Count: 4}}, nil
}

func (f *fakeStatsRepo) EventsByStatus(context.Context) ([]repository.StatusCount, error) {
	return []repository.StatusCount{{Status: models.EventStatusScheduled, Count: 1}}, nil
}

func (f *fakeStatsRepo) MonthlyInsertions(context.Context, time.Time) ([]repository.MonthlyInsertion, error) {
	return []repository.MonthlyInsertion{{Month: "2025-06", Count: 2}}, nil
}

func TestDashboardStaffOnly(t *testing.T) {
	repo := &fakeStatsRepo{users: []repository.RoleCount{{Role: models.RoleLearner, Count: 3}}}
	svc := NewStatsService(repo, NewAuthorizer(), nil, time.Minute, testLogger())

	_, err := svc.Dashboard(context.Background(), Actor{UserID: 10, Role: models.RoleLearner})
	require.ErrorIs(t, err, ErrPermissionDenied)

	response, err := svc.Dashboard(context.Background(), Actor{UserID: 2, Role: models.RoleCoach})
	require.NoError(t, err)
	require.Len(t, response.Users, 1)
	require.Equal(t, int64(3), response.Users[0].Count)
}

func TestDashboardCachesInRedis(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	repo := &fakeStatsRepo{users: []repository.RoleCount{{Role: models.RoleLearner, Count: 3}}}
	svc := NewStatsService(repo, NewAuthorizer(), client, time.Minute, testLogger())

	admin := Actor{UserID: 1, Role: models.RoleAdmin}
	first, err := svc.Dashboard(context.Background(), admin)
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)

	// The second call is served from the cache: the repository is not hit
	// again and the payload is identical.
	second, err := svc.Dashboard(context.Background(), admin)
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)
	require.Equal(t, first, second)

	// Once the TTL passes, the dashboard is recomputed.
	server.FastForward(2 * time.Minute)
	_, err = svc.Dashboard(context.Background(), admin)
	require.NoError(t, err)
	require.Equal(t, 2, repo.calls)
}

func TestDashboardSurvivesWithoutCache(t *testing.T) {
	repo := &fakeStatsRepo{users: []repository.RoleCount{{Role: models.RoleLearner, Count: 3}}}
	svc := NewStatsService(repo, NewAuthorizer(), nil, time.Minute, testLogger())

	admin := Actor{UserID: 1, Role: models.RoleAdmin}
	_, err := svc.Dashboard(context.Background(), admin)
	require.NoError(t, err)
	_, err = svc.Dashboard(context.Background(), admin)
	require.NoError(t, err)
	require.Equal(t, 2, repo.calls)
}
