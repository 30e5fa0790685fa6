package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/repository"
)

const dashboardCacheKey = "stats:dashboard"

// StatsService builds the staff dashboard. The aggregation crosses every
// table, so the assembled payload is cached in Redis for a short TTL; a cache
// outage degrades to recomputing, never to an error.
type StatsService interface {
	Dashboard(ctx context.Context, actor Actor) (dto.DashboardResponse, error)
}

type statsService struct {
	stats  repository.StatsRepository
	authz  *Authorizer
	cache  *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
	now    func() time.Time
}

// NewStatsService constructs a StatsService instance.
func NewStatsService(statsRepo repository.StatsRepository, authz *Authorizer, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) StatsService {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &statsService{
		stats:  statsRepo,
		authz:  authz,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With().Str("component", "stats_service").Logger(),
		now:    time.Now,
	}
}

func (s *statsService) Dashboard(ctx context.Context, actor Actor) (dto.DashboardResponse, error) {
	if !s.authz.IsStaff(actor) {
		return dto.DashboardResponse{}, ErrPermissionDenied
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, dashboardCacheKey).Result(); err == nil && cached != "" {
			var response dto.DashboardResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				return response, nil
			}
		}
	}

	var response dto.DashboardResponse
	var err error

	if response.Users, err = s.stats.UsersByRole(ctx); err != nil {
		return dto.DashboardResponse{}, err
	}
	if response.Insertion, err = s.stats.InsertionDistribution(ctx); err != nil {
		return dto.DashboardResponse{}, err
	}
	if response.Jobs, err = s.stats.JobOffersByStatus(ctx); err != nil {
		return dto.DashboardResponse{}, err
	}
	if response.Applications, err = s.stats.ApplicationsByStatus(ctx); err != nil {
		return dto.DashboardResponse{}, err
	}
	if response.Events, err = s.stats.EventsByStatus(ctx); err != nil {
		return dto.DashboardResponse{}, err
	}

	since := s.now().AddDate(-1, 0, 0)
	if response.MonthlyInsertions, err = s.stats.MonthlyInsertions(ctx, since); err != nil {
		return dto.DashboardResponse{}, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, dashboardCacheKey, payload, s.ttl).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to cache dashboard")
			}
		}
	}

	return response, nil
}
