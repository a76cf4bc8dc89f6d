package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/studytrack/studytrack-backend/internal/config"
	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/repository"
)

// DashboardOverview is the admin dashboard payload.
type DashboardOverview struct {
	TotalUsers         int             `json:"total_users"`
	TotalStudents      int             `json:"total_students"`
	TotalLearningPaths int             `json:"total_learning_paths"`
	CompletedPaths     int             `json:"completed_learning_paths"`
	CozmezStudents     []model.Student `json:"cozmez_students"`
	KidemliStudents    []model.Student `json:"kidemli_students"`
	GeneratedAt        time.Time       `json:"generated_at"`
}

// DashboardService assembles the admin dashboard, caching the result in
// Redis for a short TTL so repeated loads don't hammer Postgres.
type DashboardService struct {
	dashRepo    *repository.DashboardRepository
	studentRepo *repository.StudentRepository
	rdb         *redis.Client
	ttl         time.Duration
	log         zerolog.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	dashRepo *repository.DashboardRepository,
	studentRepo *repository.StudentRepository,
	rdb *redis.Client,
	ttl time.Duration,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		dashRepo:    dashRepo,
		studentRepo: studentRepo,
		rdb:         rdb,
		ttl:         ttl,
		log:         log.With().Str("component", "dashboard_service").Logger(),
	}
}

// GetOverview returns the dashboard payload, served from cache when fresh.
func (s *DashboardService) GetOverview(ctx context.Context) (*DashboardOverview, error) {
	cacheKey := config.CacheKey.DashboardSummaryKey()

	cached, err := s.rdb.Get(ctx, cacheKey).Result()
	if err == nil {
		var overview DashboardOverview
		if err := json.Unmarshal([]byte(cached), &overview); err == nil {
			return &overview, nil
		}
		// Corrupt cache entry falls through to a rebuild.
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("Dashboard cache read failed")
	}

	overview, err := s.build(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(overview); err == nil {
		if err := s.rdb.Set(ctx, cacheKey, payload, s.ttl).Err(); err != nil {
			s.log.Warn().Err(err).Msg("Dashboard cache write failed")
		}
	}

	return overview, nil
}

func (s *DashboardService) build(ctx context.Context) (*DashboardOverview, error) {
	totalUsers, totalStudents, totalPaths, completedPaths, err := s.dashRepo.GetSummaryCounts(ctx)
	if err != nil {
		return nil, err
	}

	cozmez, err := s.studentRepo.ListByLevel(ctx, model.LevelCozmez)
	if err != nil {
		return nil, err
	}
	kidemli, err := s.studentRepo.ListByLevel(ctx, model.LevelKidemli)
	if err != nil {
		return nil, err
	}

	if cozmez == nil {
		cozmez = []model.Student{}
	}
	if kidemli == nil {
		kidemli = []model.Student{}
	}

	return &DashboardOverview{
		TotalUsers:         totalUsers,
		TotalStudents:      totalStudents,
		TotalLearningPaths: totalPaths,
		CompletedPaths:     completedPaths,
		CozmezStudents:     cozmez,
		KidemliStudents:    kidemli,
		GeneratedAt:        time.Now().UTC(),
	}, nil
}
