package service

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/studytrack/studytrack-backend/internal/config"
	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/repository"
	"github.com/studytrack/studytrack-backend/internal/response"
)

// AuditService records admin mutations. Events go onto a Redis queue for the
// audit worker to persist, and onto a PubSub channel for live subscribers.
// Recording is best-effort: a Redis hiccup must never fail the request that
// triggered the event.
type AuditService struct {
	auditRepo *repository.AuditRepository
	rdb       *redis.Client
	log       zerolog.Logger
}

// NewAuditService creates a new AuditService.
func NewAuditService(auditRepo *repository.AuditRepository, rdb *redis.Client, log zerolog.Logger) *AuditService {
	return &AuditService{
		auditRepo: auditRepo,
		rdb:       rdb,
		log:       log.With().Str("component", "audit_service").Logger(),
	}
}

// Record queues an audit event for persistence and publishes it live.
func (s *AuditService) Record(ctx context.Context, event *model.AuditEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.Error().Err(err).Msg("Marshal audit event")
		return
	}

	if err := s.rdb.RPush(ctx, config.AuditQueue, payload).Err(); err != nil {
		s.log.Error().Err(err).
			Str("action", event.Action).
			Str("entity", event.Entity).
			Msg("Queue audit event")
	}

	if err := s.rdb.Publish(ctx, config.AuditChannel, payload).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Publish audit event")
	}
}

// ListEntries retrieves persisted audit entries with pagination.
func (s *AuditService) ListEntries(ctx context.Context, page, perPage int) ([]model.AuditEntry, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}

	entries, total, err := s.auditRepo.ListPaginated(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}
	if entries == nil {
		entries = []model.AuditEntry{}
	}

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
	return entries, pagination, nil
}
