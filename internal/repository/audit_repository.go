package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studytrack/studytrack-backend/internal/model"
)

// AuditRepository handles audit log data access.
type AuditRepository struct {
	pool *pgxpool.Pool
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

// Insert persists one audit event. Called from the audit worker, not handlers.
func (r *AuditRepository) Insert(ctx context.Context, e *model.AuditEvent) error {
	var detail *string
	if e.Detail != "" {
		detail = &e.Detail
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_log (actor_id, action, entity, entity_id, detail)
		 VALUES ($1, $2, $3, $4, $5)`,
		e.ActorID, e.Action, e.Entity, e.EntityID, detail,
	)
	return err
}

// ListPaginated retrieves audit entries newest-first.
func (r *AuditRepository) ListPaginated(ctx context.Context, limit, offset int) ([]model.AuditEntry, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM audit_log`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, actor_id, action, entity, entity_id, detail, created_at
		 FROM audit_log ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []model.AuditEntry
	for rows.Next() {
		var e model.AuditEntry
		if err := rows.Scan(&e.ID, &e.ActorID, &e.Action, &e.Entity, &e.EntityID, &e.Detail, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}
