package model

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions recorded by the admin surface.
const (
	AuditActionCreate   = "create"
	AuditActionUpdate   = "update"
	AuditActionDelete   = "delete"
	AuditActionComplete = "complete"
	AuditActionLock     = "lock"
	AuditActionUnlock   = "unlock"
	AuditActionImport   = "import"
)

// AuditEvent is the wire payload queued on Redis and published to the
// live activity channel.
type AuditEvent struct {
	ActorID  uuid.UUID `json:"actor_id"`
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID string    `json:"entity_id"`
	Detail   string    `json:"detail,omitempty"`
}

// AuditEntry is a persisted audit_log row.
type AuditEntry struct {
	ID        int64     `json:"id"`
	ActorID   uuid.UUID `json:"actor_id"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id"`
	Detail    *string   `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
