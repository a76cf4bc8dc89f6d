package config

import (
	"fmt"

	"github.com/google/uuid"
)

// AuditQueue is the Redis list consumed by the audit worker.
const AuditQueue = "audit_events_queue"

// AuditChannel is the Redis PubSub channel carrying live audit events.
const AuditChannel = "audit:events"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// UserSessionKey returns the cache key holding a user's active session JTI.
func (r *CacheKeyStruct) UserSessionKey(userID uuid.UUID) string {
	return fmt.Sprintf("login:%s", userID)
}

// DashboardSummaryKey returns the cache key for the dashboard summary payload.
func (r *CacheKeyStruct) DashboardSummaryKey() string {
	return "dashboard:summary"
}

var CacheKey = NewCacheKeyStruct()
