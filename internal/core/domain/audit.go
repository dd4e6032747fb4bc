package domain

import "time"

// AuditAction names an admin mutation recorded in the audit trail.
type AuditAction string

const (
	AuditCreate AuditAction = "create"
	AuditUpdate AuditAction = "update"
	AuditDelete AuditAction = "delete"
)

// AuditEntry records one successful admin mutation.
type AuditEntry struct {
	Action     AuditAction `json:"action"`
	Resource   string      `json:"resource"` // "message" or a menu table identifier
	ResourceID int64       `json:"resource_id"`
	ActorID    int64       `json:"actor_id"`
	At         time.Time   `json:"at"`
}
