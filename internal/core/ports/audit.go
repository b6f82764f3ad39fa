package ports

import (
	"context"

	"github.com/DawoodIsrar/user-management-api/internal/core/domain"
)

// AuditRecorder accepts audit events for asynchronous persistence. Record
// must not block the calling request and must never fail it.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditService processes queued audit events.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}
