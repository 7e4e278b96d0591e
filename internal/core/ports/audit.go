package ports

import (
	"context"

	"github.com/mmp/property-portal/internal/core/domain"
)

// AuditSink accepts audit entries without blocking the caller.
type AuditSink interface {
	Enqueue(entry domain.AuditEntry)
}

// AuditRecorder persists a single audit entry; it runs on a worker.
type AuditRecorder interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
}

type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}
