package mongo

import (
	"context"

	"github.com/mmp/property-portal/internal/core/domain"
)

const auditCollection = "audit_log"

// AuditRepository appends security events to the audit log collection.
type AuditRepository struct {
	store
}

func NewAuditRepository(provider DatabaseProvider) *AuditRepository {
	return &AuditRepository{store{provider: provider, name: auditCollection}}
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	if _, err := coll.InsertOne(ctx, entry); err != nil {
		return unavailable("insert audit entry", err)
	}
	return nil
}
