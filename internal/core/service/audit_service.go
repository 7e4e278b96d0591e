package service

import (
	"context"
	"fmt"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

// AuditService persists audit entries handed over by the dispatcher workers.
type AuditService struct {
	repo ports.AuditRepository
}

func NewAuditService(repo ports.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) Record(ctx context.Context, entry domain.AuditEntry) error {
	if entry.Action == "" {
		return domain.InvalidInput("audit entry without action")
	}
	if err := s.repo.Insert(ctx, &entry); err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}
	return nil
}
