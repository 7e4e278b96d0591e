package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mmp/property-portal/internal/core/domain"
)

type stubAuditRepo struct {
	entries []domain.AuditEntry
	err     error
}

func (r *stubAuditRepo) Insert(_ context.Context, entry *domain.AuditEntry) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func TestAuditService_Record(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo)

	entry := domain.AuditEntry{Actor: "alice", Action: domain.AuditLogin, Outcome: domain.AuditOutcomeOK}
	if err := svc.Record(context.Background(), entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.entries) != 1 || repo.entries[0].Actor != "alice" {
		t.Fatalf("expected entry persisted, got %+v", repo.entries)
	}
}

func TestAuditService_RejectsEntryWithoutAction(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo)

	err := svc.Record(context.Background(), domain.AuditEntry{Actor: "alice"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.entries) != 0 {
		t.Fatal("nothing should be persisted")
	}
}

func TestAuditService_WrapsRepositoryError(t *testing.T) {
	svc := NewAuditService(&stubAuditRepo{err: errStorageDown})

	err := svc.Record(context.Background(), domain.AuditEntry{Actor: "alice", Action: domain.AuditAccess})
	if !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}
