package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

var adminOnly = domain.Access{AdminOnly: true}

// UserService exposes credential store administration to admins.
type UserService struct {
	store *CredentialStore
	gate  *Gate
	audit ports.AuditSink
	log   zerolog.Logger
	now   func() time.Time
}

func NewUserService(store *CredentialStore, gate *Gate, audit ports.AuditSink, log zerolog.Logger) *UserService {
	if audit == nil {
		audit = discardSink{}
	}
	return &UserService{store: store, gate: gate, audit: audit, log: log, now: time.Now}
}

func (s *UserService) List(ctx context.Context, claims *domain.Claims) ([]domain.Summary, error) {
	if err := s.gate.Check(ctx, claims, adminOnly); err != nil {
		return nil, err
	}
	users, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Summary, 0, len(users))
	for _, u := range users {
		out = append(out, u.Summary())
	}
	return out, nil
}

func (s *UserService) Create(ctx context.Context, claims *domain.Claims, in ports.NewUserInput) (*domain.User, error) {
	if err := s.gate.Check(ctx, claims, adminOnly); err != nil {
		return nil, err
	}
	user, err := s.store.Create(ctx, in)
	s.record(ctx, claims, domain.AuditUserCreate, in.Username, err)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, claims *domain.Claims, username string, in ports.UserUpdateInput) error {
	if err := s.gate.Check(ctx, claims, adminOnly); err != nil {
		return err
	}
	err := s.store.Update(ctx, username, in)
	s.record(ctx, claims, domain.AuditUserUpdate, username, err)
	return err
}

func (s *UserService) Delete(ctx context.Context, claims *domain.Claims, username string) error {
	if err := s.gate.Check(ctx, claims, adminOnly); err != nil {
		return err
	}
	err := s.store.Delete(ctx, username)
	s.record(ctx, claims, domain.AuditUserDelete, username, err)
	return err
}

func (s *UserService) record(ctx context.Context, claims *domain.Claims, action, target string, err error) {
	outcome := domain.AuditOutcomeOK
	if err != nil {
		outcome = domain.AuditOutcomeFail
	}
	s.audit.Enqueue(domain.AuditEntry{
		Actor:    claims.Subject,
		Action:   action,
		Outcome:  outcome,
		Detail:   "target=" + target,
		RemoteIP: clientIP(ctx),
		At:       s.now().UTC(),
	})
	s.log.Info().
		Str("actor", claims.Subject).
		Str("action", action).
		Str("target", target).
		Str("outcome", outcome).
		Msg("user administration")
}
