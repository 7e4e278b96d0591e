package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs shared by the service tests
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu      sync.Mutex
	users   map[string]*domain.User
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Username]; ok {
		return domain.ErrUserExists
	}
	clone := *user
	r.users[user.Username] = &clone
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, username string, f ports.UserFields) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	if f.PasswordHash != nil {
		u.PasswordHash = *f.PasswordHash
	}
	if f.Role != nil {
		u.Role = *f.Role
	}
	if f.Properties != nil {
		u.Properties = *f.Properties
	}
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[username]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, username)
	return nil
}

func (r *stubUserRepo) HasAdmin(_ context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Role == domain.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

// recordingSink captures enqueued audit entries.
type recordingSink struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (s *recordingSink) Enqueue(e domain.AuditEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
}

func (s *recordingSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Action+":"+e.Outcome)
	}
	return out
}

type stubThrottle struct {
	blocked  bool
	err      error
	failures map[string]int
	resets   int
}

func newStubThrottle() *stubThrottle {
	return &stubThrottle{failures: make(map[string]int)}
}

func (t *stubThrottle) Blocked(_ context.Context, _ string) (bool, error) {
	return t.blocked, t.err
}

func (t *stubThrottle) RecordFailure(_ context.Context, username string) error {
	t.failures[username]++
	return t.err
}

func (t *stubThrottle) Reset(_ context.Context, _ string) error {
	t.resets++
	return t.err
}

var errStorageDown = errors.Join(domain.ErrStorageUnavailable, errors.New("connection refused"))

func testLogger() zerolog.Logger { return zerolog.Nop() }

func testGate() (*Gate, *recordingSink) {
	sink := &recordingSink{}
	return NewGate(sink, zerolog.Nop()), sink
}

func userClaims(props ...string) *domain.Claims {
	return &domain.Claims{Subject: "alice", Role: domain.RoleUser, Properties: domain.Properties(props...)}
}

func adminClaims() *domain.Claims {
	return &domain.Claims{Subject: "root", Role: domain.RoleAdmin, Properties: domain.AllProperties()}
}
