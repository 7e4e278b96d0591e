package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

func newUserServiceFixture() (*UserService, *stubUserRepo, *recordingSink) {
	repo := newStubUserRepo()
	store := NewCredentialStore(repo, NewBcryptHasher(bcrypt.MinCost))
	gate, _ := testGate()
	sink := &recordingSink{}
	return NewUserService(store, gate, sink, testLogger()), repo, sink
}

func TestUserService_AdminOnly(t *testing.T) {
	svc, _, _ := newUserServiceFixture()
	ctx := context.Background()
	user := userClaims("A")

	if _, err := svc.List(ctx, user); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("list: expected forbidden, got %v", err)
	}
	if _, err := svc.Create(ctx, user, ports.NewUserInput{Username: "x", Password: "y"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("create: expected forbidden, got %v", err)
	}
	if err := svc.Delete(ctx, user, "x"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("delete: expected forbidden, got %v", err)
	}
	if _, err := svc.List(ctx, nil); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("list without claims: expected unauthenticated, got %v", err)
	}
}

func TestUserService_CreateHashesAndHidesPassword(t *testing.T) {
	svc, repo, sink := newUserServiceFixture()
	ctx := context.Background()

	user, err := svc.Create(ctx, adminClaims(), ports.NewUserInput{
		Username:   "bob",
		Password:   "hunter2",
		Properties: domain.Properties("A"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %s", user.Role)
	}
	stored, _ := repo.FindByUsername(ctx, "bob")
	if stored.PasswordHash == "" || stored.PasswordHash == "hunter2" {
		t.Fatalf("password not hashed: %q", stored.PasswordHash)
	}

	summaries, err := svc.List(ctx, adminClaims())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Username != "bob" {
		t.Fatalf("unexpected summaries: %+v", summaries)
	}

	if len(sink.entries) != 1 || sink.entries[0].Action != domain.AuditUserCreate {
		t.Fatalf("expected user.create audit, got %v", sink.actions())
	}
}

func TestUserService_CreateDuplicate(t *testing.T) {
	svc, _, sink := newUserServiceFixture()
	ctx := context.Background()
	in := ports.NewUserInput{Username: "bob", Password: "pw"}

	if _, err := svc.Create(ctx, adminClaims(), in); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, adminClaims(), in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected user exists, got %v", err)
	}
	if got := sink.entries[1].Outcome; got != domain.AuditOutcomeFail {
		t.Fatalf("expected failed outcome, got %s", got)
	}
}

func TestUserService_CreateRejectsUnknownRole(t *testing.T) {
	svc, _, _ := newUserServiceFixture()
	_, err := svc.Create(context.Background(), adminClaims(), ports.NewUserInput{Username: "bob", Password: "pw", Role: "owner"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestUserService_Update(t *testing.T) {
	svc, repo, _ := newUserServiceFixture()
	ctx := context.Background()
	if _, err := svc.Create(ctx, adminClaims(), ports.NewUserInput{Username: "bob", Password: "old"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	before, _ := repo.FindByUsername(ctx, "bob")

	pw := "new"
	role := domain.RoleAdmin
	grant := domain.AllProperties()
	if err := svc.Update(ctx, adminClaims(), "bob", ports.UserUpdateInput{Password: &pw, Role: &role, Properties: &grant}); err != nil {
		t.Fatalf("update: %v", err)
	}

	after, _ := repo.FindByUsername(ctx, "bob")
	if after.PasswordHash == before.PasswordHash || after.PasswordHash == "new" {
		t.Fatalf("expected a fresh hash, got %q", after.PasswordHash)
	}
	if after.Role != domain.RoleAdmin || !after.Properties.IsWildcard() {
		t.Fatalf("unexpected user after update: %+v", after)
	}

	if err := svc.Update(ctx, adminClaims(), "bob", ports.UserUpdateInput{}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("empty update: expected invalid input, got %v", err)
	}
	if err := svc.Update(ctx, adminClaims(), "ghost", ports.UserUpdateInput{Password: &pw}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("missing user: expected not found, got %v", err)
	}
}

func TestUserService_RejectsOverlongPassword(t *testing.T) {
	svc, repo, _ := newUserServiceFixture()
	ctx := context.Background()
	long := strings.Repeat("x", 73)

	if _, err := svc.Create(ctx, adminClaims(), ports.NewUserInput{Username: "bob", Password: long}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("create: expected invalid input, got %v", err)
	}
	if _, err := repo.FindByUsername(ctx, "bob"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("nothing may be stored, got %v", err)
	}

	if _, err := svc.Create(ctx, adminClaims(), ports.NewUserInput{Username: "bob", Password: strings.Repeat("x", 72)}); err != nil {
		t.Fatalf("72 bytes must be accepted: %v", err)
	}
	if err := svc.Update(ctx, adminClaims(), "bob", ports.UserUpdateInput{Password: &long}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("update: expected invalid input, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	svc, _, _ := newUserServiceFixture()
	ctx := context.Background()
	if _, err := svc.Create(ctx, adminClaims(), ports.NewUserInput{Username: "bob", Password: "pw"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, adminClaims(), "bob"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, adminClaims(), "bob"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("second delete: expected not found, got %v", err)
	}
}
