package ports

import (
	"context"

	"github.com/mmp/property-portal/internal/core/domain"
)

// PasswordHasher is a salted one-way hash with verification.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify never fails loudly: a malformed hash is simply no match.
	Verify(plaintext, hash string) bool
}

// TokenVerifier decodes a session token. Any failure is reported as !ok.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, bool)
}

// LoginInput is the DTO passed from the transport layer to AuthService.
type LoginInput struct {
	Username string
	Password string
	RemoteIP string
}

// LoginResult carries the issued token alongside the authenticated user.
type LoginResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	// Me re-reads the live user record behind the claims.
	Me(ctx context.Context, claims *domain.Claims) (*domain.User, error)
}

// NewUserInput carries a plaintext password; it is hashed before storage.
type NewUserInput struct {
	Username   string
	Password   string
	Role       domain.Role
	Properties domain.PropertyGrant
}

// UserUpdateInput replaces the non-nil fields of a user.
type UserUpdateInput struct {
	Password   *string
	Role       *domain.Role
	Properties *domain.PropertyGrant
}

// UserAdminService is the admin-only user management surface.
type UserAdminService interface {
	List(ctx context.Context, claims *domain.Claims) ([]domain.Summary, error)
	Create(ctx context.Context, claims *domain.Claims, in NewUserInput) (*domain.User, error)
	Update(ctx context.Context, claims *domain.Claims, username string, in UserUpdateInput) error
	Delete(ctx context.Context, claims *domain.Claims, username string) error
}
