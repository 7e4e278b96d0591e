package ports

import (
	"context"

	"github.com/mmp/property-portal/internal/core/domain"
)

// UserFields lists the replaceable fields of a stored user. Nil means
// "leave unchanged".
type UserFields struct {
	PasswordHash *string
	Role         *domain.Role
	Properties   *domain.PropertyGrant
}

// UserRepository is the persistence side of the credential store.
type UserRepository interface {
	// FindByUsername returns domain.ErrUserNotFound when absent.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create returns domain.ErrUserExists on a uniqueness violation.
	Create(ctx context.Context, user *domain.User) error
	// Update returns domain.ErrUserNotFound when no record matched.
	Update(ctx context.Context, username string, fields UserFields) error
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, username string) error
	HasAdmin(ctx context.Context) (bool, error)
}
