package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

// bcrypt refuses longer inputs.
const maxPasswordBytes = 72

// normalizeUsername is applied wherever a username enters the system, so
// stored and presented names compare equal.
func normalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

func checkPassword(password string) error {
	if password == "" {
		return domain.InvalidInput("password must not be empty")
	}
	if len(password) > maxPasswordBytes {
		return domain.InvalidInput(fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
	}
	return nil
}

// CredentialStore sits in front of the user repository and guarantees that
// plaintext passwords are hashed before anything is persisted.
type CredentialStore struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	now    func() time.Time
}

func NewCredentialStore(repo ports.UserRepository, hasher ports.PasswordHasher) *CredentialStore {
	return &CredentialStore{repo: repo, hasher: hasher, now: time.Now}
}

func (s *CredentialStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, normalizeUsername(username))
}

// Create hashes the password and inserts the user. A taken username yields
// domain.ErrUserExists.
func (s *CredentialStore) Create(ctx context.Context, in ports.NewUserInput) (*domain.User, error) {
	username := normalizeUsername(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.InvalidInput("username and password are required")
	}
	if err := checkPassword(in.Password); err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, domain.InvalidInput(fmt.Sprintf("role must be one of: %s, %s", domain.RoleAdmin, domain.RoleUser))
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Properties:   in.Properties,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update replaces the given fields. A new password is re-hashed; the
// plaintext never reaches the repository. A missing user yields
// domain.ErrUserNotFound.
func (s *CredentialStore) Update(ctx context.Context, username string, in ports.UserUpdateInput) error {
	username = normalizeUsername(username)
	if username == "" {
		return domain.InvalidInput("username is required")
	}
	if in.Password == nil && in.Role == nil && in.Properties == nil {
		return domain.InvalidInput("no fields to update")
	}

	var fields ports.UserFields
	if in.Password != nil {
		if err := checkPassword(*in.Password); err != nil {
			return err
		}
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		fields.PasswordHash = &hash
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			return domain.InvalidInput(fmt.Sprintf("role must be one of: %s, %s", domain.RoleAdmin, domain.RoleUser))
		}
		fields.Role = in.Role
	}
	fields.Properties = in.Properties

	return s.repo.Update(ctx, username, fields)
}

func (s *CredentialStore) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *CredentialStore) Delete(ctx context.Context, username string) error {
	username = normalizeUsername(username)
	if username == "" {
		return domain.InvalidInput("username is required")
	}
	return s.repo.Delete(ctx, username)
}

func (s *CredentialStore) HasAdmin(ctx context.Context) (bool, error) {
	return s.repo.HasAdmin(ctx)
}
