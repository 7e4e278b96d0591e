package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
	"github.com/mmp/property-portal/internal/pkg/metrics"
)

// LoginThrottle abstracts the failed-login counter (Redis).
type LoginThrottle interface {
	Blocked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// BootstrapAccount is the fallback admin created when no admin exists.
type BootstrapAccount struct {
	Username string
	Password string
}

// AuthService implements login, identity refresh and session bootstrap.
type AuthService struct {
	store     *CredentialStore
	hasher    ports.PasswordHasher
	tokens    *TokenService
	throttle  LoginThrottle
	audit     ports.AuditSink
	bootstrap BootstrapAccount
	log       zerolog.Logger

	bootstrapped atomic.Bool
	// timingHash is compared against for unknown usernames so their latency
	// stays close to a wrong password.
	timingHash func() string
	now        func() time.Time
}

// NewAuthService wires the auth use cases. throttle and audit may be nil.
func NewAuthService(
	store *CredentialStore,
	hasher ports.PasswordHasher,
	tokens *TokenService,
	throttle LoginThrottle,
	audit ports.AuditSink,
	bootstrap BootstrapAccount,
	log zerolog.Logger,
) *AuthService {
	if audit == nil {
		audit = discardSink{}
	}
	return &AuthService{
		store:     store,
		hasher:    hasher,
		tokens:    tokens,
		throttle:  throttle,
		audit:     audit,
		bootstrap: bootstrap,
		log:       log,
		timingHash: sync.OnceValue(func() string {
			hash, _ := hasher.Hash("timing-equalizer")
			return hash
		}),
		now: time.Now,
	}
}

// Login verifies the credentials and issues a session token. Unknown users
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	in.Username = normalizeUsername(in.Username)
	if in.Username == "" || in.Password == "" {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_input").Inc()
		return nil, domain.InvalidInput("username and password are required")
	}

	// 1. Make sure the system is recoverable before the first login.
	if !s.bootstrapped.Load() {
		if err := s.EnsureBootstrapAdmin(ctx); err != nil {
			s.log.Warn().Err(err).Msg("bootstrap admin check failed")
		}
	}

	// 2. Throttle check; a throttle outage fails open.
	if s.throttle != nil {
		blocked, err := s.throttle.Blocked(ctx, in.Username)
		if err != nil {
			s.log.Warn().Err(err).Str("username", in.Username).Msg("login throttle check failed, continuing")
		} else if blocked {
			metrics.LoginAttemptsTotal.WithLabelValues("throttled").Inc()
			s.auditLogin(in, domain.AuditOutcomeDeny, "throttled")
			return nil, domain.ErrTooManyAttempts
		}
	}

	// 3. Look up and verify.
	user, err := s.store.FindByUsername(ctx, in.Username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	if user == nil {
		s.hasher.Verify(in.Password, s.timingHash())
		return nil, s.loginFailed(ctx, in)
	}
	if !s.hasher.Verify(in.Password, user.PasswordHash) {
		return nil, s.loginFailed(ctx, in)
	}

	// 4. Issue.
	token, err := s.tokens.Issue(user)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, in.Username); err != nil {
			s.log.Warn().Err(err).Str("username", in.Username).Msg("failed to reset login throttle")
		}
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.auditLogin(in, domain.AuditOutcomeOK, "")
	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("login succeeded")

	return &ports.LoginResult{Token: token, User: user}, nil
}

func (s *AuthService) loginFailed(ctx context.Context, in ports.LoginInput) error {
	metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
	if s.throttle != nil {
		if err := s.throttle.RecordFailure(ctx, in.Username); err != nil {
			s.log.Warn().Err(err).Str("username", in.Username).Msg("failed to record login failure")
		}
	}
	s.auditLogin(in, domain.AuditOutcomeFail, "invalid credentials")
	return domain.ErrInvalidCredentials
}

func (s *AuthService) auditLogin(in ports.LoginInput, outcome, detail string) {
	s.audit.Enqueue(domain.AuditEntry{
		Actor:    in.Username,
		Action:   domain.AuditLogin,
		Outcome:  outcome,
		Detail:   detail,
		RemoteIP: in.RemoteIP,
		At:       s.now().UTC(),
	})
}

// Me returns the live user record behind claims, bypassing the snapshot in
// the token. A user deleted since issuance is treated as unauthenticated.
func (s *AuthService) Me(ctx context.Context, claims *domain.Claims) (*domain.User, error) {
	if claims == nil {
		return nil, domain.ErrUnauthenticated
	}
	user, err := s.store.FindByUsername(ctx, claims.Subject)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// EnsureBootstrapAdmin creates the fallback admin when no admin account
// exists. It is idempotent and safe to race. It only records success once an
// admin is present, so a failed attempt is retried on the next login.
func (s *AuthService) EnsureBootstrapAdmin(ctx context.Context) error {
	if s.bootstrapped.Load() {
		return nil
	}

	has, err := s.store.HasAdmin(ctx)
	if err != nil {
		return err
	}
	if has {
		s.bootstrapped.Store(true)
		return nil
	}

	_, err = s.store.Create(ctx, ports.NewUserInput{
		Username:   s.bootstrap.Username,
		Password:   s.bootstrap.Password,
		Role:       domain.RoleAdmin,
		Properties: domain.AllProperties(),
	})
	switch {
	case errors.Is(err, domain.ErrUserExists):
		// Either a concurrent bootstrap won, or a non-admin holds the name.
		has, herr := s.store.HasAdmin(ctx)
		if herr != nil {
			return herr
		}
		if !has {
			return fmt.Errorf("bootstrap username %q is held by a non-admin account: %w", s.bootstrap.Username, err)
		}
	case err != nil:
		return err
	default:
		metrics.BootstrapAdminsCreatedTotal.Inc()
		s.audit.Enqueue(domain.AuditEntry{
			Actor:   s.bootstrap.Username,
			Action:  domain.AuditBootstrap,
			Outcome: domain.AuditOutcomeOK,
			At:      s.now().UTC(),
		})
		s.log.Warn().
			Str("username", s.bootstrap.Username).
			Msg("bootstrap admin created with the configured default password; rotate it now")
	}

	s.bootstrapped.Store(true)
	return nil
}
