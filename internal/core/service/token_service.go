package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/pkg/metrics"
)

// DefaultTokenTTL is the absolute session lifetime.
const DefaultTokenTTL = 8 * time.Hour

// sessionClaims is the JWT payload: sub, iat, exp plus role and grant.
type sessionClaims struct {
	jwt.RegisteredClaims

	Role       domain.Role          `json:"role"`
	Properties domain.PropertyGrant `json:"properties"`
}

// TokenService issues and verifies HS256 session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	log    zerolog.Logger
}

func NewTokenService(secret string, ttl time.Duration, log zerolog.Logger) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now, log: log}
}

// TTL is the lifetime given to every issued token.
func (s *TokenService) TTL() time.Duration { return s.ttl }

// Issue signs a token carrying the user's current role and grant.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := s.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Role:       user.Role,
		Properties: user.Properties,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify returns the decoded claims, or false for any structural, signature
// or expiry failure.
func (s *TokenService) Verify(token string) (*domain.Claims, bool) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || claims.Subject == "" {
		s.log.Debug().Err(err).Msg("token rejected")
		metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
		return nil, false
	}

	metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
	return &domain.Claims{
		Subject:    claims.Subject,
		Role:       claims.Role,
		Properties: claims.Properties,
	}, true
}
