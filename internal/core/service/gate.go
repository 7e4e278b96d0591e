package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
	"github.com/mmp/property-portal/internal/pkg/metrics"
)

// Gate is the choke point every resource service calls before a repository
// operation. It applies domain.Authorize, counts the decision and audits
// denials.
type Gate struct {
	audit ports.AuditSink
	log   zerolog.Logger
	now   func() time.Time
}

// NewGate returns a Gate; a nil sink disables auditing.
func NewGate(audit ports.AuditSink, log zerolog.Logger) *Gate {
	if audit == nil {
		audit = discardSink{}
	}
	return &Gate{audit: audit, log: log, now: time.Now}
}

// Check allows or denies access to a.
func (g *Gate) Check(ctx context.Context, claims *domain.Claims, a domain.Access) error {
	err := domain.Authorize(claims, a)
	metrics.AuthzDecisionsTotal.WithLabelValues(decisionLabel(err), scopeLabel(a)).Inc()
	if err == nil {
		return nil
	}

	actor := ""
	if claims != nil {
		actor = claims.Subject
	}
	g.log.Info().
		Str("actor", actor).
		Str("property", a.Property).
		Bool("admin_only", a.AdminOnly).
		Msg("access denied")
	g.audit.Enqueue(domain.AuditEntry{
		Actor:    actor,
		Action:   domain.AuditAccess,
		Property: a.Property,
		Outcome:  domain.AuditOutcomeDeny,
		Detail:   err.Error(),
		RemoteIP: clientIP(ctx),
		At:       g.now().UTC(),
	})
	return err
}

// CheckStored authorizes a write on an existing record. The record's own
// property decides; a differing request-supplied property means the record
// does not exist within that property.
func (g *Gate) CheckStored(ctx context.Context, claims *domain.Claims, requested, stored string, adminOnly bool) error {
	if requested != "" {
		if err := g.Check(ctx, claims, domain.Access{Property: requested, AdminOnly: adminOnly}); err != nil {
			return err
		}
		if requested != stored {
			return domain.ErrResourceNotFound
		}
	}
	return g.Check(ctx, claims, domain.Access{Property: stored, AdminOnly: adminOnly})
}

func decisionLabel(err error) string {
	switch {
	case err == nil:
		return "allow"
	case errors.Is(err, domain.ErrUnauthenticated):
		return "unauthenticated"
	default:
		return "forbidden"
	}
}

func scopeLabel(a domain.Access) string {
	switch {
	case a.AdminOnly:
		return "admin"
	case a.Property != "":
		return "property"
	default:
		return "any"
	}
}

type discardSink struct{}

func (discardSink) Enqueue(domain.AuditEntry) {}
