package domain

import "time"

// Audit actions.
const (
	AuditLogin        = "login"
	AuditAccess       = "access"
	AuditUserCreate   = "user.create"
	AuditUserUpdate   = "user.update"
	AuditUserDelete   = "user.delete"
	AuditBootstrap    = "bootstrap"
	AuditOutcomeAllow = "allowed"
	AuditOutcomeDeny  = "denied"
	AuditOutcomeOK    = "ok"
	AuditOutcomeFail  = "failed"
)

// AuditEntry records a security-relevant event.
type AuditEntry struct {
	Actor    string    `json:"actor" bson:"actor"`
	Action   string    `json:"action" bson:"action"`
	Property string    `json:"property,omitempty" bson:"property,omitempty"`
	Outcome  string    `json:"outcome" bson:"outcome"`
	Detail   string    `json:"detail,omitempty" bson:"detail,omitempty"`
	RemoteIP string    `json:"remote_ip,omitempty" bson:"remote_ip,omitempty"`
	At       time.Time `json:"at" bson:"at"`
}
