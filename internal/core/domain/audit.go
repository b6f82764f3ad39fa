package domain

import "time"

// Audit actions recorded by the services.
const (
	AuditActionRegister   = "user.register"
	AuditActionLogin      = "user.login"
	AuditActionRoleAssign = "role.assign"
)

// Audit outcomes.
const (
	AuditOutcomeSuccess = "success"
	AuditOutcomeFailure = "failure"
)

// AuditEvent records a single auth-relevant action. Subject is the email or
// user id the action applies to; events for the same subject are processed in
// order.
type AuditEvent struct {
	Subject   string
	Action    string
	Outcome   string
	Detail    string
	Timestamp time.Time
}
