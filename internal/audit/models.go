package audit

import (
	"time"

	"github.com/google/uuid"
)

// Category groups events by the analysis operation that produced them.
type Category string

const (
	CategoryPIIScan         Category = "pii_scan"
	CategoryPIIRedact       Category = "pii_redact"
	CategoryComplianceCheck Category = "compliance_check"
	CategoryRiskAssessment  Category = "risk_assessment"
	CategoryCredentialCheck Category = "credential_verify"
)

// Event records one analysis operation. Events are append-only and
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        uuid.UUID
	Timestamp time.Time
	Category  Category
	Action    string
	Target    string
	Outcome   string
	RequestID string
}
