package rules

import "complyd/internal/regulation"

// Status is the verdict for a single requirement. needs_review is a
// first-class successful outcome: it means the engine could not determine
// compliance with confidence and a human must look.
type Status string

const (
	StatusCompliant    Status = "compliant"
	StatusNonCompliant Status = "non_compliant"
	StatusNeedsReview  Status = "needs_review"
)

// Finding is one evaluation verdict for a (content, requirement) pair.
// Findings never mutate after creation.
type Finding struct {
	ID          string              `json:"id"`
	Framework   string              `json:"framework"`
	Requirement string              `json:"requirement"`
	Severity    regulation.Severity `json:"severity"`
	Status      Status              `json:"status"`
	Details     string              `json:"details"`
	Remediation string              `json:"remediation,omitempty"`
}

// Summary counts findings by status.
type Summary struct {
	Total        int `json:"total"`
	Compliant    int `json:"compliant"`
	NonCompliant int `json:"non_compliant"`
	NeedsReview  int `json:"needs_review"`
}

// Evaluation is the result of checking content against a set of frameworks.
type Evaluation struct {
	OverallStatus Status    `json:"overall_status"`
	Findings      []Finding `json:"findings"`
	Summary       Summary   `json:"summary"`
}
