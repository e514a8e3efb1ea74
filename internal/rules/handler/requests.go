package handler

import (
	"strings"

	dErrors "complyd/pkg/domain-errors"
	platformstrings "complyd/pkg/platform/strings"
)

// CheckRequest is the HTTP request body for POST /compliance/check.
type CheckRequest struct {
	Target     string   `json:"target"`
	TargetType string   `json:"target_type,omitempty"`
	Frameworks []string `json:"frameworks"`
	Content    string   `json:"content,omitempty"`
}

// Validate validates and normalizes the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *CheckRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.Target = strings.TrimSpace(r.Target)
	if r.Target == "" {
		return dErrors.New(dErrors.CodeValidation, "target is required")
	}
	r.TargetType = strings.TrimSpace(strings.ToLower(r.TargetType))

	r.Frameworks = platformstrings.DedupeAndTrim(r.Frameworks)
	if len(r.Frameworks) == 0 {
		return dErrors.New(dErrors.CodeValidation, "at least one framework is required")
	}
	for i, id := range r.Frameworks {
		r.Frameworks[i] = strings.ToLower(id)
	}

	return nil
}

// EvaluatedContent returns the text the rule engine should inspect. Checks
// without an explicit content body fall back to the target descriptor.
func (r *CheckRequest) EvaluatedContent() string {
	if r.Content != "" {
		return r.Content
	}
	return r.Target
}
