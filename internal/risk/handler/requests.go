package handler

import (
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"

	"complyd/internal/risk"
	dErrors "complyd/pkg/domain-errors"
)

// AssessRequest is the HTTP request body for POST /risk/assess.
type AssessRequest struct {
	EntityType string        `json:"entity_type"`
	EntityID   string        `json:"entity_id"`
	Factors    []risk.Factor `json:"factors"`
	Context    *risk.Context `json:"context,omitempty"`
}

// Validate validates and normalizes the request. The scorer assumes
// factors are well formed, so the 1-5 scale is enforced here.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *AssessRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.EntityType = strings.TrimSpace(strings.ToLower(r.EntityType))
	if r.EntityType == "" {
		return dErrors.New(dErrors.CodeValidation, "entity_type is required")
	}
	r.EntityID = strings.TrimSpace(r.EntityID)
	if r.EntityID == "" {
		return dErrors.New(dErrors.CodeValidation, "entity_id is required")
	}

	if len(r.Factors) == 0 {
		return dErrors.New(dErrors.CodeValidation, "at least one risk factor is required")
	}
	for i := range r.Factors {
		f := &r.Factors[i]
		f.Name = strings.TrimSpace(f.Name)
		if f.Name == "" {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("factors[%d].name is required", i))
		}
		f.Category = strings.TrimSpace(strings.ToLower(f.Category))
		if f.Category == "" {
			f.Category = "other"
		}
		if !govalidator.InRangeInt(f.Likelihood, 1, 5) {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("factors[%d].likelihood must be between 1 and 5", i))
		}
		if !govalidator.InRangeInt(f.Impact, 1, 5) {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("factors[%d].impact must be between 1 and 5", i))
		}
	}

	if r.Context != nil && r.Context.PreviousIncidents < 0 {
		return dErrors.New(dErrors.CodeValidation, "context.previous_incidents must not be negative")
	}

	return nil
}
