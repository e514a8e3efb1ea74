// Package rules evaluates content against the regulation catalog using
// per-requirement keyword heuristics. The engine is pure: it holds only
// read-only reference data and is safe for concurrent use.
package rules

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"complyd/internal/regulation"
)

// Engine evaluates content against catalog frameworks.
type Engine struct {
	catalog *regulation.Catalog
}

// NewEngine creates an engine over the given catalog.
func NewEngine(catalog *regulation.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Evaluate runs every requirement of every selected framework against the
// content. Each requirement yields exactly one Finding: requirements without
// a specific evaluator default to needs_review rather than being dropped.
// An unknown framework id is the caller's validation failure and returns an
// error before any evaluation happens.
func (e *Engine) Evaluate(content string, frameworkIDs []string) (Evaluation, error) {
	frameworks := make([]regulation.Framework, 0, len(frameworkIDs))
	for _, id := range frameworkIDs {
		fw, ok := e.catalog.Framework(id)
		if !ok {
			return Evaluation{}, fmt.Errorf("unknown framework %q", id)
		}
		frameworks = append(frameworks, fw)
	}

	lowered := strings.ToLower(content)

	var findings []Finding
	for _, fw := range frameworks {
		for _, req := range fw.Requirements {
			eval, ok := evaluators[req.ID]
			if !ok {
				eval = defaultVerdict
			}
			v := eval(lowered)
			findings = append(findings, Finding{
				ID:          uuid.NewString(),
				Framework:   fw.ID,
				Requirement: req.ID,
				Severity:    req.Severity,
				Status:      v.status,
				Details:     v.details,
				Remediation: v.remediation,
			})
		}
	}

	summary := Summary{Total: len(findings)}
	for _, f := range findings {
		switch f.Status {
		case StatusCompliant:
			summary.Compliant++
		case StatusNonCompliant:
			summary.NonCompliant++
		case StatusNeedsReview:
			summary.NeedsReview++
		}
	}

	return Evaluation{
		OverallStatus: overallStatus(summary),
		Findings:      findings,
		Summary:       summary,
	}, nil
}

// overallStatus applies the strict priority chain: any non_compliant finding
// dominates, then any needs_review, and only a fully compliant set is
// compliant.
func overallStatus(s Summary) Status {
	switch {
	case s.NonCompliant > 0:
		return StatusNonCompliant
	case s.NeedsReview > 0:
		return StatusNeedsReview
	default:
		return StatusCompliant
	}
}

// FrameworkScore derives a 0-100 score from the findings of one framework.
// Non-compliant findings deduct their full severity weight; needs_review
// findings deduct half, reflecting unresolved risk. The engine itself only
// produces statuses; this mapping exists for callers that report percentage
// scores.
func FrameworkScore(findings []Finding) int {
	score := 100.0
	for _, f := range findings {
		w := severityWeight(f.Severity)
		switch f.Status {
		case StatusNonCompliant:
			score -= w
		case StatusNeedsReview:
			score -= w / 2
		}
	}
	if score < 0 {
		return 0
	}
	return int(score)
}

func severityWeight(s regulation.Severity) float64 {
	switch s {
	case regulation.SeverityCritical:
		return 25
	case regulation.SeverityHigh:
		return 15
	case regulation.SeverityMedium:
		return 10
	default:
		return 5
	}
}
