package handler

import (
	"math"

	"complyd/internal/regulation"
	"complyd/internal/rules"
)

// CheckResponse is the HTTP response body for POST /compliance/check.
// Score is the mean of the per-framework scores, rounded to the nearest
// integer.
type CheckResponse struct {
	Score         int                        `json:"score"`
	OverallStatus rules.Status               `json:"overall_status"`
	Results       map[string]FrameworkResult `json:"results"`
	Summary       rules.Summary              `json:"summary"`
}

// FrameworkResult holds the score and findings for one framework.
type FrameworkResult struct {
	Score    int             `json:"score"`
	Findings []rules.Finding `json:"findings"`
}

// FromEvaluation converts an engine evaluation into the response shape.
// The engine reports status per requirement; the percentage scores are a
// presentation concern derived here from finding severities.
func FromEvaluation(eval rules.Evaluation, frameworkIDs []string) CheckResponse {
	resp := CheckResponse{
		OverallStatus: eval.OverallStatus,
		Results:       make(map[string]FrameworkResult, len(frameworkIDs)),
		Summary:       eval.Summary,
	}

	byFramework := make(map[string][]rules.Finding, len(frameworkIDs))
	for _, f := range eval.Findings {
		byFramework[f.Framework] = append(byFramework[f.Framework], f)
	}

	var total int
	for _, id := range frameworkIDs {
		findings := byFramework[id]
		if findings == nil {
			findings = []rules.Finding{}
		}
		score := rules.FrameworkScore(findings)
		resp.Results[id] = FrameworkResult{Score: score, Findings: findings}
		total += score
	}
	if len(frameworkIDs) > 0 {
		resp.Score = int(math.Round(float64(total) / float64(len(frameworkIDs))))
	}

	return resp
}

// FrameworkSummary is one entry of the GET /frameworks listing.
type FrameworkSummary struct {
	ID           string                   `json:"id"`
	Name         string                   `json:"name"`
	FullName     string                   `json:"full_name"`
	Jurisdiction string                   `json:"jurisdiction"`
	Requirements []regulation.Requirement `json:"requirements"`
}

// FrameworksResponse is the HTTP response body for GET /frameworks.
type FrameworksResponse struct {
	Frameworks []FrameworkSummary `json:"frameworks"`
}

// FromCatalog converts the regulation catalog into the listing shape.
func FromCatalog(frameworks []regulation.Framework) FrameworksResponse {
	resp := FrameworksResponse{Frameworks: make([]FrameworkSummary, 0, len(frameworks))}
	for _, fw := range frameworks {
		resp.Frameworks = append(resp.Frameworks, FrameworkSummary{
			ID:           fw.ID,
			Name:         fw.Name,
			FullName:     fw.FullName,
			Jurisdiction: fw.Jurisdiction,
			Requirements: fw.Requirements,
		})
	}
	return resp
}
