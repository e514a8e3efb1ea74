package handler

import "complyd/internal/pii"

// maxSamplesPerType bounds how many redacted samples each finding carries.
const maxSamplesPerType = 3

// ScanResponse is the HTTP response body for POST /pii/scan.
type ScanResponse struct {
	PIIDetected     bool      `json:"pii_detected"`
	RiskLevel       string    `json:"risk_level"`
	RuleBased       RuleBased `json:"rule_based"`
	Recommendations []string  `json:"recommendations"`
}

// RuleBased groups matches by pattern type.
type RuleBased struct {
	Findings   []TypeFinding `json:"findings"`
	TotalItems int           `json:"total_items"`
}

// TypeFinding summarizes all matches of one pattern type. Samples are
// redacted values, never raw ones.
type TypeFinding struct {
	Type    string   `json:"type"`
	Count   int      `json:"count"`
	Risk    string   `json:"risk"`
	Samples []string `json:"samples"`
}

// FromScanResult converts a detector result into the response shape.
// Findings keep the first-seen order of their types within the content.
func FromScanResult(result pii.Result) ScanResponse {
	resp := ScanResponse{
		PIIDetected:     result.HasPII,
		RiskLevel:       overallRisk(result),
		RuleBased:       RuleBased{Findings: []TypeFinding{}, TotalItems: len(result.Matches)},
		Recommendations: result.Recommendations,
	}
	if resp.Recommendations == nil {
		resp.Recommendations = []string{}
	}

	index := map[string]int{}
	for _, m := range result.Matches {
		i, seen := index[m.Type]
		if !seen {
			index[m.Type] = len(resp.RuleBased.Findings)
			resp.RuleBased.Findings = append(resp.RuleBased.Findings, TypeFinding{
				Type:    m.Type,
				Risk:    string(m.Severity),
				Samples: []string{},
			})
			i = index[m.Type]
		}
		f := &resp.RuleBased.Findings[i]
		f.Count++
		if len(f.Samples) < maxSamplesPerType {
			f.Samples = append(f.Samples, m.RedactedValue)
		}
	}
	return resp
}

// overallRisk collapses match severities into the three-level scan verdict.
func overallRisk(result pii.Result) string {
	if len(result.BySeverity[pii.SeverityCritical]) > 0 || len(result.BySeverity[pii.SeverityHigh]) > 0 {
		return "high"
	}
	if len(result.BySeverity[pii.SeverityMedium]) > 0 {
		return "medium"
	}
	return "low"
}
