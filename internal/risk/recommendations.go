package risk

import (
	"fmt"
	"strings"

	pstrings "complyd/pkg/platform/strings"
)

// categoryDefaults are the fallback recommendation templates used when a
// high-scoring factor carries no mitigations of its own.
var categoryDefaults = map[string]string{
	"compliance":   "Review %s against applicable regulatory requirements and document the outcome",
	"operational":  "Add monitoring and a documented runbook covering %s",
	"financial":    "Set exposure limits and escalation thresholds for %s",
	"reputational": "Prepare a communication plan addressing %s",
}

const genericDefault = "Assign an owner and a remediation deadline for %s"

// recommendations derives remediation advice from high-scoring factors plus
// entity-type-specific rules.
func recommendations(entityType string, scored []ScoredFactor) []string {
	var recs []string

	complianceAttention := false
	for _, f := range scored {
		if f.Score < attentionThreshold {
			continue
		}
		if f.Category == "compliance" {
			complianceAttention = true
		}
		if len(f.Mitigations) > 0 {
			recs = append(recs, f.Mitigations[0])
			continue
		}
		tmpl, ok := categoryDefaults[f.Category]
		if !ok {
			tmpl = genericDefault
		}
		recs = append(recs, fmt.Sprintf(tmpl, f.Name))
	}

	switch strings.ToLower(entityType) {
	case "customer":
		if complianceAttention {
			recs = append(recs, "Apply Enhanced Due Diligence (EDD) before continuing the customer relationship")
		}
	case "transaction":
		for _, f := range scored {
			if f.Category == "financial" && f.Score >= attentionThreshold {
				recs = append(recs, "Hold the transaction pending a suspicious activity review")
				break
			}
		}
	case "vendor":
		for _, f := range scored {
			if f.Score >= attentionThreshold {
				recs = append(recs, "Require contractual audit rights and periodic reassessment of the vendor")
				break
			}
		}
	}

	return pstrings.DedupeAndTrim(recs)
}

// regulatoryImplications is a deterministic lookup from the assessed level,
// entity type, and jurisdiction to canned regulatory citations. It is a
// table, not inference.
func regulatoryImplications(level Level, entityType, jurisdiction string) []string {
	var out []string
	elevated := level == LevelHigh || level == LevelCritical
	entityType = strings.ToLower(entityType)
	jurisdiction = strings.ToUpper(jurisdiction)

	if elevated && entityType == "customer" {
		out = append(out, "AML: enhanced due diligence required for high-risk customers (AMLD5 Art. 18)")
	}
	if elevated && (jurisdiction == "EU" || jurisdiction == "EEA") {
		out = append(out, "GDPR: high-risk processing may require a Data Protection Impact Assessment (Art. 35)")
	}
	if elevated && (entityType == "identity" || entityType == "credential") {
		out = append(out, "eIDAS: identity proofing at assurance level high is expected for this risk profile")
	}
	if level == LevelCritical {
		out = append(out, "Senior management approval required before proceeding (risk acceptance policy)")
	}
	return out
}
