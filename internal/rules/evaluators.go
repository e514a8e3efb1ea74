package rules

import "strings"

// verdict is what a requirement evaluator produces before it is wrapped into
// a Finding.
type verdict struct {
	status      Status
	details     string
	remediation string
}

// evaluator inspects a lower-cased copy of the content and renders a verdict
// for one specific requirement. These are deliberately coarse keyword
// heuristics: false positives and negatives are expected, and the contract
// is "flag for human review", not authoritative determination.
type evaluator func(content string) verdict

// defaultVerdict is returned for any requirement without a specific
// evaluator. Every requirement must yield exactly one Finding, so
// unrecognized requirements fall through to needs_review rather than being
// dropped.
func defaultVerdict(string) verdict {
	return verdict{
		status:  StatusNeedsReview,
		details: "no automated evaluator for this requirement; manual review recommended",
	}
}

func containsAny(content string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(content, t) {
			return true
		}
	}
	return false
}

// evaluators is the strategy map from requirement id to its evaluator.
var evaluators = map[string]evaluator{
	"gdpr-consent": func(c string) verdict {
		switch {
		case strings.Contains(c, "consent") && containsAny(c, "checkbox", "agreement"):
			return verdict{status: StatusCompliant, details: "consent capture with affirmative action detected"}
		case strings.Contains(c, "personal") && !strings.Contains(c, "consent"):
			return verdict{
				status:      StatusNonCompliant,
				details:     "personal data processing referenced without any consent mechanism",
				remediation: "add an explicit consent step (checkbox or signed agreement) before processing personal data",
			}
		default:
			return verdict{status: StatusNeedsReview, details: "consent handling unclear from content"}
		}
	},
	"gdpr-data-minimization": func(c string) verdict {
		switch {
		case containsAny(c, "minimiz", "only necessary", "data inventory"):
			return verdict{status: StatusCompliant, details: "data minimization practice referenced"}
		case containsAny(c, "collect all", "collect everything", "store everything"):
			return verdict{
				status:      StatusNonCompliant,
				details:     "content indicates indiscriminate data collection",
				remediation: "limit collected fields to what the stated purpose requires",
			}
		default:
			return verdict{status: StatusNeedsReview, details: "collection scope unclear from content"}
		}
	},
	"gdpr-right-erasure": func(c string) verdict {
		switch {
		case containsAny(c, "erasure", "right to be forgotten") || (strings.Contains(c, "delet") && containsAny(c, "request", "workflow")):
			return verdict{status: StatusCompliant, details: "erasure handling referenced"}
		case containsAny(c, "cannot delete", "never delete", "no deletion"):
			return verdict{
				status:      StatusNonCompliant,
				details:     "content indicates personal data cannot be deleted",
				remediation: "implement a deletion workflow covering primary storage and backups",
			}
		default:
			return verdict{status: StatusNeedsReview, details: "deletion capability unclear from content"}
		}
	},
	"gdpr-breach-notification": func(c string) verdict {
		if !strings.Contains(c, "breach") {
			return verdict{status: StatusNeedsReview, details: "no breach handling referenced"}
		}
		if containsAny(c, "72", "notify", "notification") {
			return verdict{status: StatusCompliant, details: "breach notification process referenced"}
		}
		return verdict{
			status:      StatusNonCompliant,
			details:     "breach handling referenced without a notification process",
			remediation: "define a 72-hour supervisory authority notification runbook",
		}
	},
	"gdpr-dpia": func(c string) verdict {
		switch {
		case containsAny(c, "dpia", "impact assessment"):
			return verdict{status: StatusCompliant, details: "impact assessment referenced"}
		case containsAny(c, "high risk", "large scale", "profiling"):
			return verdict{
				status:      StatusNonCompliant,
				details:     "high-risk processing referenced without an impact assessment",
				remediation: "conduct a DPIA before starting high-risk processing",
			}
		default:
			return verdict{status: StatusNeedsReview, details: "processing risk profile unclear from content"}
		}
	},
	"aml-cdd": func(c string) verdict {
		switch {
		case containsAny(c, "due diligence", "kyc", "identity verification", "identity check"):
			return verdict{status: StatusCompliant, details: "customer due diligence referenced"}
		case containsAny(c, "skip verification", "without verification", "no verification"):
			return verdict{
				status:      StatusNonCompliant,
				details:     "onboarding without identity verification referenced",
				remediation: "verify identity against reliable independent sources before onboarding",
			}
		default:
			return verdict{status: StatusNeedsReview, details: "due diligence process unclear from content"}
		}
	},
	"aml-edd-pep": func(c string) verdict {
		if !containsAny(c, "pep", "politically exposed") {
			return verdict{status: StatusNeedsReview, details: "no PEP handling referenced"}
		}
		if containsAny(c, "enhanced", "edd", "senior management") {
			return verdict{status: StatusCompliant, details: "enhanced due diligence for PEPs referenced"}
		}
		return verdict{
			status:      StatusNonCompliant,
			details:     "PEPs referenced without enhanced due diligence",
			remediation: "route PEP relationships through EDD with senior management approval",
		}
	},
	"aml-sar": func(c string) verdict {
		if strings.Contains(c, "suspicious") && containsAny(c, "report", "sar", "filing") {
			return verdict{status: StatusCompliant, details: "suspicious activity reporting referenced"}
		}
		return verdict{status: StatusNeedsReview, details: "suspicious activity reporting unclear from content"}
	},
	"aml-record-keeping": func(c string) verdict {
		if containsAny(c, "retain", "retention", "archive") && containsAny(c, "5 year", "five year") {
			return verdict{status: StatusCompliant, details: "five-year retention referenced"}
		}
		return verdict{status: StatusNeedsReview, details: "record retention period unclear from content"}
	},
	"eidas-assurance": func(c string) verdict {
		if containsAny(c, "assurance level", "loa ", "substantial", "level high") {
			return verdict{status: StatusCompliant, details: "identity assurance level mapping referenced"}
		}
		return verdict{status: StatusNeedsReview, details: "assurance level mapping unclear from content"}
	},
	"eidas-trust-services": func(c string) verdict {
		if strings.Contains(c, "qualified") && containsAny(c, "signature", "seal", "trust service") {
			return verdict{status: StatusCompliant, details: "qualified trust services referenced"}
		}
		return verdict{status: StatusNeedsReview, details: "trust service usage unclear from content"}
	},
	"psd2-sca": func(c string) verdict {
		switch {
		case containsAny(c, "strong customer authentication", "sca", "two-factor", "multi-factor", "mfa"):
			return verdict{status: StatusCompliant, details: "strong customer authentication referenced"}
		case containsAny(c, "password only", "single factor"):
			return verdict{
				status:      StatusNonCompliant,
				details:     "payments referenced with single-factor authentication",
				remediation: "require two or more independent authentication factors for payments",
			}
		default:
			return verdict{status: StatusNeedsReview, details: "payment authentication unclear from content"}
		}
	},
	"psd2-open-banking": func(c string) verdict {
		if strings.Contains(c, "api") && containsAny(c, "tpp", "third party", "open banking") {
			return verdict{status: StatusCompliant, details: "third-party access interface referenced"}
		}
		return verdict{status: StatusNeedsReview, details: "third-party access provision unclear from content"}
	},
}
