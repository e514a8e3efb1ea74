package risk

// Level classifies a score into one of four non-overlapping bands.
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

// Factor is a caller-supplied risk input. Likelihood and impact are on a
// 1-5 scale; the engine assumes the caller validated the range.
type Factor struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Likelihood  int      `json:"likelihood"`
	Impact      int      `json:"impact"`
	Description string   `json:"description,omitempty"`
	Mitigations []string `json:"mitigations,omitempty"`
}

// ScoredFactor is a Factor with its computed score and level. Score is
// always likelihood * impact, in [1,25].
type ScoredFactor struct {
	Factor
	Score int   `json:"score"`
	Level Level `json:"level"`
}

// CategorySummary aggregates the factors sharing one category.
type CategorySummary struct {
	AvgScore    float64  `json:"avg_score"`
	Level       Level    `json:"level"`
	FactorNames []string `json:"factor_names"`
}

// Context carries optional signals that adjust the assessment.
type Context struct {
	PreviousIncidents int    `json:"previous_incidents,omitempty"`
	Jurisdiction      string `json:"jurisdiction,omitempty"`
}

// Assessment is the full result of scoring one entity.
type Assessment struct {
	EntityType             string                     `json:"entity_type"`
	EntityID               string                     `json:"entity_id"`
	OverallScore           int                        `json:"overall_score"`
	RiskLevel              Level                      `json:"risk_level"`
	Factors                []ScoredFactor             `json:"factors"`
	ByCategory             map[string]CategorySummary `json:"aggregated_by_category"`
	Recommendations        []string                   `json:"recommendations"`
	RegulatoryImplications []string                   `json:"regulatory_implications"`
}
