// Package risk computes weighted entity risk assessments from caller-supplied
// factors. The scorer is pure and safe for concurrent use.
package risk

import (
	"math"
	"sort"

	dErrors "complyd/pkg/domain-errors"
)

// maxScore is the ceiling for any score on the 1-5 x 1-5 scale.
const maxScore = 25

// attentionThreshold marks the factor score at which mitigations are
// surfaced as recommendations.
const attentionThreshold = 10

// LevelForScore is the single banding function shared by factor-level,
// category-level, and overall classification. Bands are fixed and
// non-overlapping: <=4 low, <=9 medium, <=16 high, >16 critical.
func LevelForScore(score float64) Level {
	switch {
	case score <= 4:
		return LevelLow
	case score <= 9:
		return LevelMedium
	case score <= 16:
		return LevelHigh
	default:
		return LevelCritical
	}
}

// Scorer computes risk assessments.
type Scorer struct{}

// NewScorer creates a risk scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score assesses an entity from its risk factors. At least one factor is
// required; an empty list is a precondition violation and fails fast.
//
// The overall score blends the mean factor score (60%) with the maximum
// single factor score (40%), keeping the result sensitive to outlier
// high-risk factors without letting one factor dominate completely. Prior
// incidents add 2 points each, capped at 25.
func (s *Scorer) Score(entityType, entityID string, factors []Factor, ctx *Context) (Assessment, error) {
	if len(factors) == 0 {
		return Assessment{}, dErrors.New(dErrors.CodeBadRequest, "at least one risk factor is required")
	}

	scored := make([]ScoredFactor, 0, len(factors))
	sum := 0
	max := 0
	for _, f := range factors {
		score := f.Likelihood * f.Impact
		scored = append(scored, ScoredFactor{
			Factor: f,
			Score:  score,
			Level:  LevelForScore(float64(score)),
		})
		sum += score
		if score > max {
			max = score
		}
	}

	avg := float64(sum) / float64(len(scored))
	overall := int(math.Round(avg*0.6 + float64(max)*0.4))

	if ctx != nil && ctx.PreviousIncidents > 0 {
		overall += ctx.PreviousIncidents * 2
		if overall > maxScore {
			overall = maxScore
		}
	}

	assessment := Assessment{
		EntityType:   entityType,
		EntityID:     entityID,
		OverallScore: overall,
		RiskLevel:    LevelForScore(float64(overall)),
		Factors:      scored,
		ByCategory:   aggregateByCategory(scored),
	}
	assessment.Recommendations = recommendations(entityType, scored)
	assessment.RegulatoryImplications = regulatoryImplications(assessment.RiskLevel, entityType, jurisdiction(ctx))
	return assessment, nil
}

func aggregateByCategory(scored []ScoredFactor) map[string]CategorySummary {
	type bucket struct {
		sum   int
		names []string
	}
	buckets := map[string]*bucket{}
	for _, f := range scored {
		b, ok := buckets[f.Category]
		if !ok {
			b = &bucket{}
			buckets[f.Category] = b
		}
		b.sum += f.Score
		b.names = append(b.names, f.Name)
	}

	out := make(map[string]CategorySummary, len(buckets))
	for category, b := range buckets {
		avg := float64(b.sum) / float64(len(b.names))
		sort.Strings(b.names)
		out[category] = CategorySummary{
			AvgScore:    avg,
			Level:       LevelForScore(avg),
			FactorNames: b.names,
		}
	}
	return out
}

func jurisdiction(ctx *Context) string {
	if ctx == nil {
		return ""
	}
	return ctx.Jurisdiction
}
