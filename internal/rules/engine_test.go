package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complyd/internal/regulation"
)

func newTestEngine() *Engine {
	return NewEngine(regulation.NewCatalog())
}

func TestEvaluate(t *testing.T) {
	e := newTestEngine()

	t.Run("every requirement yields exactly one finding", func(t *testing.T) {
		catalog := regulation.NewCatalog()
		gdpr, ok := catalog.Framework("gdpr")
		require.True(t, ok)

		eval, err := e.Evaluate("some unrelated content", []string{"gdpr"})
		require.NoError(t, err)
		assert.Len(t, eval.Findings, len(gdpr.Requirements))
		assert.Equal(t, len(gdpr.Requirements), eval.Summary.Total)
	})

	t.Run("unknown framework is rejected before evaluation", func(t *testing.T) {
		_, err := e.Evaluate("content", []string{"gdpr", "hipaa"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "hipaa")
	})

	t.Run("consent evaluator verdicts", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
			want    Status
		}{
			{"consent with checkbox is compliant", "users give consent via a checkbox", StatusCompliant},
			{"consent with agreement is compliant", "written CONSENT Agreement on file", StatusCompliant},
			{"personal data without consent is non-compliant", "we process personal data of customers", StatusNonCompliant},
			{"unrelated content needs review", "weekly deployment notes", StatusNeedsReview},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				eval, err := e.Evaluate(tt.content, []string{"gdpr"})
				require.NoError(t, err)
				assert.Equal(t, tt.want, findingFor(t, eval, "gdpr-consent").Status)
			})
		}
	})

	t.Run("findings carry requirement severity and an id", func(t *testing.T) {
		eval, err := e.Evaluate("content", []string{"aml"})
		require.NoError(t, err)
		f := findingFor(t, eval, "aml-cdd")
		assert.Equal(t, regulation.SeverityCritical, f.Severity)
		assert.NotEmpty(t, f.ID)
		assert.Equal(t, "aml", f.Framework)
	})

	t.Run("summary counts partition the findings", func(t *testing.T) {
		eval, err := e.Evaluate("we process personal data; suspicious transfers are reported via SAR filing", []string{"gdpr", "aml"})
		require.NoError(t, err)
		s := eval.Summary
		assert.Equal(t, s.Total, s.Compliant+s.NonCompliant+s.NeedsReview)
		assert.Equal(t, len(eval.Findings), s.Total)
	})
}

func TestOverallStatusPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		summary Summary
		want    Status
	}{
		{"any non-compliant dominates", Summary{Total: 3, Compliant: 1, NonCompliant: 1, NeedsReview: 1}, StatusNonCompliant},
		{"needs review beats compliant", Summary{Total: 2, Compliant: 1, NeedsReview: 1}, StatusNeedsReview},
		{"all compliant", Summary{Total: 2, Compliant: 2}, StatusCompliant},
		{"single non-compliant with compliant", Summary{Total: 2, Compliant: 1, NonCompliant: 1}, StatusNonCompliant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overallStatus(tt.summary))
		})
	}
}

func TestDefaultEvaluator(t *testing.T) {
	// eIDAS requirements have evaluators; simulate an unmapped requirement
	// by checking the default verdict directly.
	v := defaultVerdict("anything")
	assert.Equal(t, StatusNeedsReview, v.status)
	assert.Contains(t, v.details, "manual review recommended")
}

func TestFrameworkScore(t *testing.T) {
	tests := []struct {
		name     string
		findings []Finding
		want     int
	}{
		{"no findings scores 100", nil, 100},
		{
			"compliant findings do not deduct",
			[]Finding{{Status: StatusCompliant, Severity: regulation.SeverityCritical}},
			100,
		},
		{
			"non-compliant critical deducts full weight",
			[]Finding{{Status: StatusNonCompliant, Severity: regulation.SeverityCritical}},
			75,
		},
		{
			"needs review deducts half weight",
			[]Finding{{Status: StatusNeedsReview, Severity: regulation.SeverityMedium}},
			95,
		},
		{
			"score clamps at zero",
			[]Finding{
				{Status: StatusNonCompliant, Severity: regulation.SeverityCritical},
				{Status: StatusNonCompliant, Severity: regulation.SeverityCritical},
				{Status: StatusNonCompliant, Severity: regulation.SeverityCritical},
				{Status: StatusNonCompliant, Severity: regulation.SeverityCritical},
				{Status: StatusNonCompliant, Severity: regulation.SeverityCritical},
			},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FrameworkScore(tt.findings))
		})
	}
}

func findingFor(t *testing.T, eval Evaluation, requirementID string) Finding {
	t.Helper()
	for _, f := range eval.Findings {
		if f.Requirement == requirementID {
			return f
		}
	}
	t.Fatalf("no finding for requirement %s", requirementID)
	return Finding{}
}
