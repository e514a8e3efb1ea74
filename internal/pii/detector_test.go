package pii

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDetector(extra ...string) *Detector {
	return NewDetector(NewLibrary(extra...))
}

func TestDetect(t *testing.T) {
	d := newTestDetector()

	t.Run("empty content yields well-formed empty result", func(t *testing.T) {
		result := d.Detect("", Options{})
		assert.False(t, result.HasPII)
		assert.Empty(t, result.Matches)
		assert.Empty(t, result.BySeverity)
		assert.Empty(t, result.Recommendations)
	})

	t.Run("finds SSN with position and severity", func(t *testing.T) {
		result := d.Detect("SSN: 123-45-6789", Options{})
		require.Len(t, result.Matches, 1)

		m := result.Matches[0]
		assert.Equal(t, "ssn", m.Type)
		assert.Equal(t, SeverityHigh, m.Severity)
		assert.Equal(t, "123-45-6789", m.Value)
		assert.Equal(t, 5, m.Location.Start)
		assert.Equal(t, 16, m.Location.End)
		assert.Equal(t, 1, m.Location.Line)
	})

	t.Run("allowlisted email is dropped silently", func(t *testing.T) {
		result := d.Detect("contact admin@example.com", Options{})
		assert.False(t, result.HasPII)
		assert.Empty(t, result.Matches)
	})

	t.Run("non-allowlisted email is reported", func(t *testing.T) {
		result := d.Detect("contact jane.doe@acmecorp.io for access", Options{})
		require.Len(t, result.Matches, 1)
		assert.Equal(t, "email", result.Matches[0].Type)
	})

	t.Run("allowlist window covers nearby markers", func(t *testing.T) {
		// The marker sits outside the match but inside the 20-char window.
		result := d.Detect("placeholder: a@b.io", Options{})
		assert.Empty(t, result.Matches)
	})

	t.Run("severity partition is exact", func(t *testing.T) {
		content := "email jane@acmecorp.io ssn 123-45-6789 api_key=sk_live_abcdef1234567890"
		result := d.Detect(content, Options{})
		require.True(t, result.HasPII)

		total := 0
		for _, matches := range result.BySeverity {
			total += len(matches)
		}
		assert.Equal(t, len(result.Matches), total)
	})

	t.Run("matches sorted ascending by start offset", func(t *testing.T) {
		result := d.Detect("ssn 123-45-6789 then jane@acmecorp.io", Options{})
		require.GreaterOrEqual(t, len(result.Matches), 2)
		for i := 1; i < len(result.Matches); i++ {
			assert.GreaterOrEqual(t,
				result.Matches[i].Location.Start,
				result.Matches[i-1].Location.End,
				"matches must not overlap")
		}
	})

	t.Run("deterministic across repeated calls", func(t *testing.T) {
		content := "ssn 123-45-6789, card 4111 1111 1111 1111, jane@acmecorp.io"
		first := d.Detect(content, Options{})
		second := d.Detect(content, Options{})
		assert.Equal(t, first, second)
	})
}

func TestDetectRecommendations(t *testing.T) {
	d := newTestDetector()

	tests := []struct {
		name        string
		content     string
		contentType ContentType
		want        string
	}{
		{
			name:        "critical match recommends removal",
			content:     "api_key=sk_live_abcdef1234567890",
			contentType: ContentTypeText,
			want:        "Remove or encrypt credential material before this content is stored or shared",
		},
		{
			name:        "code content always warns about hardcoded secrets",
			content:     "x := 1",
			contentType: ContentTypeCode,
			want:        "Never hardcode secrets; load them from the environment or a secret manager",
		},
		{
			name:        "config content warns too",
			content:     "timeout: 5",
			contentType: ContentTypeConfig,
			want:        "Never hardcode secrets; load them from the environment or a secret manager",
		},
		{
			name:        "financial identifier recommendation",
			content:     "card 4111 1111 1111 1111",
			contentType: ContentTypeText,
			want:        "Government and financial identifiers must only be held in approved systems of record",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := d.Detect(tt.content, Options{ContentType: tt.contentType})
			assert.Contains(t, result.Recommendations, tt.want)
		})
	}
}

func TestAllowlistExtra(t *testing.T) {
	d := newTestDetector("internal.test")

	result := d.Detect("mail to ops@internal.test please", Options{})
	assert.Empty(t, result.Matches, "configured allowlist additions suppress matches")
}

func TestRedactValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"short value fully masked", "abcd", "****"},
		{"five chars keeps edges", "abcde", "ab*de"},
		{"ssn keeps two edge chars", "123-45-6789", "12*******89"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, redactValue(tt.value, '*'))
		})
	}
}

func TestPosition(t *testing.T) {
	content := "first\nsecond line"
	line, col := position(content, 6)
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)

	line, col = position(content, 0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)
}
