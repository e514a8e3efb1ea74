package pii

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedact(t *testing.T) {
	d := newTestDetector()

	t.Run("ssn is masked and counted before mutation", func(t *testing.T) {
		result := d.Redact("SSN: 123-45-6789")

		assert.Equal(t, 1, result.TotalRedacted)
		require.Len(t, result.Redactions, 1)
		assert.Equal(t, "ssn", result.Redactions[0].Type)
		assert.Equal(t, 1, result.Redactions[0].Count)

		assert.NotContains(t, result.Redacted, "123-45-6789")
		ssn := regexp.MustCompile(`\d{3}-\d{2}-\d{4}`)
		assert.False(t, ssn.MatchString(result.Redacted), "no SSN-shaped substring may survive")
		assert.Contains(t, result.Redacted, "12#######89")
	})

	t.Run("multiple matches replaced highest offset first", func(t *testing.T) {
		content := "a 123-45-6789 b 987-65-4321 c"
		result := d.Redact(content)

		assert.Equal(t, 2, result.TotalRedacted)
		assert.NotContains(t, result.Redacted, "123-45-6789")
		assert.NotContains(t, result.Redacted, "987-65-4321")
		// The surrounding text survives intact.
		assert.Contains(t, result.Redacted, "a ")
		assert.Contains(t, result.Redacted, " b ")
		assert.Contains(t, result.Redacted, " c")
	})

	t.Run("mixed types grouped by type", func(t *testing.T) {
		result := d.Redact("jane@acmecorp.io and 123-45-6789 and joe@acmecorp.io")

		assert.Equal(t, 3, result.TotalRedacted)
		counts := map[string]int{}
		for _, r := range result.Redactions {
			counts[r.Type] = r.Count
		}
		assert.Equal(t, 2, counts["email"])
		assert.Equal(t, 1, counts["ssn"])
	})

	t.Run("clean content passes through unchanged", func(t *testing.T) {
		result := d.Redact("nothing sensitive here")
		assert.Equal(t, "nothing sensitive here", result.Redacted)
		assert.Zero(t, result.TotalRedacted)
		assert.Empty(t, result.Redactions)
	})
}
