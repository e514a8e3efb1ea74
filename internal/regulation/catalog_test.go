package regulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	c := NewCatalog()

	t.Run("built-in frameworks registered", func(t *testing.T) {
		assert.Equal(t, []string{"gdpr", "aml", "eidas", "psd2"}, c.IDs())
	})

	t.Run("lookup by id", func(t *testing.T) {
		fw, ok := c.Framework("gdpr")
		require.True(t, ok)
		assert.Equal(t, "GDPR", fw.Name)
		assert.NotEmpty(t, fw.Requirements)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, ok := c.Framework("hipaa")
		assert.False(t, ok)
	})

	t.Run("requirements are fully populated", func(t *testing.T) {
		for _, fw := range c.Frameworks() {
			for _, req := range fw.Requirements {
				assert.NotEmpty(t, req.ID, "%s requirement missing id", fw.ID)
				assert.NotEmpty(t, req.Category)
				assert.NotEmpty(t, req.Requirement)
				assert.NotEmpty(t, req.Severity)
			}
		}
	})

	t.Run("requirement ids are unique across frameworks", func(t *testing.T) {
		seen := map[string]bool{}
		for _, fw := range c.Frameworks() {
			for _, req := range fw.Requirements {
				assert.False(t, seen[req.ID], "duplicate requirement id %s", req.ID)
				seen[req.ID] = true
			}
		}
	})
}
