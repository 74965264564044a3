package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalogInvariants(t *testing.T) {
	rows := Seed()
	require.Len(t, rows, 8)

	seen := map[int]bool{}
	for _, c := range rows {
		assert.Positive(t, c.ID)
		assert.False(t, seen[c.ID], "duplicate id %d", c.ID)
		seen[c.ID] = true

		assert.NotEmpty(t, c.Title)
		assert.NotEmpty(t, c.RequiredSkills, "career %d", c.ID)
		assert.NotEmpty(t, c.ExperienceNeeded, "career %d", c.ID)
		assert.NotEmpty(t, c.LearningPath, "career %d", c.ID)
	}
}

func TestSeedReturnsFreshSlices(t *testing.T) {
	a := Seed()
	a[0].Title = "mutated"
	b := Seed()
	assert.Equal(t, "Data Scientist", b[0].Title)
}
