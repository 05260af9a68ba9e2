package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/lexicon"
)

func newProfiler() *Profiler {
	return NewProfiler(lexicon.Default())
}

func TestProfile_CategorizesAndLabels(t *testing.T) {
	set := newProfiler().Profile("Built services in python with sql storage, deployed on aws via docker")

	assert.Contains(t, set.AllSkills, "Python")
	assert.Contains(t, set.AllSkills, "SQL")
	assert.Contains(t, set.AllSkills, "AWS")
	assert.Contains(t, set.AllSkills, "Docker")

	assert.Equal(t, []string{"Python"}, set.ByCategory["programming"].Skills)
	assert.Contains(t, set.ByCategory["databases"].Skills, "SQL")
	assert.Contains(t, set.ByCategory["cloud"].Skills, "AWS")
	assert.Contains(t, set.ByCategory["cloud"].Skills, "Docker")
}

func TestProfile_DeduplicatesRepeatedMentions(t *testing.T) {
	set := newProfiler().Profile("python python python and more python")

	assert.Equal(t, []string{"Python"}, set.AllSkills)
	assert.Equal(t, 1, set.TotalCount)
}

func TestProfile_PluralVariantMatches(t *testing.T) {
	set := newProfiler().Profile("managed oracles and databases for the finance team")

	assert.Contains(t, set.AllSkills, "Oracle")
	assert.Contains(t, set.AllSkills, "Database")
}

func TestProfile_PhrasePatternsFlattenedOnly(t *testing.T) {
	set := newProfiler().Profile("strong problem solving and project management background")

	assert.Contains(t, set.AllSkills, "Problem Solving")
	assert.Contains(t, set.AllSkills, "Project Management")
	// Phrases are not attributed to any skill category.
	for name, breakdown := range set.ByCategory {
		assert.NotContains(t, breakdown.Skills, "Problem Solving", "category %s", name)
		assert.NotContains(t, breakdown.Skills, "Project Management", "category %s", name)
	}
}

func TestProfile_PercentagesSumFromCounts(t *testing.T) {
	set := newProfiler().Profile("python and java developer who knows sql")

	assert.Equal(t, 3, set.TotalCount)
	prog := set.ByCategory["programming"]
	assert.Equal(t, 2, prog.Count)
	assert.InDelta(t, 66.7, prog.Percentage, 0.001)
	db := set.ByCategory["databases"]
	assert.Equal(t, 1, db.Count)
	assert.InDelta(t, 33.3, db.Percentage, 0.001)
}

func TestProfile_EmptyText(t *testing.T) {
	set := newProfiler().Profile("")

	assert.Empty(t, set.AllSkills)
	assert.Zero(t, set.TotalCount)
	for name, breakdown := range set.ByCategory {
		assert.Zero(t, breakdown.Count, "category %s", name)
		assert.Zero(t, breakdown.Percentage, "category %s", name)
	}
}
