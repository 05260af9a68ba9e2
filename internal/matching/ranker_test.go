package matching

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/lexicon"
	"github.com/jonathan/resume-screener/internal/types"
)

func newRanker() *Ranker {
	return NewRanker(lexicon.Default())
}

func TestRank_EmptyBatch(t *testing.T) {
	results, err := newRanker().Rank(context.Background(), "python developer role", nil)

	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRank_AppliesAllBonuses(t *testing.T) {
	job := "Requires 5 years experience, bachelor degree, python and sql skills"
	candidate := types.CandidateProfile{
		ID:              "c1",
		Name:            "Jane",
		RawText:         "Python engineer with sql background, 6 years of experience, bachelor degree",
		Skills:          []string{"python", "sql"},
		ExperienceYears: 6,
		EducationLevel:  "bachelor",
		Email:           "jane@example.com",
	}

	results, err := newRanker().Rank(context.Background(), job, []types.CandidateProfile{candidate})

	require.NoError(t, err)
	require.Len(t, results, 1)
	got := results[0]

	assert.Equal(t, "c1", got.CandidateID)
	assert.Equal(t, "Jane", got.Name)

	// Full skills, experience, education, and contact bonuses: 20+15+10+5.
	assert.InDelta(t, got.SimilarityScore+50, got.CompositeScore, 0.01)
	assert.LessOrEqual(t, got.CompositeScore, 100.0)

	require.NotNil(t, got.SkillsMatch)
	assert.Equal(t, []string{"python"}, got.SkillsMatch.MatchedSkills)
	assert.Empty(t, got.SkillsMatch.MissingSkills)
	assert.Equal(t, 100.0, got.SkillsMatch.MatchPercentage)

	require.NotNil(t, got.ExperienceMatch)
	assert.Equal(t, 6, got.ExperienceMatch.CandidateExperience)
	assert.Equal(t, 5, got.ExperienceMatch.RequiredExperience)
	assert.Equal(t, "Meets requirement", got.ExperienceMatch.Status)
	assert.Equal(t, -1, got.ExperienceMatch.Gap)
}

func TestRank_SortsByCompositeDescending(t *testing.T) {
	job := "Requires 5 years experience and python skills"
	candidates := []types.CandidateProfile{
		{ID: "weak", RawText: "warehouse operations and logistics planning"},
		{ID: "strong", RawText: "python developer, 6 years experience", Skills: []string{"python"}, ExperienceYears: 6},
	}

	results, err := newRanker().Rank(context.Background(), job, candidates)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "strong", results[0].CandidateID)
	assert.Equal(t, "weak", results[1].CandidateID)
	assert.GreaterOrEqual(t, results[0].CompositeScore, results[1].CompositeScore)
}

func TestRank_EqualScoresKeepInputOrder(t *testing.T) {
	job := "python developer position"
	text := "python developer"
	candidates := []types.CandidateProfile{
		{ID: "first", RawText: text},
		{ID: "second", RawText: text},
		{ID: "third", RawText: text},
	}

	results, err := newRanker().Rank(context.Background(), job, candidates)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "first", results[0].CandidateID)
	assert.Equal(t, "second", results[1].CandidateID)
	assert.Equal(t, "third", results[2].CandidateID)
}

func TestRank_NoStatedRequirements(t *testing.T) {
	// No recognized skill keywords, years, or degree levels in the job text.
	job := "An open position on our platform teams for motivated builders"

	results, err := newRanker().Rank(context.Background(), job, []types.CandidateProfile{
		{ID: "c1", RawText: "platform engineer focused on builders tooling", Skills: []string{"python"}, ExperienceYears: 9},
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].SkillsMatch)
	assert.Nil(t, results[0].ExperienceMatch)
	assert.InDelta(t, results[0].SimilarityScore, results[0].CompositeScore, 0.01)
}

func TestRank_FallbackOnStopwordCorpus(t *testing.T) {
	job := "the of and"
	candidates := []types.CandidateProfile{
		{ID: "none", RawText: "is was were"},
		{ID: "partial", RawText: "the of"},
	}

	results, err := newRanker().Rank(context.Background(), job, candidates)

	require.NoError(t, err)
	require.Len(t, results, 2)

	// Two of the three job words overlap.
	assert.Equal(t, "partial", results[0].CandidateID)
	assert.InDelta(t, 66.67, results[0].SimilarityScore, 0.01)
	assert.Equal(t, results[0].SimilarityScore, results[0].CompositeScore)

	assert.Equal(t, "none", results[1].CandidateID)
	assert.Zero(t, results[1].CompositeScore)

	for _, result := range results {
		assert.Nil(t, result.SkillsMatch)
		assert.Nil(t, result.ExperienceMatch)
		assert.NotEmpty(t, result.Recommendation)
	}
}

func TestRank_GeneratesCandidateIDWhenBlank(t *testing.T) {
	results, err := newRanker().Rank(context.Background(), "python developer role", []types.CandidateProfile{
		{RawText: "python developer"},
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, strings.HasPrefix(results[0].CandidateID, "candidate_"))
	assert.Greater(t, len(results[0].CandidateID), len("candidate_"))
}

func TestRank_MalformedCandidate(t *testing.T) {
	candidates := []types.CandidateProfile{
		{ID: "bad", RawText: "python developer", Email: "not-an-email"},
	}

	_, err := newRanker().Rank(context.Background(), "python developer role", candidates)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed candidate record")
}

func TestRank_NegativeExperienceRejected(t *testing.T) {
	candidates := []types.CandidateProfile{
		{ID: "bad", RawText: "python developer", ExperienceYears: -1},
	}

	_, err := newRanker().Rank(context.Background(), "python developer role", candidates)

	require.Error(t, err)
}

func TestRank_ScoresStayInBounds(t *testing.T) {
	job := "Requires 3 years experience, bachelor degree, python javascript react aws docker git"
	candidates := []types.CandidateProfile{
		{
			ID:              "max",
			RawText:         job,
			Skills:          []string{"python", "javascript", "react", "aws", "docker", "git"},
			ExperienceYears: 20,
			EducationLevel:  "phd",
			Email:           "max@example.com",
		},
	}

	results, err := newRanker().Rank(context.Background(), job, candidates)

	require.NoError(t, err)
	assert.Equal(t, 100.0, results[0].CompositeScore)
	assert.Equal(t, "Strongly recommended", results[0].Recommendation)
}
