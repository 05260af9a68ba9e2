package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/lexicon"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/jonathan/resume-screener/internal/validity"
)

const sampleResume = "Summary: backend engineer with 6 years of experience building services in python and sql. " +
	"Education: bachelor degree from State University. Skills in docker and aws. Contact: jane@example.com, (555) 123-4567."

func newAnalyzer() *Analyzer {
	return New(lexicon.Default())
}

func TestAnalyzeResume(t *testing.T) {
	analysis, err := newAnalyzer().AnalyzeResume(sampleResume)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, analysis.OverallScore, 0)
	assert.LessOrEqual(t, analysis.OverallScore, 100)
	assert.Equal(t, analysis.Breakdown.Composite, analysis.OverallScore)

	assert.Contains(t, analysis.Skills.AllSkills, "Python")
	assert.Contains(t, analysis.Skills.AllSkills, "SQL")

	assert.Equal(t, 6, analysis.Experience.Years)
	assert.Equal(t, 60, analysis.Experience.Score)
	assert.Equal(t, "Senior", analysis.Experience.Level)

	assert.True(t, analysis.Education.HasDegree)
	assert.Equal(t, "jane@example.com", analysis.Contact.Email)
	assert.NotEmpty(t, analysis.Summary)
	assert.Empty(t, analysis.Warning)
}

func TestAnalyzeResume_EmptyText(t *testing.T) {
	_, err := newAnalyzer().AnalyzeResume("   ")

	var invalid *ErrInvalidResumeContent
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, validity.ReasonEmpty, invalid.Reason)
}

func TestAnalyzeResume_NonTechnicalDocument(t *testing.T) {
	recipe := "This recipe requires slow cooking. Mix the ingredients with a tablespoon of oil and bake for an hour."

	_, err := newAnalyzer().AnalyzeResume(recipe)

	var invalid *ErrInvalidResumeContent
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, validity.ReasonNonTechnical, invalid.Reason)
	assert.Contains(t, invalid.Message, "recipe or cooking document")
}

func TestAnalyzeResume_NotAResume(t *testing.T) {
	text := "General observations about the weather patterns across the northern region during early spring months."

	_, err := newAnalyzer().AnalyzeResume(text)

	var invalid *ErrInvalidResumeContent
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, validity.ReasonNotResume, invalid.Reason)
}

func TestAnalyzeResume_WarnsWhenNoSkillsRecognized(t *testing.T) {
	text := "Work experience: none yet. Education pending. Seeking my first job position with any company that will train me."

	analysis, err := newAnalyzer().AnalyzeResume(text)

	require.NoError(t, err)
	assert.Zero(t, analysis.Skills.TotalCount)
	assert.Less(t, analysis.OverallScore, 20)
	assert.Contains(t, analysis.Warning, "no recognizable technical skills")
}

func TestAnalyzeResume_SummaryTakesLeadingSentences(t *testing.T) {
	text := "First part about my experience. Second part about skills and work. Third part about education. " +
		"Fourth part that should not appear in the summary at all."

	analysis, err := newAnalyzer().AnalyzeResume(text)

	require.NoError(t, err)
	assert.Contains(t, analysis.Summary, "First part")
	assert.Contains(t, analysis.Summary, "Third part")
	assert.NotContains(t, analysis.Summary, "Fourth part")
}

func TestAnalyzeJob(t *testing.T) {
	job := "Senior role. Requirements: python and sql. Minimum 6 years required. Bachelor degree needed. " +
		"You will be responsible for leading a dynamic, agile team."

	analysis, err := newAnalyzer().AnalyzeJob(job)

	require.NoError(t, err)

	technical := analysis.RequiredSkills["technical_skills"]
	assert.Contains(t, technical.Skills, "python")
	assert.Contains(t, technical.Skills, "sql")
	assert.Equal(t, technical.Count*10, technical.Importance)

	assert.Equal(t, 6, analysis.ExperienceRequirement.MinimumYears)
	assert.Equal(t, "Senior", analysis.ExperienceRequirement.Level)
	assert.Equal(t, "senior", analysis.SeniorityLevel)
	assert.NotEmpty(t, analysis.Responsibilities)
	assert.NotEmpty(t, analysis.Qualifications)
	assert.Positive(t, analysis.Culture["fast-paced"])

	// 50 base + 30 experience cap + 2 technical skills x 3.
	assert.Equal(t, 86, analysis.DifficultyScore)
}

func TestAnalyzeJob_EmptyText(t *testing.T) {
	_, err := newAnalyzer().AnalyzeJob(" \n\t ")

	var empty *ErrEmptyInput
	require.ErrorAs(t, err, &empty)
	assert.Contains(t, err.Error(), "job description text")
}

func TestAnalyzeJob_MinimalText(t *testing.T) {
	analysis, err := newAnalyzer().AnalyzeJob("Hiring a gardener")

	require.NoError(t, err)
	assert.Zero(t, analysis.ExperienceRequirement.MinimumYears)
	assert.Equal(t, "Junior", analysis.ExperienceRequirement.Level)
	assert.Equal(t, "mid", analysis.SeniorityLevel)
	assert.Equal(t, 50, analysis.DifficultyScore)
}

func TestMatchCandidates(t *testing.T) {
	candidates := []types.CandidateProfile{
		{ID: "c1", RawText: "python developer with 6 years of experience", Skills: []string{"python"}, ExperienceYears: 6},
	}

	results, err := newAnalyzer().MatchCandidates(context.Background(), "Requires 5 years experience and python skills", candidates)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "c1", results[0].CandidateID)
	assert.NotEmpty(t, results[0].Recommendation)
}

func TestMatchCandidates_EmptyJobText(t *testing.T) {
	_, err := newAnalyzer().MatchCandidates(context.Background(), "  ", []types.CandidateProfile{{RawText: "text"}})

	var empty *ErrEmptyInput
	require.ErrorAs(t, err, &empty)
}

func TestMatchCandidates_NoCandidates(t *testing.T) {
	_, err := newAnalyzer().MatchCandidates(context.Background(), "job text", nil)

	var empty *ErrEmptyInput
	require.ErrorAs(t, err, &empty)
	assert.Contains(t, err.Error(), "at least one candidate resume")
}

func TestErrExtractionFailed_Unwrap(t *testing.T) {
	cause := errors.New("file unreadable")
	err := &ErrExtractionFailed{Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "could not be extracted")
}
