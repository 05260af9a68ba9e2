// Package analyzer is the core facade of the screening engine: single-resume
// analysis, job-description analysis, and batch candidate matching. Every call
// is request-scoped and side-effect-free; the only shared state is the
// immutable lexicon.
package analyzer

import (
	"context"
	"strings"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/lexicon"
	"github.com/jonathan/resume-screener/internal/matching"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/similarity"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/jonathan/resume-screener/internal/validity"
)

const (
	// summarySentences is how many leading sentences form the resume summary.
	summarySentences = 3
	// lowScoreWarningThreshold triggers the no-technical-skills warning.
	lowScoreWarningThreshold = 20

	difficultyBase          = 50
	difficultyMaxExperience = 30
	difficultyMaxSkills     = 20
)

// Analyzer bundles the pipeline components behind the public contract.
type Analyzer struct {
	lex        *lexicon.Store
	classifier *validity.Classifier
	extractor  *extraction.Extractor
	profiler   *skills.Profiler
	ranker     *matching.Ranker
}

// New creates an analyzer over the given lexicon. Options select the
// similarity tokenizer.
func New(lex *lexicon.Store, opts ...similarity.Option) *Analyzer {
	return &Analyzer{
		lex:        lex,
		classifier: validity.NewClassifier(lex),
		extractor:  extraction.New(lex),
		profiler:   skills.NewProfiler(lex),
		ranker:     matching.NewRanker(lex, opts...),
	}
}

// AnalyzeResume analyzes one resume text. The validity gate runs first;
// invalid input never produces a numeric score.
func (a *Analyzer) AnalyzeResume(text string) (*types.ResumeAnalysis, error) {
	check := a.classifier.Classify(text)
	if !check.Valid {
		return nil, &ErrInvalidResumeContent{Reason: check.Reason, Message: check.Message}
	}

	skillSet := a.profiler.Profile(text)

	years := a.extractor.ExperienceYears(text)
	experienceScore := years * 10
	if experienceScore > 100 {
		experienceScore = 100
	}
	experience := types.ExperienceFact{
		Years: years,
		Score: experienceScore,
		Level: extraction.CandidateLevel(years),
	}

	education := a.extractor.Education(text)
	contact := a.extractor.Contact(text)

	breakdown := scoring.ComposeResumeScore(skillSet, experience, education, contact)

	analysis := &types.ResumeAnalysis{
		OverallScore:    breakdown.Composite,
		Breakdown:       breakdown,
		Skills:          skillSet,
		Experience:      experience,
		Education:       education,
		Contact:         contact,
		Summary:         summarize(text),
		Recommendations: scoring.ResumeRecommendations(breakdown, contact),
	}
	if breakdown.Composite < lowScoreWarningThreshold && skillSet.TotalCount == 0 {
		analysis.Warning = "This resume contains no recognizable technical skills. " +
			"If you're applying for a technical position, consider highlighting your relevant technical skills and experience."
	}
	return analysis, nil
}

// AnalyzeJob analyzes one job-description text.
func (a *Analyzer) AnalyzeJob(text string) (*types.JobAnalysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ErrEmptyInput{Field: "job description text"}
	}

	textLower := strings.ToLower(text)

	requiredSkills := make(map[string]types.RequirementGroup, len(a.lex.RequirementCategories))
	for _, category := range a.lex.RequirementCategories {
		var found []string
		for _, keyword := range category.Keywords {
			if strings.Contains(textLower, keyword) {
				found = append(found, keyword)
			}
		}
		requiredSkills[category.Name] = types.RequirementGroup{
			Skills:     found,
			Count:      len(found),
			Importance: len(found) * 10,
		}
	}

	years := a.extractor.ExperienceYears(text)
	analysis := &types.JobAnalysis{
		RequiredSkills: requiredSkills,
		ExperienceRequirement: types.ExperienceRequirement{
			MinimumYears: years,
			Level:        extraction.JobLevel(years),
		},
		SeniorityLevel:   a.extractor.SeniorityLevel(text),
		Responsibilities: a.extractor.Responsibilities(text),
		Qualifications:   a.extractor.Qualifications(text),
		Culture:          a.extractor.CultureIndicators(text),
	}
	analysis.DifficultyScore = difficultyScore(years, requiredSkills["technical_skills"].Count)
	return analysis, nil
}

// MatchCandidates ranks a candidate batch against a job description.
func (a *Analyzer) MatchCandidates(ctx context.Context, jobText string, candidates []types.CandidateProfile) ([]types.MatchResult, error) {
	if strings.TrimSpace(jobText) == "" {
		return nil, &ErrEmptyInput{Field: "job description text"}
	}
	if len(candidates) == 0 {
		return nil, &ErrEmptyInput{Field: "at least one candidate resume"}
	}
	return a.ranker.Rank(ctx, jobText, candidates)
}

// difficultyScore rates how demanding a job is: a base of 50 raised by the
// experience requirement and the technical skill count, capped at 100.
func difficultyScore(requiredYears, technicalSkillCount int) int {
	score := difficultyBase

	experience := requiredYears * 5
	if experience > difficultyMaxExperience {
		experience = difficultyMaxExperience
	}
	score += experience

	skillScore := technicalSkillCount * 3
	if skillScore > difficultyMaxSkills {
		skillScore = difficultyMaxSkills
	}
	score += skillScore

	if score > 100 {
		score = 100
	}
	return score
}

// summarize joins the first sentences of the document.
func summarize(text string) string {
	sentences := strings.Split(text, ".")
	if len(sentences) > summarySentences {
		sentences = sentences[:summarySentences]
	}
	return strings.TrimSpace(strings.Join(sentences, " "))
}
