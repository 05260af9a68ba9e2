// Package matching orchestrates similarity scoring and rule bonuses across a
// candidate batch and produces a ranked result list.
package matching

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/lexicon"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/similarity"
	"github.com/jonathan/resume-screener/internal/types"
)

// maxConcurrentScores bounds per-candidate scoring goroutines.
const maxConcurrentScores = 8

// Ranker ranks candidate batches against a job description. Safe for
// concurrent use; every call builds its vector space from scratch.
type Ranker struct {
	lex       *lexicon.Store
	engine    *similarity.Engine
	extractor *extraction.Extractor
}

// NewRanker creates a ranker backed by the given lexicon.
func NewRanker(lex *lexicon.Store, opts ...similarity.Option) *Ranker {
	return &Ranker{
		lex:       lex,
		engine:    similarity.NewEngine(lex, opts...),
		extractor: extraction.New(lex),
	}
}

// jobRequirements holds the facts extracted once per batch from the job text.
type jobRequirements struct {
	skills        []string
	years         int
	educationRank int
}

// Rank scores every candidate and returns results sorted by composite score
// descending; equal scores keep input order. An empty batch yields an empty
// list. When the batch corpus has no retainable vocabulary the keyword-overlap
// fallback is used instead, with match details marked unavailable.
func (r *Ranker) Rank(ctx context.Context, jobText string, candidates []types.CandidateProfile) ([]types.MatchResult, error) {
	if len(candidates) == 0 {
		return []types.MatchResult{}, nil
	}

	texts := make([]string, len(candidates))
	for i, candidate := range candidates {
		texts[i] = candidate.RawText
	}

	similarities, err := r.engine.Similarities(jobText, texts)
	if errors.Is(err, similarity.ErrNoVocabulary) {
		return r.fallback(jobText, candidates), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to compute batch similarities: %w", err)
	}

	requirements := r.extractRequirements(jobText)

	results := make([]types.MatchResult, len(candidates))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScores)
	for i, candidate := range candidates {
		g.Go(func() error {
			if err := candidate.Validate(); err != nil {
				return fmt.Errorf("malformed candidate record %q: %w", candidate.ID, err)
			}
			results[i] = r.scoreCandidate(candidate, similarities[i], requirements)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortByComposite(results)
	return results, nil
}

func (r *Ranker) extractRequirements(jobText string) jobRequirements {
	jobLower := strings.ToLower(jobText)
	var required []string
	for _, keyword := range r.lex.JobSkillKeywords() {
		if strings.Contains(jobLower, keyword) {
			required = append(required, keyword)
		}
	}
	return jobRequirements{
		skills:        required,
		years:         r.extractor.ExperienceYears(jobText),
		educationRank: r.lex.EducationRank(jobLower),
	}
}

func (r *Ranker) scoreCandidate(candidate types.CandidateProfile, sim float64, req jobRequirements) types.MatchResult {
	skillsDetail := skillsMatch(candidate.Skills, req.skills)
	experienceDetail := experienceMatch(candidate.ExperienceYears, req.years)

	candidateRank := r.lex.EducationRank(strings.ToLower(candidate.EducationLevel))
	composite := scoring.ComposeMatchScore(
		sim,
		scoring.SkillsBonus(candidate.Skills, req.skills),
		scoring.ExperienceBonus(candidate.ExperienceYears, req.years),
		scoring.EducationBonus(candidateRank, req.educationRank),
		scoring.ContactBonus(candidate.Email),
	)

	return types.MatchResult{
		CandidateID:     candidateID(candidate),
		Name:            candidate.Name,
		SimilarityScore: round2(sim * 100),
		CompositeScore:  round2(composite),
		SkillsMatch:     skillsDetail,
		ExperienceMatch: experienceDetail,
		Recommendation:  scoring.Recommendation(composite),
	}
}

// fallback scores each candidate by the fraction of job-text words also
// present in the candidate text: whitespace tokens, case-insensitive, no
// stopword removal. The overlap score serves as both similarity and composite,
// and structured match details are left nil rather than fabricated.
func (r *Ranker) fallback(jobText string, candidates []types.CandidateProfile) []types.MatchResult {
	jobTokens := strings.Fields(strings.ToLower(jobText))
	jobWords := make(map[string]bool, len(jobTokens))
	for _, token := range jobTokens {
		jobWords[token] = true
	}
	denominator := len(jobTokens)
	if denominator == 0 {
		denominator = 1
	}

	results := make([]types.MatchResult, len(candidates))
	for i, candidate := range candidates {
		candidateWords := make(map[string]bool)
		for _, token := range strings.Fields(strings.ToLower(candidate.RawText)) {
			candidateWords[token] = true
		}
		common := 0
		for word := range jobWords {
			if candidateWords[word] {
				common++
			}
		}
		score := round2(float64(common) / float64(denominator) * 100)

		results[i] = types.MatchResult{
			CandidateID:     candidateID(candidate),
			Name:            candidate.Name,
			SimilarityScore: score,
			CompositeScore:  score,
			Recommendation:  scoring.Recommendation(score),
		}
	}

	sortByComposite(results)
	return results
}

// skillsMatch builds the structured skills detail, or nil when the job lists
// no recognized skills to compare against.
func skillsMatch(candidateSkills, requiredSkills []string) *types.SkillsMatchDetail {
	if len(requiredSkills) == 0 {
		return nil
	}
	declared := make(map[string]bool, len(candidateSkills))
	for _, skill := range candidateSkills {
		declared[strings.ToLower(strings.TrimSpace(skill))] = true
	}

	matched := make([]string, 0, len(requiredSkills))
	missing := make([]string, 0, len(requiredSkills))
	for _, required := range requiredSkills {
		if declared[strings.ToLower(required)] {
			matched = append(matched, required)
		} else {
			missing = append(missing, required)
		}
	}

	return &types.SkillsMatchDetail{
		MatchedSkills:   matched,
		MissingSkills:   missing,
		MatchPercentage: round2(float64(len(matched)) / float64(len(requiredSkills)) * 100),
	}
}

// experienceMatch builds the structured experience detail, or nil when the
// job states no experience requirement.
func experienceMatch(candidateYears, requiredYears int) *types.ExperienceMatchDetail {
	if requiredYears == 0 {
		return nil
	}
	status := "Below requirement"
	switch {
	case candidateYears >= requiredYears:
		status = "Meets requirement"
	case float64(candidateYears) >= float64(requiredYears)*0.7:
		status = "Close match"
	}
	return &types.ExperienceMatchDetail{
		CandidateExperience: candidateYears,
		RequiredExperience:  requiredYears,
		Status:              status,
		Gap:                 requiredYears - candidateYears,
	}
}

func candidateID(candidate types.CandidateProfile) string {
	if candidate.ID != "" {
		return candidate.ID
	}
	return "candidate_" + uuid.NewString()
}

func sortByComposite(results []types.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CompositeScore > results[j].CompositeScore
	})
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
