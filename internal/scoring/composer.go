// Package scoring combines statistical similarity and rule-based bonuses into
// bounded composite scores.
package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Weights for the single-resume composite.
const (
	weightSkillsDiversity = 0.4
	weightExperience      = 0.3
	weightEducation       = 0.2
	weightContact         = 0.1
)

// Bonus points for the candidate-matching composite.
const (
	maxSkillsBonus         = 20.0
	experienceBonusFull    = 15.0
	experienceBonusPartial = 10.0
	// experienceCloseRatio is the fraction of the required years at which a
	// candidate still earns the partial bonus.
	experienceCloseRatio = 0.7
	educationBonus       = 10.0
	contactBonus         = 5.0
)

// ComposeResumeScore blends the extracted facts of a single resume into a
// 0-100 composite. The contact component is all-or-nothing (100 when an email
// is present) before weighting, so it contributes at most 10 points.
func ComposeResumeScore(skills types.SkillSet, experience types.ExperienceFact, education types.EducationFact, contact types.ContactInfo) types.ScoreBreakdown {
	diversity := 0.0
	if len(skills.ByCategory) > 0 {
		withSkills := 0
		for _, breakdown := range skills.ByCategory {
			if breakdown.Count > 0 {
				withSkills++
			}
		}
		diversity = float64(withSkills) / float64(len(skills.ByCategory)) * 100
	}

	experienceScore := float64(experience.Years * 10)
	if experienceScore > 100 {
		experienceScore = 100
	}

	contactScore := 0.0
	if contact.Email != "" {
		contactScore = 100
	}

	composite := diversity*weightSkillsDiversity +
		experienceScore*weightExperience +
		float64(education.Score)*weightEducation +
		contactScore*weightContact

	rounded := int(math.Round(composite))
	if rounded < 0 {
		rounded = 0
	}
	if rounded > 100 {
		rounded = 100
	}

	return types.ScoreBreakdown{
		Composite:       rounded,
		SkillsDiversity: diversity,
		Experience:      experienceScore,
		Education:       float64(education.Score),
		Contact:         contactScore,
	}
}

// ComposeMatchScore builds the candidate-matching composite: similarity
// scaled to 0-100 plus the rule bonuses, clamped to [0,100].
func ComposeMatchScore(similarity float64, skillsBonus, experienceBonus, eduBonus, contBonus float64) float64 {
	score := similarity*100 + skillsBonus + experienceBonus + eduBonus + contBonus
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// SkillsBonus awards up to 20 points for the overlap between a candidate's
// declared skills and the job's required skills. Returns 0 when the job
// requires no recognized skills. Comparison is case-insensitive.
func SkillsBonus(candidateSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 0
	}
	overlap := countOverlap(candidateSkills, requiredSkills)
	return float64(overlap) / float64(len(requiredSkills)) * maxSkillsBonus
}

// ExperienceBonus awards 15 points for meeting the requirement, 10 for a
// close match (>= 70% of required years), 0 otherwise. Jobs stating no
// requirement award nothing.
func ExperienceBonus(candidateYears, requiredYears int) float64 {
	if requiredYears == 0 {
		return 0
	}
	switch {
	case candidateYears >= requiredYears:
		return experienceBonusFull
	case float64(candidateYears) >= float64(requiredYears)*experienceCloseRatio:
		return experienceBonusPartial
	default:
		return 0
	}
}

// EducationBonus awards 10 points when the candidate's degree rank meets or
// exceeds the job's, and nothing when the job states no requirement.
func EducationBonus(candidateRank, requiredRank int) float64 {
	if requiredRank == 0 {
		return 0
	}
	if candidateRank >= requiredRank {
		return educationBonus
	}
	return 0
}

// ContactBonus awards 5 points for a present email, independent of phone.
func ContactBonus(email string) float64 {
	if email != "" {
		return contactBonus
	}
	return 0
}

// Recommendation maps a composite score to a hiring recommendation tier.
// Boundaries are closed intervals checked top-down, so exact boundary values
// belong to the higher tier.
func Recommendation(score float64) string {
	switch {
	case score >= 90:
		return "Strongly recommended"
	case score >= 80:
		return "Recommended"
	case score >= 70:
		return "Consider"
	case score >= 60:
		return "Maybe consider"
	default:
		return "Not recommended"
	}
}

// ResumeRecommendations derives improvement hints from a scored resume.
func ResumeRecommendations(breakdown types.ScoreBreakdown, contact types.ContactInfo) []string {
	recommendations := make([]string, 0, 4)
	if breakdown.SkillsDiversity < 50 {
		recommendations = append(recommendations, "Consider adding more diverse technical skills")
	}
	if breakdown.Experience < 50 {
		recommendations = append(recommendations, "Highlight more work experience and achievements")
	}
	if breakdown.Education < 50 {
		recommendations = append(recommendations, "Include more educational details and certifications")
	}
	if contact.Email == "" {
		recommendations = append(recommendations, "Add professional email address")
	}
	return recommendations
}

func countOverlap(candidateSkills, requiredSkills []string) int {
	declared := make(map[string]bool, len(candidateSkills))
	for _, skill := range candidateSkills {
		declared[strings.ToLower(strings.TrimSpace(skill))] = true
	}
	overlap := 0
	for _, required := range requiredSkills {
		if declared[strings.ToLower(required)] {
			overlap++
		}
	}
	return overlap
}
