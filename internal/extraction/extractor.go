// Package extraction pulls structured facts out of free resume and job text
// using ordered regex patterns and keyword tables.
package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/lexicon"
	"github.com/jonathan/resume-screener/internal/types"
)

// Experience level names.
const (
	LevelJunior = "Junior"
	LevelMid    = "Mid-level"
	LevelSenior = "Senior"
	LevelExpert = "Expert"
)

var (
	// experiencePatterns are tried in order; the first pattern with a match
	// wins and its first captured integer is taken.
	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs?)\s*(?:of\s*)?experience`),
		regexp.MustCompile(`(?i)experience:\s*(\d+)\s*(?:years?|yrs?)`),
		regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs?)\s*in\s*\w+`),
		regexp.MustCompile(`(?i)minimum\s*(\d+)\s*(?:years?|yrs?)`),
	}

	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	responsibilityPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)responsible\s+for\s+([^.]*)`),
		regexp.MustCompile(`(?i)duties\s+include\s+([^.]*)`),
		regexp.MustCompile(`(?i)will\s+([^.]*)`),
		regexp.MustCompile(`(?i)must\s+([^.]*)`),
	}

	qualificationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)qualifications?:\s*([^.]*)`),
		regexp.MustCompile(`(?i)requirements?:\s*([^.]*)`),
		regexp.MustCompile(`(?i)must\s+have\s+([^.]*)`),
		regexp.MustCompile(`(?i)required\s+([^.]*)`),
	}
)

// maxListedItems caps responsibility and qualification lists.
const maxListedItems = 5

// educationScorePerKeyword is awarded for each education keyword found.
const educationScorePerKeyword = 20

// Extractor extracts structured facts from text. Safe for concurrent use.
type Extractor struct {
	lex *lexicon.Store
}

// New creates an extractor backed by the given lexicon.
func New(lex *lexicon.Store) *Extractor {
	return &Extractor{lex: lex}
}

// ExperienceYears returns the number of years of experience the text states,
// or 0 when no pattern matches.
func (e *Extractor) ExperienceYears(text string) int {
	for _, pattern := range experiencePatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		years, err := strconv.Atoi(match[1])
		if err != nil || years < 0 {
			return 0
		}
		return years
	}
	return 0
}

// CandidateLevel maps resume experience years to a level. Resumes use a
// senior cutoff of 10 years; job descriptions use 8 (see JobLevel).
func CandidateLevel(years int) string {
	switch {
	case years < 2:
		return LevelJunior
	case years < 5:
		return LevelMid
	case years < 10:
		return LevelSenior
	default:
		return LevelExpert
	}
}

// JobLevel maps a job description's required years to a level.
func JobLevel(years int) string {
	switch {
	case years < 2:
		return LevelJunior
	case years < 5:
		return LevelMid
	case years < 8:
		return LevelSenior
	default:
		return LevelExpert
	}
}

// Contact returns the first email and phone match in the text.
func (e *Extractor) Contact(text string) types.ContactInfo {
	return types.ContactInfo{
		Email: emailPattern.FindString(text),
		Phone: strings.TrimSpace(phonePattern.FindString(text)),
	}
}

// Education scores education presence: each education keyword found adds 20
// points, capped at 100.
func (e *Extractor) Education(text string) types.EducationFact {
	textLower := strings.ToLower(text)
	score := 0
	for _, keyword := range e.lex.EducationKeywords {
		if strings.Contains(textLower, keyword) {
			score += educationScorePerKeyword
		}
	}
	if score > 100 {
		score = 100
	}
	return types.EducationFact{Score: score, HasDegree: score > 0}
}

// EducationRank returns the hierarchy rank of the highest-priority degree
// keyword present in the text, or 0 when none is mentioned.
func (e *Extractor) EducationRank(text string) int {
	return e.lex.EducationRank(strings.ToLower(text))
}

// SeniorityLevel classifies a job description's seniority by the first
// indicator group with any hit, defaulting to mid.
func (e *Extractor) SeniorityLevel(text string) string {
	textLower := strings.ToLower(text)
	for _, group := range e.lex.SeniorityIndicators {
		for _, indicator := range group.Keywords {
			if strings.Contains(textLower, indicator) {
				return group.Name
			}
		}
	}
	return "mid"
}

// Responsibilities extracts up to five responsibility statements.
func (e *Extractor) Responsibilities(text string) []string {
	return collectMatches(text, responsibilityPatterns)
}

// Qualifications extracts up to five qualification statements.
func (e *Extractor) Qualifications(text string) []string {
	return collectMatches(text, qualificationPatterns)
}

// CultureIndicators counts culture keyword hits per group.
func (e *Extractor) CultureIndicators(text string) map[string]int {
	textLower := strings.ToLower(text)
	indicators := make(map[string]int, len(e.lex.CultureGroups))
	for _, group := range e.lex.CultureGroups {
		count := 0
		for _, keyword := range group.Keywords {
			if strings.Contains(textLower, keyword) {
				count++
			}
		}
		indicators[group.Name] = count
	}
	return indicators
}

func collectMatches(text string, patterns []*regexp.Regexp) []string {
	items := make([]string, 0, maxListedItems)
	for _, pattern := range patterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			item := strings.TrimSpace(match[1])
			if item == "" {
				continue
			}
			items = append(items, item)
			if len(items) == maxListedItems {
				return items
			}
		}
	}
	return items
}
