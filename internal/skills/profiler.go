// Package skills extracts a normalized, categorized skill inventory from
// document text.
package skills

import (
	"math"
	"strings"

	"github.com/jonathan/resume-screener/internal/lexicon"
	"github.com/jonathan/resume-screener/internal/types"
)

// Profiler matches lexicon skill keywords against text. Safe for concurrent
// use; it holds only the immutable lexicon.
type Profiler struct {
	lex *lexicon.Store
}

// NewProfiler creates a profiler backed by the given lexicon.
func NewProfiler(lex *lexicon.Store) *Profiler {
	return &Profiler{lex: lex}
}

// Profile extracts the skill set of a document. Each keyword is tested along
// with its simple morphological variants (plural, space-removed, hyphenated);
// the first matching variant resolves to a canonical display label recorded
// once per category and once globally, preserving first-seen order. A second
// pass matches standalone phrase patterns into the flattened list only.
func (p *Profiler) Profile(text string) types.SkillSet {
	textLower := strings.ToLower(text)

	allSkills := make([]string, 0)
	seen := make(map[string]bool)
	categorySkills := make(map[string][]string, len(p.lex.Skills))

	for _, category := range p.lex.Skills {
		var found []string
		catSeen := make(map[string]bool)
		for _, keyword := range category.Keywords {
			if !matchesVariant(textLower, keyword) {
				continue
			}
			label := p.displayLabel(keyword)
			if catSeen[label] {
				continue
			}
			catSeen[label] = true
			found = append(found, label)
			if !seen[label] {
				seen[label] = true
				allSkills = append(allSkills, label)
			}
		}
		categorySkills[category.Name] = found
	}

	for _, phrase := range p.lex.PhrasePatterns {
		if !strings.Contains(textLower, phrase) {
			continue
		}
		label := p.displayLabel(phrase)
		if !seen[label] {
			seen[label] = true
			allSkills = append(allSkills, label)
		}
	}

	total := len(allSkills)
	byCategory := make(map[string]types.CategoryBreakdown, len(p.lex.Skills))
	for _, category := range p.lex.Skills {
		found := categorySkills[category.Name]
		percentage := 0.0
		if total > 0 {
			percentage = math.Round(float64(len(found))/float64(total)*1000) / 10
		}
		byCategory[category.Name] = types.CategoryBreakdown{
			Skills:     found,
			Count:      len(found),
			Percentage: percentage,
		}
	}

	return types.SkillSet{
		AllSkills:  allSkills,
		ByCategory: byCategory,
		TotalCount: total,
	}
}

// matchesVariant reports whether the keyword or one of its simple variants
// occurs in the lower-cased text.
func matchesVariant(textLower, keyword string) bool {
	variants := []string{
		keyword,
		keyword + "s",
		strings.ReplaceAll(keyword, " ", ""),
		strings.ReplaceAll(keyword, " ", "-"),
	}
	for _, variant := range variants {
		if strings.Contains(textLower, variant) {
			return true
		}
	}
	return false
}

// displayLabel resolves the canonical display label for a matched keyword.
func (p *Profiler) displayLabel(keyword string) string {
	if label, ok := p.lex.CanonicalLabels[keyword]; ok {
		return label
	}
	return titleCase(strings.ReplaceAll(keyword, "/", " & "))
}

func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
