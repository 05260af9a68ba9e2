// Package validity gates whether a text blob is an analyzable resume before
// any scoring runs. Invalid input never produces a numeric score.
package validity

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-screener/internal/lexicon"
)

// Reason identifies why a document failed the validity gate.
type Reason string

const (
	ReasonNone         Reason = "none"
	ReasonEmpty        Reason = "empty"
	ReasonNonTechnical Reason = "non_technical"
	ReasonNotResume    Reason = "not_resume"
)

const (
	// minContentLength is the minimum trimmed length an analyzable document
	// must have.
	minContentLength = 50
	// maxNonResumeHits is the number of non-resume indicator hits at which a
	// document is rejected.
	maxNonResumeHits = 3
	// minResumeHits is the number of resume indicator hits a document must
	// contain.
	minResumeHits = 2
)

// Result is the outcome of classifying one document. Rules are evaluated in
// order and the first failing rule wins.
type Result struct {
	Valid   bool
	Reason  Reason
	Message string
}

// Classifier checks documents against the indicator tables of a lexicon store.
type Classifier struct {
	lex *lexicon.Store
}

// NewClassifier creates a classifier backed by the given lexicon.
func NewClassifier(lex *lexicon.Store) *Classifier {
	return &Classifier{lex: lex}
}

// Classify applies the validity rules to a document.
func (c *Classifier) Classify(text string) Result {
	if len(strings.TrimSpace(text)) < minContentLength {
		return Result{
			Valid:  false,
			Reason: ReasonEmpty,
			Message: "The resume appears to be empty or contains insufficient content. " +
				"Please upload a valid resume with your professional details.",
		}
	}

	textLower := strings.ToLower(text)

	nonResumeHits := 0
	for _, group := range c.lex.NonResumeIndicators {
		for _, keyword := range group.Keywords {
			if strings.Contains(textLower, keyword) {
				nonResumeHits++
			}
		}
	}
	if nonResumeHits >= maxNonResumeHits {
		return Result{
			Valid:  false,
			Reason: ReasonNonTechnical,
			Message: fmt.Sprintf(
				"This document appears to be a %s, not a professional resume. "+
					"Please upload a valid resume with your work experience, skills, and education.",
				c.detectDocumentType(textLower)),
		}
	}

	resumeHits := 0
	for _, indicator := range c.lex.ResumeIndicators {
		if strings.Contains(textLower, indicator) {
			resumeHits++
		}
	}
	if resumeHits < minResumeHits {
		return Result{
			Valid:  false,
			Reason: ReasonNotResume,
			Message: "This document does not appear to be a professional resume. " +
				"A resume should include sections like experience, education, skills, and contact information.",
		}
	}

	return Result{Valid: true, Reason: ReasonNone}
}

// detectDocumentType labels a rejected document by the first indicator group
// with any hit, in the lexicon's priority order.
func (c *Classifier) detectDocumentType(textLower string) string {
	labels := map[string]string{
		"cooking": "recipe or cooking document",
		"fiction": "story or fiction document",
		"lyrics":  "song lyrics",
		"menu":    "menu or restaurant document",
	}
	for _, group := range c.lex.NonResumeIndicators {
		for _, keyword := range group.Keywords {
			if strings.Contains(textLower, keyword) {
				if label, ok := labels[group.Name]; ok {
					return label
				}
				return "non-resume document"
			}
		}
	}
	return "non-resume document"
}
