package types

import "github.com/go-playground/validator/v10"

// CandidateProfile is one batch-matching input. Structured fields are
// caller-declared and trusted for bonus calculation; similarity is always
// derived from RawText. Missing optional fields default to their zero values.
type CandidateProfile struct {
	ID              string   `json:"id,omitempty"`
	Name            string   `json:"name,omitempty"`
	RawText         string   `json:"text"`
	Skills          []string `json:"skills,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty" validate:"gte=0"`
	EducationLevel  string   `json:"education_level,omitempty"`
	Email           string   `json:"email,omitempty" validate:"omitempty,email"`
}

// Validate validates the CandidateProfile using the validator.
func (c *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// SkillsMatchDetail reports how a candidate's declared skills line up with the
// skills a job requires.
type SkillsMatchDetail struct {
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	MatchPercentage float64  `json:"match_percentage"`
}

// ExperienceMatchDetail reports a candidate's experience against the job's
// stated requirement. Gap is required minus actual and may be negative.
type ExperienceMatchDetail struct {
	CandidateExperience int    `json:"candidate_experience"`
	RequiredExperience  int    `json:"required_experience"`
	Status              string `json:"status"`
	Gap                 int    `json:"gap"`
}

// MatchResult is one ranked (job, candidate) outcome. Detail pointers are nil
// on the fallback path, where structured detail cannot be derived honestly.
type MatchResult struct {
	CandidateID     string                 `json:"candidate_id"`
	Name            string                 `json:"name"`
	SimilarityScore float64                `json:"similarity_score"`
	CompositeScore  float64                `json:"comprehensive_score"`
	SkillsMatch     *SkillsMatchDetail     `json:"skills_match,omitempty"`
	ExperienceMatch *ExperienceMatchDetail `json:"experience_match,omitempty"`
	Recommendation  string                 `json:"recommendation"`
}
