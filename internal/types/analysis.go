// Package types provides the value types exchanged between the screening
// engine and its callers. All values are created fresh per request and never
// mutated after construction.
package types

// CategoryBreakdown summarizes the skills found for one lexicon category.
type CategoryBreakdown struct {
	Skills     []string `json:"skills"`
	Count      int      `json:"count"`
	Percentage float64  `json:"percentage"`
}

// SkillSet is the profiled skill inventory of a document. Every label appears
// in exactly one category and at most once in AllSkills, which preserves
// first-seen order.
type SkillSet struct {
	AllSkills  []string                     `json:"all_skills"`
	ByCategory map[string]CategoryBreakdown `json:"by_category"`
	TotalCount int                          `json:"total_count"`
}

// ExperienceFact is the extracted work-experience summary of a resume.
type ExperienceFact struct {
	Years int    `json:"years"`
	Score int    `json:"score"`
	Level string `json:"level"`
}

// EducationFact is the extracted education summary of a resume.
type EducationFact struct {
	Score     int  `json:"score"`
	HasDegree bool `json:"has_degree"`
}

// ContactInfo holds the first email and phone match found in a document.
// Empty fields mean no match; values are never checked for deliverability.
type ContactInfo struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ScoreBreakdown reports the composite resume score together with its
// unweighted component scores for auditability.
type ScoreBreakdown struct {
	Composite       int     `json:"composite"`
	SkillsDiversity float64 `json:"skills_diversity"`
	Experience      float64 `json:"experience"`
	Education       float64 `json:"education"`
	Contact         float64 `json:"contact"`
}

// ResumeAnalysis is the full single-resume analysis result.
type ResumeAnalysis struct {
	OverallScore    int            `json:"overall_score"`
	Breakdown       ScoreBreakdown `json:"score_breakdown"`
	Skills          SkillSet       `json:"skills_analysis"`
	Experience      ExperienceFact `json:"experience_analysis"`
	Education       EducationFact  `json:"education_analysis"`
	Contact         ContactInfo    `json:"contact_info"`
	Summary         string         `json:"summary"`
	Recommendations []string       `json:"recommendations"`
	Warning         string         `json:"warning,omitempty"`
}

// RequirementGroup summarizes one category of job-description requirements.
type RequirementGroup struct {
	Skills     []string `json:"skills"`
	Count      int      `json:"count"`
	Importance int      `json:"importance"`
}

// ExperienceRequirement is the extracted minimum-experience demand of a job
// description.
type ExperienceRequirement struct {
	MinimumYears int    `json:"minimum_years"`
	Level        string `json:"level"`
}

// JobAnalysis is the full job-description analysis result.
type JobAnalysis struct {
	RequiredSkills        map[string]RequirementGroup `json:"required_skills"`
	ExperienceRequirement ExperienceRequirement       `json:"experience_requirements"`
	SeniorityLevel        string                      `json:"seniority_level"`
	DifficultyScore       int                         `json:"difficulty_score"`
	Responsibilities      []string                    `json:"key_responsibilities"`
	Qualifications        []string                    `json:"qualifications"`
	Culture               map[string]int              `json:"company_culture"`
}
