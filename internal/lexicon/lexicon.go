// Package lexicon provides the static keyword tables that drive extraction,
// validity checking, and skill profiling. A Store is immutable after
// construction and safe for concurrent readers.
package lexicon

import "strings"

// Category is a named, ordered keyword group. Order is significant wherever a
// "first matching category wins" rule applies.
type Category struct {
	Name     string
	Keywords []string
}

// EducationLevel is one rung of the degree hierarchy used for requirement
// comparison.
type EducationLevel struct {
	Name string
	Rank int
}

// Store holds every keyword table used by the engine.
type Store struct {
	// Skills lists skill keywords grouped by category, in display order.
	Skills []Category
	// CanonicalLabels maps matched keywords to their preferred display label.
	// Keywords absent from this map are title-cased.
	CanonicalLabels map[string]string
	// PhrasePatterns are standalone multi-word skills matched in a secondary
	// pass, appended to the flattened skill list only.
	PhrasePatterns []string
	// NonResumeIndicators groups give-away keywords by document type, in
	// detection priority order.
	NonResumeIndicators []Category
	// ResumeIndicators are markers a genuine resume is expected to contain.
	ResumeIndicators []string
	// EducationKeywords are counted (x20 each, capped) for the education score.
	EducationKeywords []string
	// EducationHierarchy is ordered low to high; first keyword found in a text
	// determines its level.
	EducationHierarchy []EducationLevel
	// SeniorityIndicators are checked in priority order when classifying a job
	// description's seniority.
	SeniorityIndicators []Category
	// CultureGroups are keyword groups counted as company-culture signals.
	CultureGroups []Category
	// RequirementCategories group job-description requirement keywords.
	RequirementCategories []Category
	// Stopwords are removed before vectorization.
	Stopwords map[string]struct{}
}

// Default returns the built-in store.
func Default() *Store {
	return &Store{
		Skills: []Category{
			{Name: "programming", Keywords: []string{"python", "java", "javascript", "c++", "c#", "rust", "php", "ruby", "swift", "go"}},
			{Name: "web_tech", Keywords: []string{"html", "css", "react", "angular", "vue", "node.js", "express", "django", "flask"}},
			{Name: "databases", Keywords: []string{"sql", "dbms", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "oracle", "database"}},
			{Name: "cloud", Keywords: []string{"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "terraform", "google cloud skills boost"}},
			{Name: "ml_ai", Keywords: []string{"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy", "matplotlib", "generative ai", "machine learning", "artificial intelligence"}},
			{Name: "tools", Keywords: []string{"git", "github", "jenkins", "confluence", "slack", "teams"}},
		},
		CanonicalLabels: map[string]string{
			"sql":                      "SQL",
			"dbms":                     "DBMS",
			"html":                     "HTML",
			"css":                      "CSS",
			"aws":                      "AWS",
			"gcp":                      "GCP",
			"php":                      "PHP",
			"mysql":                    "MySQL",
			"postgresql":               "PostgreSQL",
			"mongodb":                  "MongoDB",
			"node.js":                  "Node.js",
			"javascript":               "JavaScript",
			"github":                   "GitHub",
			"generative ai":            "Generative AI",
			"artificial intelligence":  "AI",
			"machine learning":         "ML",
			"google cloud skills boost": "Google Cloud Skills Boost",
		},
		PhrasePatterns: []string{
			"machine learning",
			"artificial intelligence",
			"generative ai",
			"data science",
			"computer networks",
			"web development",
			"software development",
			"problem solving",
			"teamwork",
			"collaboration",
			"project management",
			"inventory management",
			"order management",
			"computer science",
			"engineering",
			"problem-solving",
			"fast learning",
			"adaptability",
		},
		NonResumeIndicators: []Category{
			{Name: "cooking", Keywords: []string{"recipe", "cooking", "ingredients", "tablespoon", "teaspoon", "bake", "fry", "chef", "kitchen", "cuisine"}},
			{Name: "fiction", Keywords: []string{"fiction", "chapter", "novel", "story", "once upon a time"}},
			{Name: "lyrics", Keywords: []string{"lyrics", "verse", "chorus", "song"}},
			{Name: "menu", Keywords: []string{"menu", "restaurant", "dish"}},
		},
		ResumeIndicators: []string{
			"experience", "education", "skills", "work", "job", "project",
			"university", "college", "degree", "company", "position", "role",
			"email", "@", "phone", "linkedin", "github", "objective", "summary",
		},
		EducationKeywords: []string{"bachelor", "master", "phd", "degree", "university", "college"},
		EducationHierarchy: []EducationLevel{
			{Name: "high school", Rank: 1},
			{Name: "bachelor", Rank: 2},
			{Name: "master", Rank: 3},
			{Name: "phd", Rank: 4},
		},
		SeniorityIndicators: []Category{
			{Name: "junior", Keywords: []string{"entry-level", "junior", "0-2 years", "recent graduate", "internship"}},
			{Name: "mid", Keywords: []string{"mid-level", "3-5 years", "intermediate", "experienced"}},
			{Name: "senior", Keywords: []string{"senior", "5+ years", "lead", "principal", "architect"}},
			{Name: "management", Keywords: []string{"manager", "director", "head", "vp", "cto", "ceo"}},
		},
		CultureGroups: []Category{
			{Name: "collaborative", Keywords: []string{"team", "collaboration", "partnership", "together"}},
			{Name: "innovative", Keywords: []string{"innovation", "creative", "cutting-edge", "modern"}},
			{Name: "fast-paced", Keywords: []string{"fast-paced", "dynamic", "agile", "quick"}},
			{Name: "professional", Keywords: []string{"professional", "formal", "corporate", "business"}},
			{Name: "casual", Keywords: []string{"casual", "relaxed", "fun", "flexible"}},
		},
		RequirementCategories: []Category{
			{Name: "technical_skills", Keywords: []string{"python", "java", "javascript", "react", "node.js", "sql", "aws"}},
			{Name: "soft_skills", Keywords: []string{"leadership", "communication", "teamwork", "problem-solving", "analytical"}},
			{Name: "experience_levels", Keywords: []string{"entry-level", "mid-level", "senior", "lead", "manager", "director"}},
			{Name: "education", Keywords: []string{"bachelor", "master", "phd", "degree", "certification"}},
			{Name: "tools", Keywords: []string{"git", "jira", "confluence", "slack", "teams", "zoom"}},
		},
		Stopwords: buildStopwords(),
	}
}

// JobSkillKeywords returns the flat set of skill keywords recognized in job
// descriptions for the skills-overlap bonus.
func (s *Store) JobSkillKeywords() []string {
	return []string{
		"python", "java", "javascript", "react", "angular", "vue", "node.js",
		"express", "django", "flask", "mysql", "postgresql", "mongodb",
		"aws", "azure", "docker", "kubernetes", "git", "jenkins",
	}
}

// EducationRank returns the hierarchy rank for the first level whose keyword
// appears in the given lower-cased text, or 0 when none matches.
func (s *Store) EducationRank(textLower string) int {
	for _, level := range s.EducationHierarchy {
		if containsKeyword(textLower, level.Name) {
			return level.Rank
		}
	}
	return 0
}

func containsKeyword(textLower, keyword string) bool {
	return keyword != "" && strings.Contains(textLower, keyword)
}

func buildStopwords() map[string]struct{} {
	words := []string{
		"a", "about", "above", "after", "again", "against", "all", "also", "am",
		"an", "and", "any", "are", "as", "at", "be", "because", "been", "before",
		"being", "below", "between", "both", "but", "by", "can", "could", "did",
		"do", "does", "doing", "down", "during", "each", "few", "for", "from",
		"further", "had", "has", "have", "having", "he", "her", "here", "hers",
		"herself", "him", "himself", "his", "how", "i", "if", "in", "into", "is",
		"it", "its", "itself", "just", "me", "more", "most", "my", "myself",
		"no", "nor", "not", "now", "of", "off", "on", "once", "only", "or",
		"other", "our", "ours", "ourselves", "out", "over", "own", "same",
		"she", "should", "so", "some", "such", "than", "that", "the", "their",
		"theirs", "them", "themselves", "then", "there", "these", "they",
		"this", "those", "through", "to", "too", "under", "until", "up",
		"very", "was", "we", "were", "what", "when", "where", "which", "while",
		"who", "whom", "why", "will", "with", "would", "you", "your", "yours",
		"yourself", "yourselves",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
