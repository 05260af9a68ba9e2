package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// overrideSchema validates lexicon override files before they are trusted to
// replace the built-in tables.
const overrideSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "skills": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "keywords"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "keywords": {
            "type": "array",
            "minItems": 1,
            "items": {"type": "string", "minLength": 1}
          }
        }
      }
    },
    "canonical_labels": {
      "type": "object",
      "additionalProperties": {"type": "string", "minLength": 1}
    },
    "phrase_patterns": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    }
  }
}`

// overrideFile is the on-disk shape of a lexicon override. Only the skill
// tables may be replaced; the validity and scoring tables stay built-in so an
// override cannot loosen the gate or change score semantics.
type overrideFile struct {
	Skills []struct {
		Name     string   `json:"name"`
		Keywords []string `json:"keywords"`
	} `json:"skills"`
	CanonicalLabels map[string]string `json:"canonical_labels"`
	PhrasePatterns  []string          `json:"phrase_patterns"`
}

// SchemaError reports an override file that failed schema validation.
type SchemaError struct {
	Path   string
	Issues []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("lexicon override %s failed validation: %s", e.Path, strings.Join(e.Issues, "; "))
}

// LoadFile returns the default store with the skill tables replaced by the
// contents of a JSON override file.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon override %s: %w", path, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(overrideSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate lexicon override %s: %w", path, err)
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, issue := range result.Errors() {
			issues = append(issues, issue.String())
		}
		return nil, &SchemaError{Path: path, Issues: issues}
	}

	var override overrideFile
	if err := json.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon override %s: %w", path, err)
	}

	store := Default()
	if len(override.Skills) > 0 {
		categories := make([]Category, 0, len(override.Skills))
		for _, cat := range override.Skills {
			keywords := make([]string, 0, len(cat.Keywords))
			for _, kw := range cat.Keywords {
				keywords = append(keywords, strings.ToLower(strings.TrimSpace(kw)))
			}
			categories = append(categories, Category{Name: cat.Name, Keywords: keywords})
		}
		store.Skills = categories
	}
	if len(override.CanonicalLabels) > 0 {
		labels := make(map[string]string, len(override.CanonicalLabels))
		for kw, label := range override.CanonicalLabels {
			labels[strings.ToLower(kw)] = label
		}
		store.CanonicalLabels = labels
	}
	if len(override.PhrasePatterns) > 0 {
		patterns := make([]string, 0, len(override.PhrasePatterns))
		for _, p := range override.PhrasePatterns {
			patterns = append(patterns, strings.ToLower(strings.TrimSpace(p)))
		}
		store.PhrasePatterns = patterns
	}

	return store, nil
}
