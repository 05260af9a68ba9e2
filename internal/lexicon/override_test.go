package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOverride(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexicon.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_ReplacesSkillTables(t *testing.T) {
	path := writeOverride(t, `{
		"skills": [
			{"name": "languages", "keywords": ["Erlang", " elixir "]}
		],
		"canonical_labels": {"erlang": "Erlang/OTP"},
		"phrase_patterns": ["Hot Code Reloading"]
	}`)

	store, err := LoadFile(path)

	require.NoError(t, err)
	require.Len(t, store.Skills, 1)
	assert.Equal(t, "languages", store.Skills[0].Name)
	assert.Equal(t, []string{"erlang", "elixir"}, store.Skills[0].Keywords)
	assert.Equal(t, "Erlang/OTP", store.CanonicalLabels["erlang"])
	assert.Equal(t, []string{"hot code reloading"}, store.PhrasePatterns)

	// Validity and scoring tables are not overridable.
	defaults := Default()
	assert.Equal(t, defaults.ResumeIndicators, store.ResumeIndicators)
	assert.Equal(t, defaults.EducationKeywords, store.EducationKeywords)
}

func TestLoadFile_PartialOverrideKeepsDefaults(t *testing.T) {
	path := writeOverride(t, `{"phrase_patterns": ["event sourcing"]}`)

	store, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, Default().Skills, store.Skills)
	assert.Equal(t, []string{"event sourcing"}, store.PhrasePatterns)
}

func TestLoadFile_RejectsUnknownFields(t *testing.T) {
	path := writeOverride(t, `{"stopwords": ["the"]}`)

	_, err := LoadFile(path)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, path, schemaErr.Path)
	assert.NotEmpty(t, schemaErr.Issues)
}

func TestLoadFile_RejectsEmptyKeywordList(t *testing.T) {
	path := writeOverride(t, `{"skills": [{"name": "languages", "keywords": []}]}`)

	_, err := LoadFile(path)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
}

func TestLoadFile_RejectsMalformedJSON(t *testing.T) {
	path := writeOverride(t, `{not json`)

	_, err := LoadFile(path)

	require.Error(t, err)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
}
