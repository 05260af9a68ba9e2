package similarity

import (
	"strings"
	"unicode"
)

// Tokenizer splits document text into lower-cased tokens. Implementations are
// selected at engine construction time.
type Tokenizer interface {
	Tokens(text string) []string
}

// WordTokenizer is the full tokenizer. It scans runes and treats + # . as
// word characters so tech tokens like "c++", "c#" and "node.js" survive
// intact; trailing dots are trimmed.
type WordTokenizer struct{}

// Tokens implements Tokenizer.
func (WordTokenizer) Tokens(text string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if len(w) >= 2 {
			tokens = append(tokens, w)
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// SimpleTokenizer is the degraded fallback: lower-case whitespace splitting
// with no special handling.
type SimpleTokenizer struct{}

// Tokens implements Tokenizer.
func (SimpleTokenizer) Tokens(text string) []string {
	return strings.Fields(strings.ToLower(text))
}
