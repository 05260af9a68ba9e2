// Package similarity builds a term-weighted vector space over a document set
// and computes cosine similarity between a job description and each candidate.
// The vector space is rebuilt from scratch per call, so scores are comparable
// only within a single batch.
package similarity

import (
	"errors"
	"math"
	"sort"

	"github.com/jonathan/resume-screener/internal/lexicon"
)

const (
	// maxFeatures caps the vocabulary size of one batch.
	maxFeatures = 1000
	// maxNgram includes two-word phrases as features.
	maxNgram = 2
)

// ErrNoVocabulary reports that the combined corpus yields no retainable
// features, e.g. when every token is a stopword. Callers must switch to their
// fallback scoring path; this is an expected condition, not a fault.
var ErrNoVocabulary = errors.New("similarity: corpus has no retainable vocabulary")

// Engine computes batch similarities. It holds only immutable state and is
// safe for concurrent use.
type Engine struct {
	tokenizer Tokenizer
	stopwords map[string]struct{}
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithTokenizer replaces the default word tokenizer.
func WithTokenizer(t Tokenizer) Option {
	return func(e *Engine) { e.tokenizer = t }
}

// NewEngine creates an engine using the lexicon's stopword table and the full
// word tokenizer unless overridden.
func NewEngine(lex *lexicon.Store, opts ...Option) *Engine {
	e := &Engine{
		tokenizer: WordTokenizer{},
		stopwords: lex.Stopwords,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Similarities returns one cosine similarity in [0,1] per candidate text,
// aligned by index, against a vector space built from the whole batch.
// Returns ErrNoVocabulary when vectorization is infeasible.
func (e *Engine) Similarities(jobText string, candidateTexts []string) ([]float64, error) {
	docs := make([][]string, 0, len(candidateTexts)+1)
	docs = append(docs, e.features(jobText))
	for _, text := range candidateTexts {
		docs = append(docs, e.features(text))
	}

	vocab := buildVocabulary(docs)
	if len(vocab) == 0 {
		return nil, ErrNoVocabulary
	}

	vectors := make([][]float64, len(docs))
	df := make([]int, len(vocab))
	for i, doc := range docs {
		counts := make([]float64, len(vocab))
		for _, feature := range doc {
			if idx, ok := vocab[feature]; ok {
				counts[idx]++
			}
		}
		for idx, count := range counts {
			if count > 0 {
				df[idx]++
			}
		}
		vectors[i] = counts
	}

	// Smoothed inverse document frequency, then L2 normalization.
	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for idx, count := range df {
		idf[idx] = math.Log((1+n)/(1+float64(count))) + 1
	}
	for _, vector := range vectors {
		norm := 0.0
		for idx := range vector {
			vector[idx] *= idf[idx]
			norm += vector[idx] * vector[idx]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for idx := range vector {
				vector[idx] /= norm
			}
		}
	}

	scores := make([]float64, len(candidateTexts))
	for i := range candidateTexts {
		scores[i] = dot(vectors[0], vectors[i+1])
	}
	return scores, nil
}

// features tokenizes a document, removes stopwords, and expands the remaining
// tokens into unigram and bigram features.
func (e *Engine) features(text string) []string {
	tokens := e.tokenizer.Tokens(text)
	kept := tokens[:0:len(tokens)]
	for _, token := range tokens {
		if _, stop := e.stopwords[token]; !stop {
			kept = append(kept, token)
		}
	}

	features := make([]string, 0, len(kept)*maxNgram)
	features = append(features, kept...)
	for i := 0; i+1 < len(kept); i++ {
		features = append(features, kept[i]+" "+kept[i+1])
	}
	return features
}

// buildVocabulary maps each retained feature to a vector index. When the
// corpus has more than maxFeatures distinct features, the most frequent ones
// are kept, with alphabetical tie-break for determinism.
func buildVocabulary(docs [][]string) map[string]int {
	freq := make(map[string]int)
	for _, doc := range docs {
		for _, feature := range doc {
			freq[feature]++
		}
	}
	if len(freq) == 0 {
		return nil
	}

	features := make([]string, 0, len(freq))
	for feature := range freq {
		features = append(features, feature)
	}
	sort.Slice(features, func(i, j int) bool {
		if freq[features[i]] != freq[features[j]] {
			return freq[features[i]] > freq[features[j]]
		}
		return features[i] < features[j]
	})
	if len(features) > maxFeatures {
		features = features[:maxFeatures]
	}

	vocab := make(map[string]int, len(features))
	for idx, feature := range features {
		vocab[feature] = idx
	}
	return vocab
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	if sum < 0 {
		return 0
	}
	if sum > 1 {
		return 1
	}
	return sum
}
