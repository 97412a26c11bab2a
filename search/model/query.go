package model

import (
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Query is the TF-IDF vector of a question over the corpus vocabulary.
type Query struct {
	// Tokens are the question words left after stop-word removal.
	Tokens []string
	// CorpusTokens are the Tokens known to the corpus.
	CorpusTokens []string
	Terms        []string
	Scores       []float64
}

// CorpusTokens keeps the tokens that are terms of the matrix.
func (ix *Index) CorpusTokens(tokens []string) []string {
	var found []string
	for _, token := range tokens {
		if ix.Matrix.Has(token) {
			found = append(found, token)
		}
	}
	return found
}

// Vectorize scores every corpus term for the question. A term present in
// the question gets its question frequency times the mean of its
// per-document scores; every other term gets 0.
func (ix *Index) Vectorize(tokens []string) Query {
	q := Query{
		Tokens:       tokens,
		CorpusTokens: ix.CorpusTokens(tokens),
		Terms:        ix.Matrix.Terms,
		Scores:       make([]float64, len(ix.Matrix.Terms)),
	}
	tf := TermFrequencies(strings.Join(q.CorpusTokens, " "))
	for j, term := range q.Terms {
		f, ok := tf[term]
		if !ok {
			continue
		}
		q.Scores[j] = float64(f) * stat.Mean(ix.Matrix.Scores[term], nil)
	}
	return q
}

// TopTerm returns the term with the strictly highest score. Ties keep the
// first term in matrix order; a zero vector has no top term.
func (q Query) TopTerm() (string, bool) {
	best := -1
	for j, s := range q.Scores {
		if s > 0 && (best < 0 || s > q.Scores[best]) {
			best = j
		}
	}
	if best < 0 {
		return "", false
	}
	return q.Terms[best], true
}

// CosineSimilarity is the dot product over the product of the Euclidean
// norms. Vectors of different length or with a zero norm score 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0
	}
	return floats.Dot(a, b) / (normA * normB)
}

// Match is the document retained for a question.
type Match struct {
	Doc        *Document
	Position   int
	Matches    int
	Similarity float64
}

// Retrieve picks the most relevant document: most question tokens found
// literally in its text first, then highest cosine similarity. A document
// replaces the current best only when strictly better, so the earliest
// document wins exact ties. A document with no literal match and zero
// similarity is never relevant.
func (ix *Index) Retrieve(q Query) (Match, error) {
	best := Match{Position: -1}
	for i := range ix.Docs {
		doc := &ix.Docs[i]
		matches := 0
		for _, token := range q.Tokens {
			if strings.Contains(doc.Text, token) {
				matches++
			}
		}
		sim := CosineSimilarity(q.Scores, ix.Matrix.Column(i))
		if matches > best.Matches || (matches == best.Matches && sim > best.Similarity) {
			best = Match{Doc: doc, Position: i, Matches: matches, Similarity: sim}
		}
	}
	if best.Doc == nil {
		return Match{}, ErrNoRelevantDocument
	}
	return best, nil
}

// SourcePath maps a cleaned-corpus path to the same file in the original
// speeches directory.
func SourcePath(cleanedPath, cleanedDir, speechesDir string) string {
	cleanedPath = filepath.Clean(cleanedPath)
	cleanedDir = filepath.Clean(cleanedDir)
	if rest, ok := strings.CutPrefix(cleanedPath, cleanedDir); ok {
		return filepath.Join(speechesDir, rest)
	}
	return filepath.Join(speechesDir, filepath.Base(cleanedPath))
}
