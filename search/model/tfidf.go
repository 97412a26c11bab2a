package model

import (
	"math"
	"sort"

	"DiscoursGo/search/text_preprocessor"
)

// TermFrequencies counts whitespace-separated tokens. The text must
// already be normalized; "Nation" and "nation" are different terms here.
func TermFrequencies(text string) map[string]int {
	tf := make(map[string]int)
	for _, token := range text_preprocessor.MustTokenizer("whitespace")(text) {
		tf[token]++
	}
	return tf
}

// DocumentFrequencies counts, for every term, the documents containing it
// at least once.
func DocumentFrequencies(docs []Document) map[string]int {
	df := make(map[string]int)
	for _, doc := range docs {
		for token := range doc.F_table {
			df[token]++
		}
	}
	return df
}

// IDF is ln(n/df). A zero document frequency or an empty corpus yields 0.
func IDF(n, df int) float64 {
	if df <= 0 || n <= 0 {
		return 0
	}
	return math.Log(float64(n) / float64(df))
}

func IDFTable(df map[string]int, n int) map[string]float64 {
	idf := make(map[string]float64, len(df))
	for token, count := range df {
		idf[token] = IDF(n, count)
	}
	return idf
}

// Matrix maps every corpus term to one score per document, in corpus
// order. Terms lists the keys sorted; every vector derived from the
// matrix is aligned to it.
type Matrix struct {
	Scores map[string][]float64
	Terms  []string
	N      int
}

// BuildMatrix multiplies each document's term frequencies by the corpus
// IDF. A term absent from document i scores 0 at position i.
func BuildMatrix(docs []Document, idf map[string]float64) *Matrix {
	m := &Matrix{
		Scores: make(map[string][]float64),
		N:      len(docs),
	}
	for i, doc := range docs {
		for token, f := range doc.F_table {
			row, ok := m.Scores[token]
			if !ok {
				row = make([]float64, len(docs))
				m.Scores[token] = row
			}
			row[i] = float64(f) * idf[token]
		}
	}
	m.Terms = make([]string, 0, len(m.Scores))
	for token := range m.Scores {
		m.Terms = append(m.Terms, token)
	}
	sort.Strings(m.Terms)
	return m
}

// Has reports whether term occurs somewhere in the corpus.
func (m *Matrix) Has(term string) bool {
	_, ok := m.Scores[term]
	return ok
}

// Score returns the TF-IDF of term in document i, 0 when unknown.
func (m *Matrix) Score(term string, i int) float64 {
	row := m.Scores[term]
	if i < 0 || i >= len(row) {
		return 0
	}
	return row[i]
}

// Column returns document i's score vector aligned to Terms.
func (m *Matrix) Column(i int) []float64 {
	col := make([]float64, len(m.Terms))
	for j, term := range m.Terms {
		col[j] = m.Score(term, i)
	}
	return col
}
