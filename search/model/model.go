package model

import (
	"errors"
	"strings"
	"unicode"

	"DiscoursGo/search/text_preprocessor"
)

var (
	// ErrEmptyResult is returned when a query has nothing to report:
	// empty corpus, no matching term, no keyword mention.
	ErrEmptyResult = errors.New("empty result")
	// ErrMissingFile marks a document expected on disk that is absent.
	ErrMissingFile = errors.New("missing file")
	// ErrNoRelevantDocument is returned when no document matches a question.
	ErrNoRelevantDocument = errors.New("no relevant document")
)

// Document is one cleaned speech.
type Document struct {
	Name    string
	Path    string
	Text    string
	Tokens  []string
	F_table map[string]int
}

// NewDocument tokenizes the cleaned text of a speech and fills its term
// frequency table.
func NewDocument(name, path, text string) Document {
	doc := Document{
		Name:   name,
		Path:   path,
		Text:   text,
		Tokens: text_preprocessor.MustTokenizer("whitespace")(text),
	}
	doc.F_table = TermFrequencies(text)
	return doc
}

// President returns the president label encoded in the document name.
func (d Document) President() string {
	return PresidentName(d.Name)
}

// PresidentName extracts the president from a file name such as
// "Nomination_Chirac1.txt": the part after the first underscore, without
// extension or digits.
func PresidentName(filename string) string {
	base := filename
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	parts := strings.Split(base, "_")
	if len(parts) < 2 {
		return ""
	}
	name := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, strings.Join(parts[1:], "_"))
	return strings.TrimSpace(name)
}

// Index is the immutable result of scoring a corpus. It is built once and
// handed to every query.
type Index struct {
	Docs      []Document
	DF_table  map[string]int
	IDF_table map[string]float64
	Matrix    *Matrix

	byName map[string]int
}

// NewIndex scores docs in the given order. The order fixes each
// document's position in every vector derived from the index.
func NewIndex(docs []Document) *Index {
	ix := &Index{
		Docs:   docs,
		byName: make(map[string]int, len(docs)),
	}
	for i, doc := range docs {
		ix.byName[doc.Name] = i
	}
	ix.DF_table = DocumentFrequencies(docs)
	ix.IDF_table = IDFTable(ix.DF_table, len(docs))
	ix.Matrix = BuildMatrix(docs, ix.IDF_table)
	return ix
}

// N returns the corpus size.
func (ix *Index) N() int {
	return len(ix.Docs)
}

// Document looks a document up by file name.
func (ix *Index) Document(name string) (*Document, bool) {
	i, ok := ix.byName[name]
	if !ok {
		return nil, false
	}
	return &ix.Docs[i], true
}
