package model

import (
	"path/filepath"
	"testing"

	"DiscoursGo/search/text_preprocessor"
)

type testSpeech struct {
	name string
	text string
}

// newTestIndex indexes already-cleaned texts in the given order.
func newTestIndex(t *testing.T, dir string, speeches ...testSpeech) *Index {
	t.Helper()
	docs := make([]Document, 0, len(speeches))
	for _, s := range speeches {
		docs = append(docs, NewDocument(s.name, filepath.Join(dir, s.name), text_preprocessor.NormalizeDocument(s.text)))
	}
	return NewIndex(docs)
}

// scenarioIndex is the two-speech corpus used throughout the tests.
func scenarioIndex(t *testing.T) *Index {
	return newTestIndex(t, "cleaned",
		testSpeech{"Nomination_Chirac1.txt", "la nation la republique"},
		testSpeech{"Nomination_Macron.txt", "la nation europeenne"},
	)
}
