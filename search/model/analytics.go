package model

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// InvestitureOrder lists the nomination speeches by date of investiture.
// Each entry is the suffix of a "Nomination_<entry>.txt" file.
var InvestitureOrder = []string{
	"Giscard dEstaing",
	"Mitterrand1",
	"Mitterrand2",
	"Chirac1",
	"Chirac2",
	"Sarkozy",
	"Hollande",
	"Macron",
}

// ClimateKeywords are matched as substrings of the cleaned text.
var ClimateKeywords = []string{
	"climat",
	"climatique",
	"ecologie",
	"ecologique",
	"planete",
	"transition energetique",
	"rechauffement",
	"changement climatique",
	"rechauffement global",
	"energies renouvelables",
	"emissions de gaz a effet de serre",
	"developpement durable",
	"ressources naturelles",
	"biodiversite",
	"pollution",
	"conservation de la nature",
	"durabilite",
}

// NominationFile is the cleaned file name of an investiture speech.
func NominationFile(id string) string {
	return "Nomination_" + id + ".txt"
}

// TermCount is a term with its number of occurrences.
type TermCount struct {
	Term  string
	Count int
}

// Mention locates the first speech mentioning a topic.
type Mention struct {
	President string
	File      string
	Keyword   string
}

// LeastImportantTerms returns the terms scoring exactly 0 in every
// document, sorted.
func (ix *Index) LeastImportantTerms() []string {
	var terms []string
	for _, term := range ix.Matrix.Terms {
		if allZero(ix.Matrix.Scores[term]) {
			terms = append(terms, term)
		}
	}
	return terms
}

// MostImportantTerms returns every term reaching the highest score of the
// matrix, sorted, with that score.
func (ix *Index) MostImportantTerms() ([]string, float64, error) {
	if len(ix.Matrix.Terms) == 0 || ix.Matrix.N == 0 {
		return nil, 0, ErrEmptyResult
	}
	best := 0.0
	var terms []string
	for i, term := range ix.Matrix.Terms {
		top := floats.Max(ix.Matrix.Scores[term])
		switch {
		case i == 0 || top > best:
			best = top
			terms = []string{term}
		case top == best:
			terms = append(terms, term)
		}
	}
	return terms, best, nil
}

// TopTermsByPresident counts, over the documents whose name contains
// president, the occurrences of terms scoring above threshold somewhere
// in the corpus. Results are sorted by count descending, then term
// ascending, and cut to limit entries when limit > 0.
func (ix *Index) TopTermsByPresident(president string, threshold float64, limit int) []TermCount {
	significant := make(map[string]struct{})
	for term, scores := range ix.Matrix.Scores {
		for _, s := range scores {
			if s > threshold {
				significant[term] = struct{}{}
				break
			}
		}
	}

	counts := make(map[string]int)
	for _, doc := range ix.Docs {
		if !strings.Contains(doc.Name, president) {
			continue
		}
		for _, token := range doc.Tokens {
			if _, ok := significant[token]; ok {
				counts[token]++
			}
		}
	}

	result := make([]TermCount, 0, len(counts))
	for term, count := range counts {
		result = append(result, TermCount{Term: term, Count: count})
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Term < result[j].Term
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// KeywordMentions counts exact occurrences of word per president.
// Presidents who never use it are left out.
func (ix *Index) KeywordMentions(word string) map[string]int {
	mentions := make(map[string]int)
	for _, doc := range ix.Docs {
		n := 0
		for _, token := range doc.Tokens {
			if token == word {
				n++
			}
		}
		if n > 0 {
			mentions[doc.President()] += n
		}
	}
	return mentions
}

// MentioningPresidents lists the presidents with at least one mention, sorted.
func MentioningPresidents(mentions map[string]int) []string {
	var names []string
	for name, n := range mentions {
		if n > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// MostMentioning returns the president with the most mentions. Ties go to
// the alphabetically first name.
func MostMentioning(mentions map[string]int) (string, int, error) {
	names := MentioningPresidents(mentions)
	if len(names) == 0 {
		return "", 0, ErrEmptyResult
	}
	best := names[0]
	for _, name := range names[1:] {
		if mentions[name] > mentions[best] {
			best = name
		}
	}
	return best, mentions[best], nil
}

// FirstMention walks order and returns the first nomination speech whose
// cleaned text contains one of keywords. Speeches absent from the corpus
// are skipped.
func (ix *Index) FirstMention(order, keywords []string) (Mention, error) {
	for _, id := range order {
		name := NominationFile(id)
		doc, ok := ix.Document(name)
		if !ok {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(doc.Text, kw) {
				return Mention{President: PresidentName(name), File: name, Keyword: kw}, nil
			}
		}
	}
	return Mention{}, fmt.Errorf("no speech mentions %v: %w", keywords, ErrEmptyResult)
}

// CommonVocabulary returns the terms used in every document, minus those
// scoring 0 everywhere, sorted.
func (ix *Index) CommonVocabulary() []string {
	if len(ix.Docs) == 0 {
		return nil
	}
	common := make(map[string]struct{}, len(ix.Docs[0].F_table))
	for term := range ix.Docs[0].F_table {
		common[term] = struct{}{}
	}
	for _, doc := range ix.Docs[1:] {
		for term := range common {
			if _, ok := doc.F_table[term]; !ok {
				delete(common, term)
			}
		}
	}

	var terms []string
	for term := range common {
		if !allZero(ix.Matrix.Scores[term]) {
			terms = append(terms, term)
		}
	}
	sort.Strings(terms)
	return terms
}

func allZero(scores []float64) bool {
	for _, s := range scores {
		if s != 0 {
			return false
		}
	}
	return true
}
