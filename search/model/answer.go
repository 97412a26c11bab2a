package model

import (
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"DiscoursGo/search/text_preprocessor"
)

const (
	FileNotFoundMessage  = "Le fichier spécifié est introuvable."
	TermNotFoundMessage  = "Le mot important n'a pas été trouvé dans le document."
	NoDocumentMessage    = "Aucun document pertinent trouvé pour la question posée."
	DefaultAnswerOpening = "Voici ce que j'ai trouvé : "
)

// AnswerOpenings pairs interrogative openers with the phrase introducing
// the answer. The first opener equal to the question's leading word wins.
var AnswerOpenings = []struct {
	Opener  string
	Opening string
}{
	{"Comment", "Après analyse, "},
	{"Pourquoi", "Il semble que la raison soit : "},
	{"Peux-tu", "Certainement! "},
	{"Qui", "Il semble que cela concerne : "},
	{"Où", "Cela semble se rapporter à : "},
	{"Quand", "Cela semble s'être produit : "},
	{"Quel", "La réponse à cette question est : "},
	{"Quelle", "La réponse à cette question est : "},
	{"Quels", "Les réponses à cette question sont : "},
	{"Quelles", "Les réponses à cette question sont : "},
}

var upperFrench = cases.Upper(language.French)

// ExtractSentence returns the first period-delimited sentence of the file
// at path containing term as a whole word, lower-cased and ended by a
// period. Words are compared without accents, so "etat" finds "état".
func ExtractSentence(path, term string) (string, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return FileNotFoundMessage, ErrMissingFile
	}
	if err != nil {
		return "", err
	}
	if term == "" {
		return TermNotFoundMessage, ErrEmptyResult
	}

	pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(term)) + `\b`)
	content := strings.ToLower(text_preprocessor.DecodeText(raw))
	for _, sentence := range text_preprocessor.MustTokenizer("sent")(content) {
		if pattern.MatchString(text_preprocessor.FoldToken(sentence)) {
			return strings.TrimSpace(sentence) + ".", nil
		}
	}
	return TermNotFoundMessage, ErrEmptyResult
}

// FormulateAnswer prefixes sentence with the phrase matching the question's
// opener and capitalizes its first letter.
func FormulateAnswer(question, sentence string) string {
	return openingFor(question) + capitalizeFirst(sentence)
}

func openingFor(question string) string {
	fields := strings.Fields(question)
	if len(fields) == 0 {
		return DefaultAnswerOpening
	}
	lead := strings.TrimRight(fields[0], "?!.,;:")
	for _, o := range AnswerOpenings {
		if strings.EqualFold(lead, o.Opener) {
			return o.Opening
		}
	}
	return DefaultAnswerOpening
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return upperFrench.String(string(r)) + s[size:]
}
