package text_preprocessor

import (
	"strings"

	"github.com/rainycape/unidecode"
)

// Translation tables
var specialCharsTrans = strings.NewReplacer(
	"‘", "'", "’", "'", "´", "'", "“", "\"", "”", "\"", "«", "\"", "»", "\"",
	"–", "-", "—", "-", "‑", "-", "…", "...", "\u00a0", " ", "\u202f", " ",
)

// asciiPunctuation is the ASCII punctuation set, apostrophe and hyphen included.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var punctuationTranslation = func() *strings.Replacer {
	var oldnew []string
	for _, r := range asciiPunctuation {
		oldnew = append(oldnew, string(r), " ")
	}
	return strings.NewReplacer(oldnew...)
}()

var separatorTranslation = strings.NewReplacer("'", " ", "-", " ")

// frenchDiacritics maps the accented letters of French to their base letter.
var frenchDiacritics = strings.NewReplacer(
	"à", "a", "â", "a", "ä", "a",
	"è", "e", "é", "e", "ê", "e", "ë", "e",
	"î", "i", "ï", "i",
	"ô", "o", "ö", "o",
	"ù", "u", "û", "u", "ü", "u",
	"ç", "c",
)

func Lowercasing(text string) string {
	return strings.ToLower(text)
}

// NormalizeDiacritics folds French accented letters to their base letter,
// then transliterates whatever non-ASCII rune is left (œ, æ, capitals).
func NormalizeDiacritics(text string) string {
	text = frenchDiacritics.Replace(text)
	if isASCII(text) {
		return text
	}
	return unidecode.Unidecode(text)
}

func NormalizeSpecialChars(text string) string {
	return specialCharsTrans.Replace(text)
}

// RemovePunctuation replaces every ASCII punctuation mark with a space.
// Apostrophes and hyphens become spaces too, so "l'état" yields two words.
func RemovePunctuation(text string) string {
	return punctuationTranslation.Replace(text)
}

// SplitSeparators turns apostrophes and hyphens into spaces.
func SplitSeparators(text string) string {
	return separatorTranslation.Replace(text)
}

// StripPunctuation deletes ASCII punctuation marks.
func StripPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x80 && strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, text)
}

// FoldToken strips accents from a single token and lower-cases the result.
func FoldToken(token string) string {
	return Lowercasing(NormalizeDiacritics(token))
}

func StripWhitespaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func RemoveEmptyTokens(tokens []string) []string {
	var result []string
	for _, token := range tokens {
		if token != "" {
			result = append(result, token)
		}
	}
	return result
}

func RemoveStopwords(tokens []string, stopwords map[string]struct{}) []string {
	var result []string
	for _, token := range tokens {
		if _, found := stopwords[token]; !found {
			result = append(result, token)
		}
	}
	return result
}

func isASCII(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] >= 0x80 {
			return false
		}
	}
	return true
}
