package text_preprocessor

import (
	"bufio"
	"embed"
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed stopwords/*.txt
var stopwordFiles embed.FS

var supportedLanguages = map[string]struct{}{
	"french": {},
}

func getStopwords(lang string) ([]string, error) {
	lang = strings.ToLower(lang)
	if _, ok := supportedLanguages[lang]; !ok {
		return nil, errors.New("stop-words for " + cases.Title(language.Und).String(lang) + " are not available")
	}

	file, err := stopwordFiles.Open("stopwords/" + lang + ".txt")
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var stopwords []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			stopwords = append(stopwords, word)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return stopwords, nil
}

func GetStopwords(swList any) ([]string, error) {
	switch v := swList.(type) {
	case string:
		return getStopwords(v)
	case []string:
		return v, nil
	case map[string]struct{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		return keys, nil
	case nil:
		return []string{}, nil
	default:
		return nil, errors.New("unsupported type for stopwords")
	}
}

// StopwordSet folds every stop word the same way question tokens are
// folded, so accented entries match accent-stripped tokens.
func StopwordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[FoldToken(w)] = struct{}{}
	}
	return set
}

// FrenchStopwords returns the folded French stop-word set.
func FrenchStopwords() map[string]struct{} {
	words, err := getStopwords("french")
	if err != nil {
		// the list is embedded at build time
		panic(err)
	}
	return StopwordSet(words)
}
