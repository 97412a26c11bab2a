package text_preprocessor

import "strings"

// Config holds the configuration for text preprocessing.
type Config struct {
	Tokenizer                   TokenizerFunc
	Stopwords                   map[string]struct{}
	DoSpecialCharsNormalization bool
	DoDiacriticsNormalization   bool
	DoLowercasing               bool
	// DoPunctuationRemoval replaces punctuation with spaces.
	DoPunctuationRemoval bool
	// DoPunctuationStripping splits on apostrophes and hyphens, then
	// deletes the remaining punctuation.
	DoPunctuationStripping bool
	// DoTokenFolding strips accents token by token after tokenization.
	DoTokenFolding bool
}

// NewConfig returns the configuration used to clean speech documents.
func NewConfig() *Config {
	return &Config{
		Tokenizer:                   strings.Fields,
		Stopwords:                   make(map[string]struct{}),
		DoSpecialCharsNormalization: true,
		DoDiacriticsNormalization:   true,
		DoLowercasing:               true,
		DoPunctuationRemoval:        true,
	}
}

// NewQuestionConfig returns the configuration used to tokenize questions.
func NewQuestionConfig(stopwords map[string]struct{}) *Config {
	return &Config{
		Tokenizer:                   strings.Fields,
		Stopwords:                   stopwords,
		DoSpecialCharsNormalization: true,
		DoLowercasing:               true,
		DoPunctuationStripping:      true,
		DoTokenFolding:              true,
	}
}

// TextPreprocessor holds the preprocessing steps and configuration.
type TextPreprocessor struct {
	config *Config
	steps  []func(string) string
}

// NewTextPreprocessor creates a new TextPreprocessor with the given configuration.
func NewTextPreprocessor(config *Config) *TextPreprocessor {
	if config.Tokenizer == nil {
		config.Tokenizer = strings.Fields
	}
	tp := &TextPreprocessor{config: config}
	tp.createPreprocessingSteps()
	return tp
}

// createPreprocessingSteps creates the preprocessing steps based on the configuration.
// Transliteration runs before lowercasing because unidecode may emit capitals.
func (tp *TextPreprocessor) createPreprocessingSteps() {
	if tp.config.DoSpecialCharsNormalization {
		tp.steps = append(tp.steps, NormalizeSpecialChars)
	}
	if tp.config.DoDiacriticsNormalization {
		tp.steps = append(tp.steps, NormalizeDiacritics)
	}
	if tp.config.DoLowercasing {
		tp.steps = append(tp.steps, Lowercasing)
	}
	if tp.config.DoPunctuationRemoval {
		tp.steps = append(tp.steps, RemovePunctuation)
	}
	if tp.config.DoPunctuationStripping {
		tp.steps = append(tp.steps, SplitSeparators, StripPunctuation)
	}
}

// Clean runs the text-level steps and returns the cleaned text with its
// original line layout.
func (tp *TextPreprocessor) Clean(item string) string {
	for _, step := range tp.steps {
		item = step(item)
	}
	return item
}

// Process cleans a single text item and splits it into filtered tokens.
func (tp *TextPreprocessor) Process(item string) []string {
	tokens := tp.config.Tokenizer(tp.Clean(item))
	if tp.config.DoTokenFolding {
		for i, token := range tokens {
			tokens[i] = FoldToken(token)
		}
	}
	tokens = RemoveEmptyTokens(tokens)
	if len(tp.config.Stopwords) > 0 {
		tokens = RemoveStopwords(tokens, tp.config.Stopwords)
	}
	return tokens
}

// NormalizeDocument is the cleaning pass applied to every speech.
func NormalizeDocument(text string) string {
	return documentPreprocessor.Clean(text)
}

var documentPreprocessor = NewTextPreprocessor(NewConfig())

// QuestionTokenizer tokenizes free-text questions against the French
// stop-word list.
type QuestionTokenizer struct {
	tp *TextPreprocessor
}

func NewQuestionTokenizer() *QuestionTokenizer {
	return &QuestionTokenizer{tp: NewTextPreprocessor(NewQuestionConfig(FrenchStopwords()))}
}

// Tokenize returns the question's words, lower-cased, accent-stripped and
// without stop words.
func (q *QuestionTokenizer) Tokenize(question string) []string {
	return q.tp.Process(question)
}
