package model

import (
	"errors"

	"github.com/sirupsen/logrus"

	"DiscoursGo/search/text_preprocessor"
)

// Answer holds every intermediate result of a question.
type Answer struct {
	Question     string
	Tokens       []string
	CorpusTokens []string
	Document     string
	Term         string
	Sentence     string
	Text         string
}

// Chatbot answers free-text questions from an Index.
type Chatbot struct {
	index       *Index
	tokenizer   *text_preprocessor.QuestionTokenizer
	cleanedDir  string
	speechesDir string
	logger      *logrus.Entry
}

func NewChatbot(index *Index, cleanedDir, speechesDir string, logger *logrus.Entry) *Chatbot {
	return &Chatbot{
		index:       index,
		tokenizer:   text_preprocessor.NewQuestionTokenizer(),
		cleanedDir:  cleanedDir,
		speechesDir: speechesDir,
		logger:      logger.WithField("component", "chatbot"),
	}
}

// Ask retrieves the document closest to question and answers with its
// first sentence containing the question's most salient term.
func (c *Chatbot) Ask(question string) Answer {
	ans := Answer{Question: question}
	ans.Tokens = c.tokenizer.Tokenize(question)
	query := c.index.Vectorize(ans.Tokens)
	ans.CorpusTokens = query.CorpusTokens
	c.logger.WithFields(logrus.Fields{
		"tokens":        ans.Tokens,
		"corpus_tokens": ans.CorpusTokens,
	}).Debug("question tokenized")

	match, err := c.index.Retrieve(query)
	if errors.Is(err, ErrNoRelevantDocument) {
		ans.Text = NoDocumentMessage
		return ans
	}
	ans.Document = SourcePath(match.Doc.Path, c.cleanedDir, c.speechesDir)
	c.logger.WithFields(logrus.Fields{
		"document":   ans.Document,
		"matches":    match.Matches,
		"similarity": match.Similarity,
	}).Debug("document retrieved")

	term, ok := query.TopTerm()
	if !ok {
		ans.Sentence = TermNotFoundMessage
		ans.Text = FormulateAnswer(question, ans.Sentence)
		return ans
	}
	ans.Term = term

	sentence, err := ExtractSentence(ans.Document, term)
	if err != nil && !errors.Is(err, ErrEmptyResult) && !errors.Is(err, ErrMissingFile) {
		c.logger.WithError(err).Warn("reading speech failed")
		sentence = FileNotFoundMessage
	}
	ans.Sentence = sentence
	ans.Text = FormulateAnswer(question, sentence)
	return ans
}
