package text_preprocessor

import (
	"errors"
	"strings"
)

// TokenizerFunc defines the type for tokenizer functions.
type TokenizerFunc func(string) []string

// tokenizersDict maps tokenizer names to their corresponding functions.
var tokenizersDict = map[string]TokenizerFunc{
	"whitespace": strings.Fields,
	"sent":       sentenceTokenizer,
}

// sentenceTokenizer cuts text on every period. Abbreviations and other
// terminators are not handled.
func sentenceTokenizer(text string) []string {
	return strings.Split(text, ".")
}

// getTokenizer returns the tokenizer function based on the provided name.
func getTokenizer(tokenizer string) (TokenizerFunc, error) {
	tokenizer = strings.ToLower(tokenizer)
	if fn, exists := tokenizersDict[tokenizer]; exists {
		return fn, nil
	}
	return nil, errors.New("tokenizer " + tokenizer + " not supported")
}

// GetTokenizer returns a tokenizer function based on the provided input.
func GetTokenizer(tokenizer any) (TokenizerFunc, error) {
	switch t := tokenizer.(type) {
	case string:
		return getTokenizer(t)
	case TokenizerFunc:
		return t, nil
	case nil:
		return identityFunction, nil
	default:
		return nil, errors.New("not implemented")
	}
}

// MustTokenizer is GetTokenizer for names known at compile time.
func MustTokenizer(name string) TokenizerFunc {
	fn, err := getTokenizer(name)
	if err != nil {
		panic(err)
	}
	return fn
}

// identityFunction is a tokenizer function that returns the input as a single token.
func identityFunction(input string) []string {
	return []string{input}
}
