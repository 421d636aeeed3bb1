// Package lexer turns sentences into annotated word tokens.
package lexer

import (
	"strings"
	"unicode/utf8"

	"wordlexer/internal/analysis"
)

// UnspecifiedLength asks AnnotateWords to derive the sentence length from
// the words themselves.
const UnspecifiedLength = -1

// Splitter divides a sentence into an ordered sequence of words.
// Implementations must preserve the order in which words appear.
type Splitter interface {
	// Split returns the words of sentence with punctuation dropped.
	Split(sentence string) ([]string, error)
	// SplitWithPunctuation returns words and punctuation as separate units.
	SplitWithPunctuation(sentence string) ([]string, error)
}

// CharacterLength returns the length of s in Unicode code points.
func CharacterLength(s string) int {
	return utf8.RuneCountInString(s)
}

// AnnotateWords converts already split words into tokens.
//
// A negative sentenceCharacterLength (see UnspecifiedLength) is replaced by
// the length of the words joined with single spaces. CharacterPosition is
// the sum of the lengths of all preceding words; separators are not
// counted, so it is not an offset into the original sentence.
func AnnotateWords(words []string, sentenceCharacterLength int) []Token {
	if sentenceCharacterLength < 0 {
		sentenceCharacterLength = CharacterLength(strings.Join(words, " "))
	}

	n := len(words)
	tokens := make([]Token, 0, n)
	seen := make(map[string]int)
	charPos := 0
	for i, w := range words {
		seen[w]++
		tokens = append(tokens, Token{
			Text:                    w,
			Position:                i,
			CharacterPosition:       charPos,
			SentenceTokenLength:     n,
			SentenceCharacterLength: sentenceCharacterLength,
			Occurrence:              seen[w],
		})
		charPos += CharacterLength(w)
	}

	// Totals are only known once every word has been seen.
	for i := range tokens {
		tokens[i].Occurrences = seen[tokens[i].Text]
	}
	return tokens
}

type options struct {
	punctuation bool
}

// Option configures a single Tokenize call.
type Option func(*options)

// WithPunctuation keeps punctuation marks as tokens of their own.
func WithPunctuation(preserve bool) Option {
	return func(o *options) {
		o.punctuation = preserve
	}
}

// Lexer tokenizes sentences with a fixed Splitter.
// It holds no per-call state and is safe for concurrent use if its
// Splitter is.
type Lexer struct {
	splitter Splitter
}

// NewLexer creates a Lexer that splits sentences with s.
func NewLexer(s Splitter) *Lexer {
	return &Lexer{splitter: s}
}

// Tokenize splits sentence and annotates the resulting words. The sentence
// character length reported on every token is that of sentence itself.
// Errors from the Splitter are returned as is.
func (l *Lexer) Tokenize(sentence string, opts ...Option) ([]Token, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var (
		words []string
		err   error
	)
	if o.punctuation {
		words, err = l.splitter.SplitWithPunctuation(sentence)
	} else {
		words, err = l.splitter.Split(sentence)
	}
	if err != nil {
		return nil, err
	}
	return AnnotateWords(words, CharacterLength(sentence)), nil
}

var defaultLexer = NewLexer(analysis.NewStandardSplitter())

// Tokenize tokenizes sentence with the standard splitter.
func Tokenize(sentence string, opts ...Option) ([]Token, error) {
	return defaultLexer.Tokenize(sentence, opts...)
}
