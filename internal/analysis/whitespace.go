package analysis

import (
	"strings"

	"github.com/samber/lo"
)

// WhitespaceSplitter splits text on whitespace without any normalization.
type WhitespaceSplitter struct{}

// NewWhitespaceSplitter creates a new WhitespaceSplitter.
func NewWhitespaceSplitter() *WhitespaceSplitter {
	return &WhitespaceSplitter{}
}

// Split returns the whitespace separated fields of sentence with leading
// and trailing punctuation trimmed. Fields made only of punctuation are
// dropped.
func (s *WhitespaceSplitter) Split(sentence string) ([]string, error) {
	if err := checkUTF8(sentence); err != nil {
		return nil, err
	}
	return lo.FilterMap(strings.Fields(sentence), func(f string, _ int) (string, bool) {
		trimmed := strings.TrimFunc(f, func(r rune) bool { return !isWordRune(r) })
		return trimmed, trimmed != ""
	}), nil
}

// SplitWithPunctuation returns the whitespace separated fields untouched.
func (s *WhitespaceSplitter) SplitWithPunctuation(sentence string) ([]string, error) {
	if err := checkUTF8(sentence); err != nil {
		return nil, err
	}
	return append([]string{}, strings.Fields(sentence)...), nil
}
