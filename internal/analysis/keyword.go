package analysis

import "strings"

// KeywordSplitter passes the entire sentence through as a single word.
type KeywordSplitter struct{}

// NewKeywordSplitter creates a new KeywordSplitter.
func NewKeywordSplitter() *KeywordSplitter {
	return &KeywordSplitter{}
}

// Split returns the trimmed sentence as one word, or nothing if it is blank.
func (s *KeywordSplitter) Split(sentence string) ([]string, error) {
	if err := checkUTF8(sentence); err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(sentence)
	if trimmed == "" {
		return []string{}, nil
	}
	return []string{trimmed}, nil
}

// SplitWithPunctuation behaves like Split.
func (s *KeywordSplitter) SplitWithPunctuation(sentence string) ([]string, error) {
	return s.Split(sentence)
}
