package analysis

import (
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// ErrInvalidUTF8 is returned when a sentence is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid utf-8 in sentence")

// Splitter divides a sentence into an ordered sequence of words.
type Splitter interface {
	// Split returns the words of sentence with punctuation dropped.
	Split(sentence string) ([]string, error)
	// SplitWithPunctuation returns words and punctuation as separate units.
	SplitWithPunctuation(sentence string) ([]string, error)
}

func checkUTF8(text string) error {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			return errors.Wrapf(ErrInvalidUTF8, "byte offset %d", i)
		}
		i += size
	}
	return nil
}
