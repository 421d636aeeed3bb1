package analysis

import (
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// SegmentKind tells words and punctuation apart.
type SegmentKind int

const (
	SegmentWord SegmentKind = iota
	SegmentPunctuation
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentWord:
		return "word"
	case SegmentPunctuation:
		return "punctuation"
	default:
		return "unknown"
	}
}

// Segment is a contiguous piece of a sentence.
type Segment struct {
	Text      string
	Kind      SegmentKind
	StartByte int
	EndByte   int
}

// Segments scans text into words and punctuation marks. Whitespace only
// separates segments and is never returned.
//
// A word is a run of letters, marks, numbers or underscores. A single
// apostrophe or hyphen between two word runes stays inside the word, so
// "don't" and "well-known" are one segment each. Any other rune is a
// punctuation segment of its own.
func Segments(text string) ([]Segment, error) {
	var segs []Segment
	i := 0

	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			return nil, errors.Wrapf(ErrInvalidUTF8, "byte offset %d", i)
		case unicode.IsSpace(r):
			i += size
		case isWordRune(r):
			start := i
			i = scanWord(text, i)
			segs = append(segs, Segment{
				Text:      text[start:i],
				Kind:      SegmentWord,
				StartByte: start,
				EndByte:   i,
			})
		default:
			segs = append(segs, Segment{
				Text:      text[i : i+size],
				Kind:      SegmentPunctuation,
				StartByte: i,
				EndByte:   i + size,
			})
			i += size
		}
	}

	return segs, nil
}

// scanWord returns the byte index just past the word starting at i.
func scanWord(text string, i int) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if isWordRune(r) {
			i += size
			continue
		}
		if isJoiner(r) {
			next, nextSize := utf8.DecodeRuneInString(text[i+size:])
			if nextSize > 0 && isWordRune(next) {
				i += size + nextSize
				continue
			}
		}
		break
	}
	return i
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsNumber(r) || r == '_'
}

func isJoiner(r rune) bool {
	return r == '\'' || r == '’' || r == '-'
}
