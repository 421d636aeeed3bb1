package analysis

import "github.com/samber/lo"

// StandardSplitter splits on Unicode word boundaries and preserves case.
type StandardSplitter struct{}

// NewStandardSplitter creates a new StandardSplitter.
func NewStandardSplitter() *StandardSplitter {
	return &StandardSplitter{}
}

// Split returns the words of sentence.
func (s *StandardSplitter) Split(sentence string) ([]string, error) {
	return splitSegments(sentence, false)
}

// SplitWithPunctuation returns words and punctuation marks in order.
func (s *StandardSplitter) SplitWithPunctuation(sentence string) ([]string, error) {
	return splitSegments(sentence, true)
}

func splitSegments(sentence string, punctuation bool) ([]string, error) {
	segs, err := Segments(sentence)
	if err != nil {
		return nil, err
	}
	return lo.FilterMap(segs, func(seg Segment, _ int) (string, bool) {
		return seg.Text, punctuation || seg.Kind == SegmentWord
	}), nil
}
