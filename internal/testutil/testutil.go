// Package testutil holds helpers shared by tests across packages.
package testutil

import "sync"

// LongSentence is a realistic sentence used by benchmarks and tests.
const LongSentence = "Full-text search is a technique for searching documents stored in a database, " +
	"and it involves indexing the content of documents and building inverted indexes that map " +
	"terms to the documents containing them; modern search engines use ranking " +
	"algorithms like BM25 to estimate the relevance of documents to a given query."

// StubSplitter returns canned words and records which variant was called.
type StubSplitter struct {
	Words []string
	Err   error

	mu               sync.Mutex
	plainCalls       int
	punctuationCalls int
}

// Split returns the canned words or error.
func (s *StubSplitter) Split(string) ([]string, error) {
	s.mu.Lock()
	s.plainCalls++
	s.mu.Unlock()
	return s.result()
}

// SplitWithPunctuation returns the canned words or error.
func (s *StubSplitter) SplitWithPunctuation(string) ([]string, error) {
	s.mu.Lock()
	s.punctuationCalls++
	s.mu.Unlock()
	return s.result()
}

// Calls reports how often each variant was invoked.
func (s *StubSplitter) Calls() (plain, punctuation int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plainCalls, s.punctuationCalls
}

func (s *StubSplitter) result() ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]string(nil), s.Words...), nil
}
