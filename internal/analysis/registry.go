package analysis

import (
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

var (
	ErrUnknownSplitter   = errors.New("unknown splitter")
	ErrDuplicateSplitter = errors.New("splitter already registered")
)

// Registry manages splitter instances by name.
type Registry struct {
	splitters map[string]Splitter
	mu        sync.RWMutex
}

// NewRegistry creates a Registry with the built-in splitters registered.
func NewRegistry() *Registry {
	r := &Registry{
		splitters: make(map[string]Splitter),
	}
	r.splitters["standard"] = NewStandardSplitter()
	r.splitters["whitespace"] = NewWhitespaceSplitter()
	r.splitters["keyword"] = NewKeywordSplitter()
	return r
}

// Get returns the splitter registered under the given name.
func (r *Registry) Get(name string) (Splitter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.splitters[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSplitter, "%q", name)
	}
	return s, nil
}

// Register adds a custom splitter to the registry.
func (r *Registry) Register(name string, s Splitter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.splitters[name]; exists {
		return errors.Wrapf(ErrDuplicateSplitter, "%q", name)
	}
	r.splitters[name] = s
	return nil
}

// Names returns the sorted names of all registered splitters.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := lo.Keys(r.splitters)
	slices.Sort(names)
	return names
}
