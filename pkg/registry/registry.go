// Package registry provides the central registry of runnable samples.
package registry

import (
	"fmt"
	"strings"
	"sync"

	"github.com/marshallshelly/northwind-samples/pkg/model"
	"github.com/marshallshelly/northwind-samples/pkg/runtime"
)

// Query produces a sample's output stream from a data source.
type Query func(src model.Source) runtime.Stream

// Sample is a named query with its harness metadata.
type Sample struct {
	Name        string
	Aliases     []string
	Title       string
	Category    string
	Description string
	Query       Query
}

// Stream validates src and then runs the query. A *runtime.DataShapeError
// is yielded before any output when the source is malformed.
func (s Sample) Stream(src model.Source) runtime.Stream {
	return func(yield func(runtime.Item, error) bool) {
		if err := model.Validate(src); err != nil {
			yield(runtime.Item{}, err)
			return
		}
		for item, err := range s.Query(src) {
			if !yield(item, err) || err != nil {
				return
			}
		}
	}
}

// Registry is a thread-safe registry of samples, kept in registration order.
type Registry struct {
	mu      sync.RWMutex
	samples []Sample
	names   map[string]int
}

// NewRegistry creates a new Registry instance.
func NewRegistry() *Registry {
	return &Registry{
		names: make(map[string]int),
	}
}

// Register adds a sample. Names and aliases are matched case-insensitively
// and must be unique across the registry.
func (r *Registry) Register(s Sample) error {
	if s.Name == "" {
		return fmt.Errorf("sample must have a name")
	}
	if s.Query == nil {
		return fmt.Errorf("sample %s has no query", s.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	keys := append([]string{s.Name}, s.Aliases...)
	for _, k := range keys {
		if _, ok := r.names[normalize(k)]; ok {
			return fmt.Errorf("%w: %s", runtime.ErrDuplicateSample, k)
		}
	}

	r.samples = append(r.samples, s)
	for _, k := range keys {
		r.names[normalize(k)] = len(r.samples) - 1
	}

	return nil
}

// MustRegister registers s and panics on error.
func (r *Registry) MustRegister(s Sample) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}

// Get retrieves a sample by name or alias.
func (r *Registry) Get(name string) (Sample, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.names[normalize(name)]
	if !ok {
		return Sample{}, fmt.Errorf("%w: %s", runtime.ErrSampleNotFound, name)
	}

	return r.samples[i], nil
}

// Has checks if a name or alias is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	_, ok := r.names[normalize(name)]
	r.mu.RUnlock()

	return ok
}

// All returns every sample in registration order.
func (r *Registry) All() []Sample {
	r.mu.RLock()
	defer r.mu.RUnlock()

	samples := make([]Sample, len(r.samples))
	copy(samples, r.samples)
	return samples
}

// Names returns the primary sample names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.samples))
	for _, s := range r.samples {
		names = append(names, s.Name)
	}
	return names
}

// Len returns the number of registered samples.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.samples)
}

// Clear removes all registered samples.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.samples = nil
	r.names = make(map[string]int)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// globalRegistry is the default global registry instance.
var globalRegistry = NewRegistry()

// Register registers a sample in the global registry.
func Register(s Sample) error {
	return globalRegistry.Register(s)
}

// MustRegister registers a sample in the global registry and panics on error.
func MustRegister(s Sample) {
	globalRegistry.MustRegister(s)
}

// Get retrieves a sample from the global registry.
func Get(name string) (Sample, error) {
	return globalRegistry.Get(name)
}

// All returns every sample of the global registry.
func All() []Sample {
	return globalRegistry.All()
}

// Names returns the sample names of the global registry.
func Names() []string {
	return globalRegistry.Names()
}
