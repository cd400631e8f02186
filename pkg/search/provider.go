package search

import (
	"context"
	"sort"
)

// Provider is one search backend in the chain. Implementations are built at
// startup and must be safe for concurrent use.
type Provider interface {
	Name() string
	Search(ctx context.Context, req Request) (*Response, error)
}

// Registry holds the providers the chain can reach, keyed by name. Names in
// the configured order that were never registered (disabled, missing key)
// are skipped at search time.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds a provider, replacing any previous one with the same name.
func (r *Registry) Register(p Provider) {
	if p == nil {
		return
	}
	r.providers[p.Name()] = p
}

// Get returns the named provider, or nil when it was never registered.
func (r *Registry) Get(name string) Provider {
	if r == nil {
		return nil
	}
	return r.providers[name]
}

// Names lists the registered providers in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
