// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"slices"
	"sync"
)

// Factory creates a new Surface of the given size.
type Factory func(width, height int) (Surface, error)

// Registry maps backend names to surface factories.
// A Registry is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// globalRegistry is the default registry used by Register and New.
var globalRegistry = NewRegistry()

// NewRegistry creates an empty registry.
// Most code should use the global registry via Register and New.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a backend to the global registry.
// Registering a name that already exists replaces the previous entry.
func Register(name string, factory Factory) {
	globalRegistry.Register(name, factory)
}

// Backends returns the names registered in the global registry, sorted.
func Backends() []string {
	return globalRegistry.Backends()
}

// New creates a surface using the named backend from the global registry.
func New(name string, width, height int) (Surface, error) {
	return globalRegistry.New(name, width, height)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Backends returns the registered backend names, sorted.
func (r *Registry) Backends() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New creates a surface using the named backend.
func (r *Registry) New(name string, width, height int) (Surface, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	return factory(width, height)
}

// init registers the built-in backends.
func init() {
	Register("image", func(w, h int) (Surface, error) {
		return NewImageSurface(w, h), nil
	})
	Register("recording", func(w, h int) (Surface, error) {
		return NewRecordingSurfaceFor(NewImageSurface(w, h)), nil
	})
}
