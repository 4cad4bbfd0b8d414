/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package registry provides the process-wide provider registry: the
// mapping from provider names, as they appear in descriptor resources,
// to constructible provider descriptions.
package registry

import (
	"errors"
	"sync"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/inspect"
)

var (
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("nsx(registry): empty name provided")
	// ErrNilType is returned when a provider with a nil type is provided.
	ErrNilType = errors.New("nsx(registry): nil provider type")
	// ErrNilFactory is returned when a provider with a nil factory is provided.
	ErrNilFactory = errors.New("nsx(registry): nil provider factory")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a name with a different provider type.
	ErrConflictingRegistration = errors.New("nsx(registry): conflicting provider registration")
)

// New constructs an empty apis.Registry.
func New() apis.Registry {
	return &registry{}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps name to apis.Provider.
	m sync.Map // map[string]apis.Provider
	// count tracks the number of registered entries.
	count int
}

// Register associates name with the given provider.
// It is idempotent for the same (name, type) pair.
func (r *registry) Register(name string, p apis.Provider) error {
	// Validate inputs early.
	if name == "" {
		return ErrEmptyName
	}
	if p.Type == nil {
		return ErrNilType
	}
	if p.New == nil {
		return ErrNilFactory
	}
	p.Name = name

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(name); ok {
		if old.(apis.Provider).Type == p.Type {
			return nil // idempotent re-registration
		}
		return ErrConflictingRegistration
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(name); ok {
		if old.(apis.Provider).Type == p.Type {
			return nil
		}
		return ErrConflictingRegistration
	}

	r.m.Store(name, p)
	r.count++
	return nil
}

// Lookup returns the provider registered under name, if present.
func (r *registry) Lookup(name string) (apis.Provider, bool) {
	if name == "" {
		return apis.Provider{}, false
	}
	if v, ok := r.m.Load(name); ok {
		return v.(apis.Provider), true
	}
	return apis.Provider{}, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Name:     key.(string),
			Provider: value.(apis.Provider),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = sync.Map{}
	r.count = 0
}

// Provide registers a typed factory under name.
// T should be the concrete type the factory produces; the provider's
// type is derived from it without invoking the factory.
func Provide[T any](reg apis.Registry, name string, fn func() T) error {
	if reg == nil {
		return errors.New("nsx(registry): nil registry")
	}
	if fn == nil {
		return ErrNilFactory
	}
	return reg.Register(name, apis.Provider{
		Name: name,
		Type: inspect.TypeOf[T](),
		New:  func() any { return fn() },
	})
}
