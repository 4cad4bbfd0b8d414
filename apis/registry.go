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

package apis

import "reflect"

// Registry maps provider names to constructible provider descriptions.
// It plays the role a class-by-name loading facility plays elsewhere:
// descriptor resources carry names, the registry turns names into types
// and factories. Keep it minimal so implementations can be lock-free or
// sync.Map-backed.
type Registry interface {
	// Register associates a name with a Provider.
	// Implementations should be idempotent for the same (name, type) pair;
	// re-registering a name with a different type is a conflict.
	Register(name string, p Provider) error
	// Lookup returns the Provider registered under name, if present.
	Lookup(name string) (Provider, bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Provider describes a constructible implementation known to a Registry.
type Provider struct {
	// Name is the name the provider was registered under.
	Name string
	// Type is the concrete type produced by New.
	Type reflect.Type
	// New constructs a fresh instance of Type.
	New func() any
}

// Entry is a single (name, provider) association in a Registry snapshot.
type Entry struct {
	// Name is the registered name.
	Name string
	// Provider is the associated provider description.
	Provider Provider
}
