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

package registry_test

import (
	"reflect"
	"testing"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/registry"
)

type impl1 struct{}
type impl2 struct{}

func provider(v any) apis.Provider {
	return apis.Provider{
		Type: reflect.TypeOf(v),
		New:  func() any { return v },
	}
}

func TestRegister_IdempotentAndLookup(t *testing.T) {
	reg := registry.New()

	err := reg.Register("plugins.one", provider(impl1{}))
	if err != nil {
		t.Fatalf("Register(plugins.one): unexpected error: %v", err)
	}
	// idempotent re-register with same type
	if err := reg.Register("plugins.one", provider(impl1{})); err != nil {
		t.Fatalf("Register(plugins.one) idempotent: unexpected error: %v", err)
	}

	p, ok := reg.Lookup("plugins.one")
	if !ok || p.Type != reflect.TypeOf(impl1{}) {
		t.Fatalf("Lookup(plugins.one): got (%v,%v), want (impl1,true)", p.Type, ok)
	}
	if p.Name != "plugins.one" {
		t.Fatalf("Lookup(plugins.one): Name = %q, want plugins.one", p.Name)
	}

	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}

func TestRegister_Conflict(t *testing.T) {
	reg := registry.New()

	if err := reg.Register("plugins.one", provider(impl1{})); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	// Same name, different type -> conflict
	err := reg.Register("plugins.one", provider(impl2{}))
	if err == nil || err != registry.ErrConflictingRegistration {
		t.Fatalf("expected ErrConflictingRegistration, got: %v", err)
	}
}

func TestRegister_Errors(t *testing.T) {
	reg := registry.New()

	if err := reg.Register("", provider(impl1{})); err != registry.ErrEmptyName {
		t.Fatalf("empty name: want ErrEmptyName, got %v", err)
	}
	if err := reg.Register("x", apis.Provider{New: func() any { return nil }}); err != registry.ErrNilType {
		t.Fatalf("nil type: want ErrNilType, got %v", err)
	}
	if err := reg.Register("x", apis.Provider{Type: reflect.TypeOf(impl1{})}); err != registry.ErrNilFactory {
		t.Fatalf("nil factory: want ErrNilFactory, got %v", err)
	}
}

func TestLookup_Missing(t *testing.T) {
	reg := registry.New()

	if _, ok := reg.Lookup("nope"); ok {
		t.Fatalf("Lookup(nope): want miss")
	}
	if _, ok := reg.Lookup(""); ok {
		t.Fatalf("Lookup(\"\"): want miss")
	}
}

func TestEntriesAndReset(t *testing.T) {
	reg := registry.New()

	_ = reg.Register("plugins.one", provider(impl1{}))
	_ = reg.Register("plugins.two", provider(impl2{}))

	entries := reg.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries len = %d, want 2", len(entries))
	}
	if reg.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", reg.Count())
	}

	reg.Reset()
	if reg.Count() != 0 {
		t.Fatalf("Count() after Reset = %d, want 0", reg.Count())
	}
	if len(reg.Entries()) != 0 {
		t.Fatalf("Entries after Reset = %d, want 0", len(reg.Entries()))
	}

	// The earlier snapshot is unaffected by Reset.
	if len(entries) != 2 {
		t.Fatalf("snapshot len after Reset = %d, want 2", len(entries))
	}
}

func TestProvide(t *testing.T) {
	reg := registry.New()

	if err := registry.Provide(reg, "plugins.one", func() impl1 { return impl1{} }); err != nil {
		t.Fatalf("Provide: unexpected error: %v", err)
	}

	p, ok := reg.Lookup("plugins.one")
	if !ok {
		t.Fatalf("Lookup(plugins.one): want hit")
	}
	if p.Type != reflect.TypeOf(impl1{}) {
		t.Fatalf("provider type = %v, want impl1", p.Type)
	}
	if _, isImpl := p.New().(impl1); !isImpl {
		t.Fatalf("factory produced %T, want impl1", p.New())
	}

	if err := registry.Provide[impl1](reg, "plugins.other", nil); err != registry.ErrNilFactory {
		t.Fatalf("nil factory: want ErrNilFactory, got %v", err)
	}
	if err := registry.Provide(nil, "plugins.one", func() impl1 { return impl1{} }); err == nil {
		t.Fatalf("nil registry: want error")
	}
}
