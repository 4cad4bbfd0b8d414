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
	"runtime"
	"strconv"
	"sync"
	"testing"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/registry"
)

// A few named types to avoid anonymous/unnamed pitfalls.
type P0 struct{}
type P1 struct{}
type P2 struct{}
type P3 struct{}
type P4 struct{}

// TestConcurrentRegisterAndLookup verifies that Register/Lookup/Entries/Count
// are race-free and consistent under concurrent use.
func TestConcurrentRegisterAndLookup(t *testing.T) {
	reg := registry.New()

	types := []reflect.Type{
		reflect.TypeOf(P0{}), reflect.TypeOf(P1{}), reflect.TypeOf(P2{}),
		reflect.TypeOf(P3{}), reflect.TypeOf(P4{}),
	}
	names := make([]string, len(types))
	for i := range types {
		names[i] = "plugins.p" + strconv.Itoa(i)
	}

	prov := func(i int) apis.Provider {
		return apis.Provider{Type: types[i], New: func() any { return nil }}
	}

	// Register once (sequential) to establish baseline.
	for i := range types {
		if err := reg.Register(names[i], prov(i)); err != nil {
			t.Fatalf("register %s: %v", names[i], err)
		}
	}

	// Hammer with concurrent lookups and idempotent re-registrations.
	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				name := names[i%len(names)]
				if got, ok := reg.Lookup(name); !ok || got.Type == nil {
					t.Errorf("lookup failed for %s: ok=%v got=%v", name, ok, got.Type)
					return
				}
				_ = reg.Count()
				_ = reg.Entries()
			}
		}()
	}

	// Writers (idempotent re-register)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				j := (i + id) % len(names)
				_ = reg.Register(names[j], prov(j)) // must be safe & idempotent
			}
		}(w)
	}

	wg.Wait()

	// Final consistency checks.
	if reg.Count() != len(types) {
		t.Fatalf("count mismatch: got %d want %d", reg.Count(), len(types))
	}
	got := map[string]reflect.Type{}
	for _, e := range reg.Entries() {
		got[e.Name] = e.Provider.Type
	}
	for i, name := range names {
		if got[name] != types[i] {
			t.Fatalf("entry mismatch for %s: got %v want %v", name, got[name], types[i])
		}
	}
}
