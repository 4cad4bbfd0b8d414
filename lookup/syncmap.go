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

package lookup

import (
	"sync"

	"dirpx.dev/nsx/opt"
)

// SyncMap is a mutual-exclusion wrapper around a built map for shared
// multi-goroutine use after construction. Construction itself is
// single-threaded; every operation takes the lock.
type SyncMap[K comparable, T any] struct {
	mu sync.RWMutex
	m  map[K]T
}

// SyncByField builds a SyncMap from items, keyed by key.
// Build semantics match ByField.
func SyncByField[K comparable, T any](key func(T) K, items []T) (*SyncMap[K, T], error) {
	m, err := ByField(key, items)
	if err != nil {
		return nil, err
	}
	return &SyncMap[K, T]{m: m}, nil
}

// Get returns the value stored under k, or None.
func (s *SyncMap[K, T]) Get(k K) opt.Opt[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Get(s.m, k)
}

// Put stores v under k. An existing entry is rejected with
// DuplicateKeyError, matching the build invariant.
func (s *SyncMap[K, T]) Put(k K, v T) error {
	if isNilKey(k) {
		return NilKeyError{Index: -1}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.m[k]; exists {
		return DuplicateKeyError{Key: k}
	}
	s.m[k] = v
	return nil
}

// Delete removes the entry under k if present.
func (s *SyncMap[K, T]) Delete(k K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, k)
}

// Len returns the number of entries.
func (s *SyncMap[K, T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// Snapshot returns an independent copy of the underlying map.
func (s *SyncMap[K, T]) Snapshot() map[K]T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[K]T, len(s.m))
	for k, v := range s.m {
		out[k] = v
	}
	return out
}
