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

package sets

import (
	"iter"
	"sync"

	"dirpx.dev/nsx/opt"
)

// SyncSet is a mutual-exclusion wrapper around a Set for shared
// multi-goroutine use after construction. Construction itself is
// single-threaded; every operation takes the lock.
type SyncSet[T comparable] struct {
	mu  sync.RWMutex
	set Set[T]
}

// NewSync creates a SyncSet pre-populated with the provided values.
func NewSync[T comparable](vals ...T) *SyncSet[T] {
	return &SyncSet[T]{set: New(vals...)}
}

// Synced converts a slice into a SyncSet. A nil slice yields None.
func Synced[T comparable](items []T) opt.Opt[*SyncSet[T]] {
	if items == nil {
		return opt.None[*SyncSet[T]]()
	}
	return opt.Some(NewSync(items...))
}

// SyncedSeq drains a sequence into a SyncSet. A nil sequence yields None.
func SyncedSeq[T comparable](seq iter.Seq[T]) opt.Opt[*SyncSet[T]] {
	return opt.Map(FromSeq(seq), func(s Set[T]) *SyncSet[T] {
		return &SyncSet[T]{set: s}
	})
}

// Add inserts v into the set.
func (s *SyncSet[T]) Add(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set.Add(v)
}

// Has reports whether v is present.
func (s *SyncSet[T]) Has(v T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Has(v)
}

// Delete removes v if present.
func (s *SyncSet[T]) Delete(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set.Delete(v)
}

// Len returns the number of elements.
func (s *SyncSet[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Len()
}

// Values returns the elements as a slice. Order is unspecified.
func (s *SyncSet[T]) Values() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Values()
}

// Snapshot returns an independent copy of the underlying Set.
func (s *SyncSet[T]) Snapshot() Set[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Clone()
}
