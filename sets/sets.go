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

// Package sets provides null-safe adapters from slices and sequences to
// unordered sets, including a synchronized variant for shared use.
package sets

import (
	"iter"

	"dirpx.dev/nsx/opt"
)

// Set is an unordered hash-based set of comparable values.
type Set[T comparable] map[T]struct{}

// New creates a Set pre-populated with the provided values.
func New[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v into the set.
func (s Set[T]) Add(v T) { s[v] = struct{}{} }

// Has reports whether v is present.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Delete removes v if present.
func (s Set[T]) Delete(v T) { delete(s, v) }

// Len returns the number of elements.
func (s Set[T]) Len() int { return len(s) }

// Values returns the elements as a slice. Order is unspecified.
func (s Set[T]) Values() []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}

// Clone returns a shallow copy.
func (s Set[T]) Clone() Set[T] {
	out := make(Set[T], len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// Maker is a pluggable set-construction strategy.
// FromFunc hands it the source elements and adopts whatever it builds.
type Maker[T comparable] func(items []T) Set[T]

// HashMaker is the default Maker: an unordered hash-based set.
func HashMaker[T comparable](items []T) Set[T] {
	return New(items...)
}

// From converts a slice into a Set. A nil slice yields None.
func From[T comparable](items []T) opt.Opt[Set[T]] {
	return FromFunc(items, HashMaker[T])
}

// FromSeq drains a sequence into a Set. A nil sequence yields None.
func FromSeq[T comparable](seq iter.Seq[T]) opt.Opt[Set[T]] {
	if seq == nil {
		return opt.None[Set[T]]()
	}
	s := make(Set[T])
	for v := range seq {
		s[v] = struct{}{}
	}
	return opt.Some(s)
}

// FromFunc converts a slice into a Set using the provided Maker.
// A nil slice or nil Maker yields None.
func FromFunc[T comparable](items []T, mk Maker[T]) opt.Opt[Set[T]] {
	if items == nil || mk == nil {
		return opt.None[Set[T]]()
	}
	return opt.Some(mk(items))
}
