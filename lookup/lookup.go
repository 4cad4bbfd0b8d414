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

// Package lookup builds maps keyed by a caller-supplied accessor applied
// to each element. Builds are fail-fast: a nil or duplicate computed key
// aborts the whole build with a typed error instead of silently dropping
// or overwriting entries.
package lookup

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"strconv"

	"dirpx.dev/nsx/opt"
)

// ErrNilArgument is returned when a build is invoked with a nil accessor,
// source, or destination.
var ErrNilArgument = errors.New("lookup: nil argument")

// NilKeyError is returned when the accessor computes a nil key.
// Index is the position of the offending element in the source.
type NilKeyError struct{ Index int }

// Error implements the error interface.
func (e NilKeyError) Error() string {
	// Example: lookup: nil key for element 3
	return "lookup: nil key for element " + strconv.Itoa(e.Index)
}

// DuplicateKeyError is returned when the accessor computes a key that is
// already present in the destination map.
type DuplicateKeyError struct{ Key any }

// Error implements the error interface.
func (e DuplicateKeyError) Error() string {
	// Example: lookup: duplicate key "db"
	return fmt.Sprintf("lookup: duplicate key %v", e.Key)
}

// Extend inserts every element of items into dst, keyed by key.
//
// The build is fail-fast: the first nil or duplicate computed key aborts
// with a typed error. Entries inserted before the failing element remain
// in dst; callers that need all-or-nothing semantics should build into a
// fresh map via ByField.
func Extend[K comparable, T any](key func(T) K, items []T, dst map[K]T) error {
	if key == nil || items == nil || dst == nil {
		return ErrNilArgument
	}

	for i, item := range items {
		k := key(item)
		if isNilKey(k) {
			return NilKeyError{Index: i}
		}
		if _, exists := dst[k]; exists {
			return DuplicateKeyError{Key: k}
		}
		dst[k] = item
	}

	return nil
}

// ByField builds a fresh map from items, keyed by key.
// On any failure the returned map is nil, never partially filled.
func ByField[K comparable, T any](key func(T) K, items []T) (map[K]T, error) {
	if key == nil || items == nil {
		return nil, ErrNilArgument
	}

	dst := make(map[K]T, len(items))
	if err := Extend(key, items, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// ByFieldSeq builds a fresh map from a sequence, keyed by key.
// On any failure the returned map is nil, never partially filled.
func ByFieldSeq[K comparable, T any](key func(T) K, seq iter.Seq[T]) (map[K]T, error) {
	if key == nil || seq == nil {
		return nil, ErrNilArgument
	}

	dst := make(map[K]T)
	i := 0
	for item := range seq {
		k := key(item)
		if isNilKey(k) {
			return nil, NilKeyError{Index: i}
		}
		if _, exists := dst[k]; exists {
			return nil, DuplicateKeyError{Key: k}
		}
		dst[k] = item
		i++
	}

	return dst, nil
}

// Get returns the value stored under k. A nil map or a missing key
// yields None.
func Get[K comparable, T any](m map[K]T, k K) opt.Opt[T] {
	v, ok := m[k]
	return opt.Of(v, ok)
}

// isNilKey reports whether k holds a nil value of a nil-able kind.
// Comparable non-nil-able kinds (strings, numbers, structs) never match.
func isNilKey(k any) bool {
	v := reflect.ValueOf(k)
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
