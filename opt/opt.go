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

// Package opt provides Opt[T], the optional-result container used across
// nsx in place of nil returns and panics.
//
// Every nsx operation that can fail to produce a value returns an Opt
// instead of a nullable value. Callers that prefer plain values unwrap
// with Or, OrZero, OrElse, or Ptr; there is no parallel "raw" API.
package opt

// Opt holds zero or one value of type T.
// The zero value is None. An Opt is immutable after construction.
type Opt[T any] struct {
	val T
	ok  bool
}

// Some returns an Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{val: v, ok: true}
}

// None returns an empty Opt.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Of adapts a comma-ok pair into an Opt.
func Of[T any](v T, ok bool) Opt[T] {
	if !ok {
		return Opt[T]{}
	}
	return Opt[T]{val: v, ok: true}
}

// FromPtr returns Some(*p), or None if p is nil.
func FromPtr[T any](p *T) Opt[T] {
	if p == nil {
		return Opt[T]{}
	}
	return Opt[T]{val: *p, ok: true}
}

// Get returns the held value and whether one is present.
func (o Opt[T]) Get() (T, bool) {
	return o.val, o.ok
}

// IsSome reports whether a value is present.
func (o Opt[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Opt is empty.
func (o Opt[T]) IsNone() bool {
	return !o.ok
}

// OrZero returns the held value, or the zero value of T.
func (o Opt[T]) OrZero() T {
	return o.val
}

// Or returns the held value, or def.
func (o Opt[T]) Or(def T) T {
	if o.ok {
		return o.val
	}
	return def
}

// OrElse returns the held value, or the result of fn.
// fn is invoked only on an empty Opt; a nil fn yields the zero value.
func (o Opt[T]) OrElse(fn func() T) T {
	if o.ok {
		return o.val
	}
	if fn == nil {
		var zero T
		return zero
	}
	return fn()
}

// Ptr returns a pointer to a copy of the held value, or nil.
func (o Opt[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.val
	return &v
}

// Map applies fn to the held value, producing an Opt of the result.
// An empty input or a nil fn yields None.
func Map[T, U any](o Opt[T], fn func(T) U) Opt[U] {
	if !o.ok || fn == nil {
		return Opt[U]{}
	}
	return Some(fn(o.val))
}

// Then applies fn to the held value, keeping fn's own presence verdict.
// An empty input or a nil fn yields None.
func Then[T, U any](o Opt[T], fn func(T) Opt[U]) Opt[U] {
	if !o.ok || fn == nil {
		return Opt[U]{}
	}
	return fn(o.val)
}
