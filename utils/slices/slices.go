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

package slices

import (
	"dirpx.dev/nsx/opt"
)

// Get returns the element of s at index i.
// A nil slice or an out-of-range index (including negative) yields None.
func Get[T any](s []T, i int) opt.Opt[T] {
	if s == nil || i < 0 || i >= len(s) {
		return opt.None[T]()
	}
	return opt.Some(s[i])
}

// GetOr returns the element of s at index i, or def.
func GetOr[T any](s []T, i int, def T) T {
	return Get(s, i).Or(def)
}

// GetOrElse returns the element of s at index i, or the result of fn.
// fn is invoked only when the index does not resolve.
func GetOrElse[T any](s []T, i int, fn func() T) T {
	return Get(s, i).OrElse(fn)
}
