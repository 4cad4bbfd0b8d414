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

// Package inspect provides reflection helpers: type-parameter extraction
// from instantiated generic types, container normalization, and
// constructor invocation.
//
// Every reflective failure (unnamed type, arity mismatch, panic during a
// constructor call) is reported as an absent result, never propagated.
package inspect

import (
	"reflect"
	"strings"

	"dirpx.dev/nsx/config"
	"dirpx.dev/nsx/opt"
	uslc "dirpx.dev/nsx/utils/slices"
)

// TypeOf returns the reflect.Type of T without requiring an instance.
// Unlike reflect.TypeOf on a value, it works for interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Zero returns the zero value of T.
func Zero[T any]() T {
	var zero T
	return zero
}

// TypeParams extracts the ordered type-argument tokens of an instantiated
// generic type: Pair[int,string] -> ["int", "string"].
//
// Containers are unwrapped first (default normalization depth), so
// []*Pair[int,string] resolves the same way. A nil, unnamed, or
// non-generic type yields None, not an empty list.
func TypeParams(t reflect.Type) opt.Opt[[]string] {
	if t == nil {
		return opt.None[[]string]()
	}

	base, err := Normalize(t, config.DefaultConfig())
	if err != nil {
		return opt.None[[]string]()
	}

	return parseTypeParams(base.Name())
}

// TypeParam extracts the i-th type-argument token of an instantiated
// generic type. An out-of-range or negative index yields None.
func TypeParam(t reflect.Type, i int) opt.Opt[string] {
	return opt.Then(TypeParams(t), func(params []string) opt.Opt[string] {
		return uslc.Get(params, i)
	})
}

// FirstTypeParam extracts the first type-argument token.
func FirstTypeParam(t reflect.Type) opt.Opt[string] {
	return TypeParam(t, 0)
}

// parseTypeParams splits the bracketed suffix of an instantiated generic
// type name into top-level tokens. Nested instantiations stay intact:
// "M[Pair[int,string],bool]" -> ["Pair[int,string]", "bool"].
func parseTypeParams(name string) opt.Opt[[]string] {
	open := strings.IndexByte(name, '[')
	if open < 0 || !strings.HasSuffix(name, "]") {
		return opt.None[[]string]()
	}

	inner := name[open+1 : len(name)-1]
	if strings.TrimSpace(inner) == "" {
		return opt.None[[]string]()
	}

	var params []string
	depth, start := 0, 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				params = append(params, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	params = append(params, strings.TrimSpace(inner[start:]))

	return opt.Some(params)
}
