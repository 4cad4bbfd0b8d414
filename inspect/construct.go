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

package inspect

import (
	"reflect"

	"dirpx.dev/nsx/opt"
)

// errType is the reflect.Type of the error interface.
var errType = reflect.TypeOf((*error)(nil)).Elem()

// New returns a fresh zero instance of t.
//
// Pointer types get an allocated element; value types get their zero
// value. Interface and func types cannot be instantiated and yield None,
// as does a nil type.
func New(t reflect.Type) opt.Opt[any] {
	if t == nil {
		return opt.None[any]()
	}

	switch t.Kind() {
	case reflect.Interface, reflect.Func:
		return opt.None[any]()
	case reflect.Ptr:
		return opt.Some(reflect.New(t.Elem()).Interface())
	default:
		return opt.Some(reflect.New(t).Elem().Interface())
	}
}

// NewOf returns a fresh zero instance of the concrete type T.
func NewOf[T any]() opt.Opt[T] {
	return As[T](New(TypeOf[T]()))
}

// Construct invokes ctor with args and returns its first result.
//
// ctor must be a non-variadic func whose parameters are assignable from
// the runtime types of args (a nil arg becomes the zero value of the
// parameter type) and which returns either (T) or (T, error).
//
// Any mismatch, a non-nil returned error, or a panic during the call
// yields None; reflective failures never propagate.
func Construct(ctor any, args ...any) (out opt.Opt[any]) {
	defer func() {
		if r := recover(); r != nil {
			out = opt.None[any]()
		}
	}()

	if ctor == nil {
		return opt.None[any]()
	}

	fv := reflect.ValueOf(ctor)
	ft := fv.Type()
	if ft.Kind() != reflect.Func || ft.IsVariadic() {
		return opt.None[any]()
	}
	if ft.NumIn() != len(args) {
		return opt.None[any]()
	}
	if ft.NumOut() < 1 || ft.NumOut() > 2 {
		return opt.None[any]()
	}
	if ft.NumOut() == 2 && !ft.Out(1).Implements(errType) {
		return opt.None[any]()
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		pt := ft.In(i)
		if arg == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(pt) {
			return opt.None[any]()
		}
		in[i] = av
	}

	res := fv.Call(in)
	if len(res) == 2 && !res[1].IsNil() {
		return opt.None[any]()
	}
	return opt.Some(res[0].Interface())
}

// ConstructAs invokes ctor with args and asserts the result to T.
func ConstructAs[T any](ctor any, args ...any) opt.Opt[T] {
	return As[T](Construct(ctor, args...))
}

// As narrows an Opt[any] to an Opt[T]; a failed assertion yields None.
func As[T any](o opt.Opt[any]) opt.Opt[T] {
	return opt.Then(o, func(v any) opt.Opt[T] {
		t, ok := v.(T)
		return opt.Of(t, ok)
	})
}
