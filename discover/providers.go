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

package discover

import (
	"fmt"
	"reflect"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/inspect"
	"dirpx.dev/nsx/opt"
)

// UnknownProviderError reports a descriptor entry with no matching
// registration.
type UnknownProviderError struct {
	Name string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("nsx(discover): no provider registered under %q", e.Name)
}

// NotAssignableError reports a registered provider whose type does not
// satisfy the requested interface.
type NotAssignableError struct {
	Name  string
	Type  reflect.Type
	Iface reflect.Type
}

func (e *NotAssignableError) Error() string {
	return fmt.Sprintf("nsx(discover): provider %q has type %s, not assignable to %s", e.Name, e.Type, e.Iface)
}

// Providers resolves the service descriptor for iface and returns every
// registered provider it names whose type is assignable to iface, in
// descriptor order with duplicates preserved. A nil or non-interface
// type yields None. An empty result yields None.
func (f *Finder) Providers(iface reflect.Type) (opt.Opt[[]apis.Provider], error) {
	if iface == nil || iface.Kind() != reflect.Interface {
		return opt.None[[]apis.Provider](), nil
	}

	lines, err := f.Lines(ServicePath(iface.String()))
	if err != nil {
		return opt.None[[]apis.Provider](), err
	}
	names, ok := lines.Get()
	if !ok {
		return opt.None[[]apis.Provider](), nil
	}
	return f.resolve(names, iface)
}

// resolve maps descriptor entries to registered providers. Unknown names
// and non-assignable types fail the whole lookup when ThrowOnFail is set
// and are skipped otherwise.
func (f *Finder) resolve(names []string, iface reflect.Type) (opt.Opt[[]apis.Provider], error) {
	var out []apis.Provider
	for _, name := range names {
		p, ok := lookup(f.reg, name)
		if !ok {
			if f.cfg.ThrowOnFail {
				return opt.None[[]apis.Provider](), &UnknownProviderError{Name: name}
			}
			continue
		}
		if p.Type == nil || !p.Type.AssignableTo(iface) {
			if f.cfg.ThrowOnFail {
				return opt.None[[]apis.Provider](), &NotAssignableError{Name: name, Type: p.Type, Iface: iface}
			}
			continue
		}
		out = append(out, p)
	}

	if len(out) == 0 {
		return opt.None[[]apis.Provider](), nil
	}
	return opt.Some(out), nil
}

func lookup(reg apis.Registry, name string) (apis.Provider, bool) {
	if reg == nil {
		return apis.Provider{}, false
	}
	return reg.Lookup(name)
}

// ProvidersOf resolves providers for the interface type T.
func ProvidersOf[T any](f apis.Finder) (opt.Opt[[]apis.Provider], error) {
	if f == nil {
		return opt.None[[]apis.Provider](), nil
	}
	return f.Providers(inspect.TypeOf[T]())
}

// InstancesOf resolves providers for the interface type T and
// instantiates each one. A factory that panics or produces a value that
// does not satisfy T fails the lookup under ThrowOnFail and is skipped
// otherwise.
func InstancesOf[T any](f apis.Finder) (opt.Opt[[]T], error) {
	found, err := ProvidersOf[T](f)
	if err != nil {
		return opt.None[[]T](), err
	}
	providers, ok := found.Get()
	if !ok {
		return opt.None[[]T](), nil
	}

	throw := f.Config().ThrowOnFail
	var out []T
	for _, p := range providers {
		v, err := instantiate[T](p)
		if err != nil {
			if throw {
				return opt.None[[]T](), err
			}
			continue
		}
		out = append(out, v)
	}

	if len(out) == 0 {
		return opt.None[[]T](), nil
	}
	return opt.Some(out), nil
}

// instantiate calls the provider factory, converting a panic into an
// error so one broken factory cannot take down the lookup.
func instantiate[T any](p apis.Provider) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("nsx(discover): provider %q factory panicked: %v", p.Name, r)
		}
	}()

	if p.New == nil {
		return v, fmt.Errorf("nsx(discover): provider %q has no factory", p.Name)
	}
	raw := p.New()
	t, ok := raw.(T)
	if !ok {
		return v, fmt.Errorf("nsx(discover): provider %q produced %T, want %s", p.Name, raw, inspect.TypeOf[T]())
	}
	return t, nil
}
