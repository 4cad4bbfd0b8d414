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

package nsx

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/builder"
	"dirpx.dev/nsx/config"
	"dirpx.dev/nsx/discover"
	"dirpx.dev/nsx/opt"
)

// init initializes the global nsx state.
func init() {
	// Initialize state with default cfg, ldr, reg, and fnd.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.ldr = b.BuildLoader(s.cfg, nil)
	s.reg = b.BuildRegistry(s.cfg, nil)
	s.fnd = b.BuildFinder(s.cfg, s.ldr, s.reg)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("nsx: builder returned nil registry")
	// ErrNilLoader is returned when a builder returns a nil loader.
	ErrNilLoader = errors.New("nsx: builder returned nil loader")
	// ErrNilFinder is returned when a builder returns a nil finder.
	ErrNilFinder = errors.New("nsx: builder returned nil finder")
)

// Content returns the trimmed content of every resource matching path on
// the global loader chain, in discovery order.
// This is a convenience wrapper around the global fnd.
func Content(path string) (opt.Opt[[]string], error) {
	return st.Load().fnd.Content(path)
}

// Lines behaves like Content but splits each resource content into
// non-empty trimmed lines.
// This is a convenience wrapper around the global fnd.
func Lines(path string) (opt.Opt[[]string], error) {
	return st.Load().fnd.Lines(path)
}

// Glob returns every resource on the global loader chain matching the
// doublestar pattern, in chain order.
// This is a convenience wrapper around the global ldr.
func Glob(pattern string) ([]apis.Resource, error) {
	return st.Load().ldr.Glob(pattern)
}

// ProvidersType resolves the providers declared for the interface type t.
// This is a convenience wrapper around the global fnd.
func ProvidersType(t reflect.Type) (opt.Opt[[]apis.Provider], error) {
	return st.Load().fnd.Providers(t)
}

// Providers resolves the providers declared for the interface type T.
// This is a convenience wrapper around the global fnd.
func Providers[T any]() (opt.Opt[[]apis.Provider], error) {
	return discover.ProvidersOf[T](st.Load().fnd)
}

// Instances resolves and instantiates the providers declared for the
// interface type T.
// This is a convenience wrapper around the global fnd.
func Instances[T any]() (opt.Opt[[]T], error) {
	return discover.InstancesOf[T](st.Load().fnd)
}

// Register adds a provider to the global nsx reg.
// This is a convenience wrapper around the global reg.
func Register(name string, p apis.Provider) error {
	return st.Load().reg.Register(name, p)
}

// SetAll explicitly sets all global nsx state components.
//
// Nil arguments leave the corresponding component unchanged, falling back
// to a rebuild through the builder where one is required.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ldr apis.Loader, reg apis.Registry, fnd apis.Finder, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Loader
	nldr := ldr
	if nldr == nil {
		nldr = nbld.BuildLoader(ncfg, old.ldr)
	}

	// Registry
	nreg := reg
	npreg := false
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg)
	} else {
		npreg = true
	}

	// Finder
	nfnd := fnd
	npfnd := false
	if nfnd == nil {
		nfnd = nbld.BuildFinder(ncfg, nldr, nreg)
	} else {
		npfnd = true
	}

	// Ensure non-nil ldr, reg, and fnd.
	if nldr == nil {
		panic(ErrNilLoader)
	}
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nfnd == nil {
		panic(ErrNilFinder)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ldr:  nldr,
			reg:  nreg,
			fnd:  nfnd,
			bld:  nbld,
			preg: npreg,
			pfnd: npfnd,
		},
	)
}

// Config returns the global nsx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global nsx configuration to cfg.
// It rebuilds the global ldr, reg, and fnd using the new configuration.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new ldr, reg, and fnd based on the new cfg and old state.
	nldr := b.BuildLoader(cfg, old.ldr)
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(cfg, old.reg)
	}
	nfnd := old.fnd
	if !old.pfnd {
		nfnd = b.BuildFinder(cfg, nldr, nreg)
	}

	// Ensure non-nil ldr, reg, and fnd.
	if nldr == nil {
		panic(ErrNilLoader)
	}
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nfnd == nil {
		panic(ErrNilFinder)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			ldr:  nldr,
			reg:  nreg,
			fnd:  nfnd,
			bld:  b,
			preg: old.preg,
			pfnd: old.pfnd,
		},
	)
}

// Loader returns the global nsx ldr.
func Loader() apis.Loader {
	return st.Load().ldr
}

// SetLoader sets the global nsx ldr to ldr.
// It uses the global nsx configuration to rebuild the global fnd.
// This is a convenience wrapper around the global state.
func SetLoader(ldr apis.Loader) {
	if ldr == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new fnd based on the old cfg and new ldr.
	nfnd := old.fnd
	if !old.pfnd {
		nfnd = b.BuildFinder(old.cfg, ldr, old.reg)
	}

	// Ensure non-nil fnd.
	if nfnd == nil {
		panic(ErrNilFinder)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ldr:  ldr,
			reg:  old.reg,
			fnd:  nfnd,
			bld:  b,
			preg: old.preg,
			pfnd: old.pfnd,
		},
	)
}

// Registry returns the global nsx reg.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global nsx reg to reg.
// It uses the global nsx configuration to rebuild the global fnd.
// This is a convenience wrapper around the global state.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new fnd based on the old cfg and new reg.
	nfnd := old.fnd
	if !old.pfnd {
		nfnd = b.BuildFinder(old.cfg, old.ldr, reg)
	}

	// Ensure non-nil fnd.
	if nfnd == nil {
		panic(ErrNilFinder)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ldr:  old.ldr,
			reg:  reg,
			fnd:  nfnd,
			bld:  b,
			preg: true,
			pfnd: old.pfnd,
		},
	)
}

// Finder returns the global nsx fnd.
func Finder() apis.Finder {
	return st.Load().fnd
}

// SetFinder sets the global nsx fnd to fnd.
// This is a convenience wrapper around the global state.
func SetFinder(fnd apis.Finder) {
	if fnd == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ldr:  old.ldr,
			reg:  old.reg,
			fnd:  fnd,
			bld:  old.bld,
			preg: old.preg,
			pfnd: true,
		},
	)
}

// Builder returns the global nsx bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global nsx bld to b.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new ldr, reg, and fnd based on the new bld and old state.
	nldr := b.BuildLoader(old.cfg, old.ldr)
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg)
	}
	nfnd := old.fnd
	if !old.pfnd {
		nfnd = b.BuildFinder(old.cfg, nldr, nreg)
	}

	// Ensure non-nil ldr, reg, and fnd.
	if nldr == nil {
		panic(ErrNilLoader)
	}
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nfnd == nil {
		panic(ErrNilFinder)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ldr:  nldr,
			reg:  nreg,
			fnd:  nfnd,
			bld:  b,
			preg: old.preg,
			pfnd: old.pfnd,
		},
	)
}

// IsRegistryPinned returns whether the global nsx reg is pinned (immutable).
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry keeps the global nsx reg across reconfigurations.
func PinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ldr:  old.ldr,
			reg:  old.reg,
			fnd:  old.fnd,
			bld:  old.bld,
			preg: true,
			pfnd: old.pfnd,
		},
	)
}

// UnpinRegistry lets reconfigurations rebuild the global nsx reg again.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ldr:  old.ldr,
			reg:  old.reg,
			fnd:  old.fnd,
			bld:  old.bld,
			preg: false,
			pfnd: old.pfnd,
		},
	)
}

// IsFinderPinned returns whether the global nsx fnd is pinned (immutable).
func IsFinderPinned() bool {
	return st.Load().pfnd
}

// PinFinder keeps the global nsx fnd across reconfigurations.
func PinFinder() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ldr:  old.ldr,
			reg:  old.reg,
			fnd:  old.fnd,
			bld:  old.bld,
			preg: old.preg,
			pfnd: true,
		},
	)
}

// UnpinFinder lets reconfigurations rebuild the global nsx fnd again.
func UnpinFinder() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ldr:  old.ldr,
			reg:  old.reg,
			fnd:  old.fnd,
			bld:  old.bld,
			preg: old.preg,
			pfnd: false,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global nsx state.
var st atomic.Pointer[state]

// state is the global nsx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global nsx configuration.
	cfg apis.Config
	// ldr is the global nsx ldr.
	ldr apis.Loader
	// reg is the global nsx reg.
	reg apis.Registry
	// fnd is the global nsx fnd.
	fnd apis.Finder
	// bld is the global nsx bld.
	bld apis.Builder
	// preg indicates whether the reg is pinned (kept across rebuilds).
	preg bool
	// pfnd indicates whether the fnd is pinned (kept across rebuilds).
	pfnd bool
}
