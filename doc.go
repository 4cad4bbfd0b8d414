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

// Package nsx provides a global, process-wide resource and provider
// discovery service, together with the null-safe utility packages it is
// built from.
//
// nsx answers two kinds of questions:
//
//   - "What does the process ship under this path?": enumerate every
//     resource matching a path or glob pattern across an ordered chain
//     of filesystem sources, read it, and aggregate the results.
//
//   - "Who provides this interface?": resolve service descriptors
//     (plain line-oriented files under "META-INF/services/", or YAML
//     manifests) against a process-wide provider registry, and hand back
//     providers or ready-made instances.
//
// # Design
//
// The core of nsx is a read-mostly global snapshot (state). The snapshot
// holds four things:
//
//   - Config: rules that control discovery behavior (whether failures
//     abort a lookup or degrade it, how deep container types are
//     unwrapped during inspection, which side of a map is preferred).
//
//   - Loader: an ordered chain of filesystem sources (directories,
//     archives, embedded filesystems) searched front to back. The chain
//     is the process's view of "the classpath": earlier sources shadow
//     nothing, every match contributes.
//
//   - Registry: a process-wide mapping from provider names to typed
//     factories. Descriptor entries are resolved against it. The
//     registry can be written to at runtime (Register).
//
//   - Builder: a pluggable factory that knows how to construct Loader,
//     Registry, and Finder instances for a given Config. The Builder is
//     also allowed to reuse/migrate state from previous instances.
//
// Plus the Finder, derived from the three above: a read-only object that
// runs the discovery pipeline (enumerate, read, trim, split, aggregate,
// resolve) and reports absence and failure on separate channels: a
// lookup that matches nothing yields None with a nil error, a lookup
// that fails yields an error only when Config.ThrowOnFail is set.
//
// All of these live inside a single immutable struct called state.
// The package holds an atomic pointer to the current state. Readers load
// that pointer, use it, and never mutate it. Writers build a brand-new
// state and atomically swap it in.
//
// This means nsx lookups are lock-free on the hot path:
//
//	lines, err := nsx.Lines("META-INF/services/api.Codec")
//	impls, err := nsx.Instances[api.Codec]()
//
// and concurrent callers always see a consistent snapshot.
//
// # Global API
//
// The package exposes three groups of operations:
//
//  1. Read helpers:
//
//     Content(path string) (opt.Opt[[]string], error)
//     Lines(path string) (opt.Opt[[]string], error)
//     Glob(pattern string) ([]apis.Resource, error)
//     Providers[T]() (opt.Opt[[]apis.Provider], error)
//     Instances[T]() (opt.Opt[[]T], error)
//     Loader() apis.Loader
//     Registry() apis.Registry
//     Finder() apis.Finder
//
//     These are safe for concurrent use without additional locking.
//     They always read from the latest published snapshot.
//
//  2. Mutation helpers:
//
//     SetConfig(cfg apis.Config)
//     SetBuilder(b apis.Builder)
//     SetLoader(ldr apis.Loader)
//     SetRegistry(reg apis.Registry)
//     SetFinder(fnd apis.Finder)
//     UnpinRegistry()
//     UnpinFinder()
//     SetAll(...)
//
//     Each of these acquires an internal build lock, derives a new
//     snapshot (rebuilding or reusing Loader / Registry / Finder as
//     needed), and then atomically publishes that snapshot.
//
//     Semantics in short:
//
//     - Config affects how lookups behave. Calling SetConfig() rebuilds
//     the Finder against the new configuration, unless it is pinned.
//
//     - Builder controls how the layers are constructed. Swapping the
//     Builder lets you replace discovery logic at runtime.
//
//     - SetLoader() replaces the source chain; registrations survive,
//     and the Finder is rebuilt over the new chain.
//
//     - SetRegistry() / SetFinder() directly overwrite the current
//     Registry / Finder in the snapshot and "pin" them. Once a layer
//     is pinned, nsx will stop rebuilding that layer automatically
//     until you call UnpinRegistry()/UnpinFinder().
//
//     - SetAll(...) is the "hard reset" API. It lets a process replace
//     Config, Loader, Registry, Finder, Builder in one shot. This is
//     mainly used by tests to get a clean deterministic state
//     between test cases.
//
//  3. Registration:
//
//     Register(name string, p apis.Provider) error
//     // or the typed registry.Provide[T](reg, name, fn)
//
//     Providers must be registered before descriptors naming them can
//     resolve; unknown descriptor entries fail or are skipped per
//     Config.ThrowOnFail.
//
// # Concurrency model
//
// Reads (Content, Lines, Glob, Providers, Instances, and the accessor
// functions) are wait-free: they load the current *state atomically and
// never take locks. The Loader, Registry, and Finder returned by that
// state must themselves be concurrency-safe for reads.
//
// Writes (SetConfig, SetBuilder, SetLoader, SetRegistry, SetFinder, etc.)
// take a short build mutex, assemble a brand-new state struct, and then
// publish it via an atomic pointer swap. This gives the calling binary
// a predictable "last write wins" behavior without forcing per-lookup
// locking.
//
// # Supporting packages
//
// The discovery service sits on top of utility packages that are useful
// on their own:
//
//   - opt: a minimal option type, Opt[T], distinguishing "absent" from
//     "present zero value". All discovery results flow through it.
//
//   - lookup: field-keyed map construction (ByField, Extend) with typed
//     errors for nil keys and duplicates, plus a mutex-guarded SyncMap.
//
//   - sets: map-backed sets with pluggable makers, sequence adapters,
//     and a mutex-guarded SyncSet.
//
//   - inspect: reflective type normalization, type-parameter extraction
//     from instantiated generic types, and panic-safe construction.
//
//   - loader: the fs.FS source chain behind the Loader interface, with
//     doublestar glob support.
//
//   - discover: the Finder pipeline itself, usable standalone against
//     any Loader/Registry pair.
//
// # Usage pattern in a binary
//
// A typical component does:
//
//  1. Let nsx init with default builder/config (working directory as the
//     sole source).
//
//  2. Point the chain at its real sources:
//
//     nsx.SetLoader(loader.New(loader.Dir("/etc/app"), loader.FromFS("static", embedded)))
//
//  3. Register well-known providers up front:
//
//     registry.Provide(nsx.Registry(), "codec.json", func() JSONCodec { return JSONCodec{} })
//
//  4. Use nsx.Instances[...](), nsx.Lines(...), nsx.Glob(...) everywhere.
//
//  5. In tests, call nsx.SetAll(...) to get deterministic snapshots
//     and to inject a mock Builder.
//
// # Scope
//
// nsx is intentionally small. It does not try to be a general DI
// container or service locator. It only solves one job:
//
//	"Given a path, pattern, or interface, find what the process ships
//	 for it (resources, providers, or instances) without ever making
//	 the caller juggle nils."
//
// Everything else (lifecycle, injection, dependency ordering, etc.)
// belongs to higher layers.
package nsx
