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

// Package loader implements the resource search path: an ordered chain
// of named fs.FS sources. The same path may be provided by several
// sources; enumeration reports all of them in chain order, the way a
// delegating loader reports same-named entries from multiple archives.
package loader

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"dirpx.dev/nsx/apis"
)

// ErrNilSource is returned when a chain is built with a source holding a nil fs.FS.
var ErrNilSource = errors.New("nsx(loader): nil source filesystem")

// Source is one named entry on the search path.
type Source struct {
	// Name identifies the source in Resource origins.
	Name string
	// FS is the filesystem that backs the source.
	FS fs.FS
}

// Dir returns a Source over the directory tree rooted at path.
func Dir(path string) Source {
	return Source{Name: path, FS: os.DirFS(path)}
}

// FromFS returns a Source over an arbitrary fs.FS.
func FromFS(name string, fsys fs.FS) Source {
	return Source{Name: name, FS: fsys}
}

// New constructs an apis.Loader over the given sources, consulted in order.
// Sources holding a nil fs.FS are dropped.
func New(sources ...Source) apis.Loader {
	srcs := make([]Source, 0, len(sources))
	for _, s := range sources {
		if s.FS != nil {
			srcs = append(srcs, s)
		}
	}
	return &chain{srcs: srcs}
}

// chain is an immutable, order-preserving loader over a set of sources.
type chain struct {
	srcs []Source
}

// Ensure chain implements apis.Loader.
var _ apis.Loader = (*chain)(nil)

// Resources returns one resource per source that provides path, in chain
// order. Sources that do not provide the path are skipped silently.
func (c *chain) Resources(path string) ([]apis.Resource, error) {
	if path == "" || !fs.ValidPath(path) {
		return nil, nil
	}

	var out []apis.Resource
	for _, src := range c.srcs {
		info, err := fs.Stat(src.FS, path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		if info.IsDir() {
			continue
		}
		out = append(out, &resource{origin: src.Name, path: path, fsys: src.FS})
	}
	return out, nil
}

// Glob returns resources matching pattern across all sources, in chain
// order; within a source, matches are in lexical order. Patterns support
// doublestar syntax ("**" spans directories).
func (c *chain) Glob(pattern string) ([]apis.Resource, error) {
	if pattern == "" {
		return nil, nil
	}

	var out []apis.Resource
	for _, src := range c.srcs {
		matches, err := doublestar.Glob(src.FS, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)
		for _, m := range matches {
			out = append(out, &resource{origin: src.Name, path: m, fsys: src.FS})
		}
	}
	return out, nil
}

// resource is a single named entry provided by one source.
type resource struct {
	origin string
	path   string
	fsys   fs.FS
}

// Ensure resource implements apis.Resource.
var _ apis.Resource = (*resource)(nil)

// Origin identifies the source that provided the resource.
func (r *resource) Origin() string { return r.origin }

// Path is the path the resource was enumerated under.
func (r *resource) Path() string { return r.path }

// Open returns a fresh byte stream over the resource content.
func (r *resource) Open() (io.ReadCloser, error) {
	return r.fsys.Open(r.path)
}
