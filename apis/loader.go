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

package apis

import "io"

// Loader enumerates named resources across an ordered chain of sources.
// It is the search-path abstraction consulted by the discovery pipeline:
// the same path may be provided by several sources, and all of them are
// reported in chain order.
type Loader interface {
	// Resources returns one Resource per source that provides path,
	// in chain order. A source that does not provide the path is
	// skipped silently; other enumeration failures surface as errors.
	Resources(path string) ([]Resource, error)

	// Glob returns resources whose paths match pattern across all sources,
	// in chain order. Patterns support doublestar syntax ("**" spans
	// directories).
	Glob(pattern string) ([]Resource, error)
}

// Resource is a single named entry on the search path.
// Open acquires a fresh stream; callers own the returned closer.
type Resource interface {
	// Origin identifies the source that provided the resource.
	Origin() string
	// Path is the path the resource was enumerated under.
	Path() string
	// Open returns a byte stream over the resource content.
	Open() (io.ReadCloser, error)
}
