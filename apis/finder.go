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

import (
	"reflect"

	"dirpx.dev/nsx/opt"
)

// Finder runs the content and provider discovery pipeline over a Loader.
// Typical flow: enumerate -> read -> trim -> (split) -> aggregate ->
// resolve providers.
//
// Absence and failure are reported on separate channels: a lookup that
// matches nothing yields (None, nil); a lookup that fails under
// Config.ThrowOnFail yields (None, err) with the cause wrapped.
type Finder interface {
	// Content returns the trimmed content of every resource matching path,
	// one entry per resource, in discovery order. Empty path or an empty
	// aggregate yields None.
	Content(path string) (opt.Opt[[]string], error)

	// Lines behaves like Content but splits each resource content into
	// non-empty trimmed lines.
	Lines(path string) (opt.Opt[[]string], error)

	// Providers resolves the service descriptor for iface
	// ("META-INF/services/<iface>") and returns the providers whose
	// registered types are assignable to iface, in discovery order,
	// duplicates preserved. A nil or non-interface type yields None.
	Providers(iface reflect.Type) (opt.Opt[[]Provider], error)

	// Config returns the configuration the Finder was built with.
	Config() Config
}
