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

package builder

import (
	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/discover"
	"dirpx.dev/nsx/loader"
	"dirpx.dev/nsx/registry"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry. If a pre-existing
// registry is provided, its entries are copied into the new registry.
func (b *builder) BuildRegistry(_ apis.Config, prev apis.Registry) apis.Registry {
	nreg := registry.New()
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = nreg.Register(e.Name, e.Provider)
		}
	}
	return nreg
}

// BuildLoader builds and returns an apis.Loader. A pre-existing loader is
// kept as-is; otherwise the working directory becomes the sole source.
func (b *builder) BuildLoader(_ apis.Config, prev apis.Loader) apis.Loader {
	if prev != nil {
		return prev
	}
	return loader.New(loader.Dir("."))
}

// BuildFinder builds and returns an apis.Finder running the discovery
// pipeline over the given loader and registry.
func (b *builder) BuildFinder(cfg apis.Config, ldr apis.Loader, reg apis.Registry) apis.Finder {
	return discover.New(ldr, reg, cfg)
}
