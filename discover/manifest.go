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

	"gopkg.in/yaml.v3"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/opt"
)

// Manifest is a YAML provider descriptor. Unlike the plain line-oriented
// service files, manifests can carry structured metadata alongside the
// provider list.
type Manifest struct {
	Providers []string `yaml:"providers"`
}

// Manifest reads and merges every YAML manifest matching path, in
// discovery order. A malformed document fails the lookup under
// ThrowOnFail and is skipped otherwise. An empty merge yields None.
func (f *Finder) Manifest(path string) (opt.Opt[Manifest], error) {
	docs, err := f.Content(path)
	if err != nil {
		return opt.None[Manifest](), err
	}
	contents, ok := docs.Get()
	if !ok {
		return opt.None[Manifest](), nil
	}

	var merged Manifest
	for _, doc := range contents {
		var part Manifest
		if err := yaml.Unmarshal([]byte(doc), &part); err != nil {
			if f.cfg.ThrowOnFail {
				return opt.None[Manifest](), fmt.Errorf("nsx(discover): parse manifest at %q: %w", path, err)
			}
			continue
		}
		merged.Providers = append(merged.Providers, part.Providers...)
	}

	if len(merged.Providers) == 0 {
		return opt.None[Manifest](), nil
	}
	return opt.Some(merged), nil
}

// ManifestProviders resolves the providers named by the merged manifests
// at path against iface, with the same gating as Providers.
func (f *Finder) ManifestProviders(path string, iface reflect.Type) (opt.Opt[[]apis.Provider], error) {
	if iface == nil || iface.Kind() != reflect.Interface {
		return opt.None[[]apis.Provider](), nil
	}

	m, err := f.Manifest(path)
	if err != nil {
		return opt.None[[]apis.Provider](), err
	}
	manifest, ok := m.Get()
	if !ok {
		return opt.None[[]apis.Provider](), nil
	}
	return f.resolve(manifest.Providers, iface)
}
