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

// Builder composes Registry, Loader, and Finder from a Config.
// Implementations may migrate state from previous instances (prev*), or ignore them.
type Builder interface {
	// BuildRegistry constructs a Registry for Config. May migrate entries
	// from a previous registry.
	BuildRegistry(cfg Config, prev Registry) Registry
	// BuildLoader constructs a Loader for Config. May reuse a previously
	// supplied chain.
	BuildLoader(cfg Config, prev Loader) Loader
	// BuildFinder constructs a Finder over ldr and reg for Config.
	BuildFinder(cfg Config, ldr Loader, reg Registry) Finder
}
