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

// Package discover implements the content and provider discovery
// pipeline: enumerate resources on the search path, read and trim each
// one, optionally split into lines, aggregate in discovery order, and
// resolve provider names through a registry.
//
// Absence and failure travel on separate channels. A lookup that matches
// nothing yields (None, nil). A lookup that fails with ThrowOnFail set
// yields (None, err) with the cause wrapped; with ThrowOnFail clear,
// read failures end the enumeration keeping what was gathered and
// per-entry resolution failures skip that entry only.
package discover

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/opt"
)

// servicePathPrefix locates service descriptors, matching the standard
// provider-configuration file convention.
const servicePathPrefix = "META-INF/services/"

// ErrNullContent is returned when a matched resource is empty or blank
// after trimming. Blank descriptors are a hard failure for the lookup,
// not a silent skip.
var ErrNullContent = errors.New("nsx(discover): resource content is empty")

// ServicePath returns the descriptor path for a service name.
func ServicePath(name string) string {
	return servicePathPrefix + name
}

// New constructs a Finder over the given loader and registry.
func New(ldr apis.Loader, reg apis.Registry, cfg apis.Config) *Finder {
	return &Finder{ldr: ldr, reg: reg, cfg: cfg}
}

// Finder runs the discovery pipeline. It is immutable after construction
// and safe for concurrent use provided its loader and registry are.
type Finder struct {
	ldr apis.Loader
	reg apis.Registry
	cfg apis.Config
}

// Ensure Finder implements apis.Finder.
var _ apis.Finder = (*Finder)(nil)

// Config returns the configuration the Finder was built with.
func (f *Finder) Config() apis.Config {
	return f.cfg
}

// Content returns the trimmed content of every resource matching path,
// one entry per resource, in discovery order.
func (f *Finder) Content(path string) (opt.Opt[[]string], error) {
	return f.find(path, false)
}

// Lines behaves like Content but splits each resource content into
// non-empty trimmed lines.
func (f *Finder) Lines(path string) (opt.Opt[[]string], error) {
	return f.find(path, true)
}

// find is the shared enumerate -> read -> trim -> (split) -> aggregate
// sequence behind Content and Lines.
func (f *Finder) find(path string, split bool) (opt.Opt[[]string], error) {
	if path == "" || f.ldr == nil {
		return opt.None[[]string](), nil
	}

	resources, err := f.ldr.Resources(path)
	if err != nil {
		if f.cfg.ThrowOnFail {
			return opt.None[[]string](), fmt.Errorf("nsx(discover): enumerate %q: %w", path, err)
		}
		resources = nil
	}

	var entries []string
	for _, r := range resources {
		content, err := readTrimmed(r)
		if err == nil && content == "" {
			err = ErrNullContent
		}
		if err != nil {
			if f.cfg.ThrowOnFail {
				return opt.None[[]string](), fmt.Errorf("nsx(discover): read %q from %s: %w", r.Path(), r.Origin(), err)
			}
			// Keep what was gathered before the failing resource.
			break
		}

		if split {
			entries = append(entries, splitLines(content)...)
		} else {
			entries = append(entries, content)
		}
	}

	if len(entries) == 0 {
		return opt.None[[]string](), nil
	}
	return opt.Some(entries), nil
}

// readTrimmed reads a resource fully and trims surrounding whitespace.
// The stream is released on every exit path.
func readTrimmed(r apis.Resource) (string, error) {
	rc, err := r.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// splitLines splits content into non-empty trimmed lines.
func splitLines(content string) []string {
	raw := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
