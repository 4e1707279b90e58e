// Copyright 2026 The Jaq Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nativeset

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// manifestEntry is the on-disk shape of one native-filter registration. A
// manifest only names filters; the Go-level implementation behind each name
// is supplied separately by the host through the handles map passed to
// LoadManifest, since a Handle is opaque to this module.
type manifestEntry struct {
	Name       string `yaml:"name"`
	Arity      int    `yaml:"arity"`
	MinVersion string `yaml:"minVersion"`
}

// FilterKey identifies a native filter by (name, arity), the same pair
// Set.Lookup keys on: a name may be overloaded across arities, so a single
// bare name is not enough to pick a Handle.
type FilterKey struct {
	Name  string
	Arity int
}

// LoadManifest reads a YAML document of the form
//
//	- name: length
//	  arity: 0
//	- name: ltrimstr
//	  arity: 1
//	  minVersion: v1.1.0
//
// and inserts one Entry per item into s, resolving each (name, arity) pair
// to a Handle via handles. It is an error for a manifest entry to name a
// (name, arity) missing from handles; this catches stale or misspelled
// manifests early, at load time rather than at first call-resolution.
func LoadManifest(r io.Reader, handles map[FilterKey]Handle, s *Set) error {
	var entries []manifestEntry
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&entries); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("nativeset: decoding manifest: %w", err)
	}
	for _, me := range entries {
		key := FilterKey{Name: me.Name, Arity: me.Arity}
		h, ok := handles[key]
		if !ok {
			return fmt.Errorf("nativeset: manifest names %q/%d but no handle was supplied for it", me.Name, me.Arity)
		}
		s.Insert(Entry{
			Name:       me.Name,
			Arity:      me.Arity,
			Handle:     h,
			MinVersion: me.MinVersion,
		})
	}
	return nil
}
