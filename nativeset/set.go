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

import "golang.org/x/mod/semver"

// A Set is a flat, append-only list of native registrations, searched in
// insertion order. This mirrors jaq's Vec<(String, usize, Native)>: there is
// no name index, since lookups are by (name, arity) pairs and the list is
// expected to stay small relative to the cost of a hash lookup's setup.
type Set struct {
	entries []Entry
	version string
}

// NewSet creates an empty Set. version is the toolchain version new entries
// are checked against in Lookup; pass "" to disable version gating entirely
// (every registered native is always visible).
func NewSet(version string) *Set {
	return &Set{version: version}
}

// Insert appends one native registration.
func (s *Set) Insert(e Entry) {
	s.entries = append(s.entries, e)
}

// Lookup returns the first entry whose name and arity both match and whose
// MinVersion (if any) is satisfied by the Set's toolchain version, mirroring
// compile.go's verifyVersion check on builtins. It reports (Entry{}, false)
// if nothing qualifies.
func (s *Set) Lookup(name string, arity int) (Entry, bool) {
	for _, e := range s.entries {
		if e.Name != name || e.Arity != arity {
			continue
		}
		if !s.available(e) {
			continue
		}
		return e, true
	}
	return Entry{}, false
}

func (s *Set) available(e Entry) bool {
	if e.MinVersion == "" || s.version == "" {
		return true
	}
	return semver.Compare(s.version, e.MinVersion) >= 0
}

// Len reports the number of registered entries, including any currently
// version-gated out of Lookup.
func (s *Set) Len() int {
	return len(s.entries)
}
