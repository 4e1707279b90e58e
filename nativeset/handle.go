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

// Package nativeset defines the native-filter registration bank consulted
// during call resolution. The filter runtime behind a Handle is external to
// this module; the resolver never inspects a Handle's contents, only the
// name and arity it was registered under.
package nativeset

// A Handle is an opaque token identifying a native filter implementation.
// The resolver stores and forwards it unexamined.
type Handle any

// An Entry is one native-filter registration: a name, its arity, the opaque
// handle the host runtime will dispatch to, and an optional minimum
// toolchain version gating its availability (see Set.Lookup).
type Entry struct {
	Name       string
	Arity      int
	Handle     Handle
	MinVersion string // semver, e.g. "v1.2.0"; "" means always available
}
