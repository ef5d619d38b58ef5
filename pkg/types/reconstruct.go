// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package types

import (
	"fmt"

	"github.com/thorin-ir/go-thorin/pkg/module"
)

// Registry is the live name -> Type mapping built while walking a
// deserialized type table (spec.md §4.6 step 1).
type Registry map[string]Type

// Reconstruct walks entries in order, rebuilding a Registry of live type
// handles. Because the table is topologically ordered (every dependency
// precedes its use, with the sole exception of a struct/variant's own
// declaration name, which is cached before its definition entry is
// reached), a single left-to-right pass suffices.
func Reconstruct(entries []module.TypeEntry) Registry {
	reg := make(Registry, len(entries))

	for _, e := range entries {
		switch e.Kind {
		case "prim":
			reg[e.Name] = ReconstructPrim(e)
		case "ptr":
			reg[e.Name] = ReconstructPointer(e, reg.lookup(e.Args[0]))
		case "mem":
			reg[e.Name] = ReconstructMem(e)
		case "frame":
			reg[e.Name] = ReconstructFrame(e)
		case "bottom":
			reg[e.Name] = ReconstructBottom(e)
		case "function":
			reg[e.Name] = ReconstructFunction(e, reg.lookupAll(e.Args))
		case "closure":
			reg[e.Name] = ReconstructClosure(e, reg.lookupAll(e.Args))
		case "tuple":
			reg[e.Name] = ReconstructTuple(e, reg.lookupAll(e.Args))
		case "def_array":
			reg[e.Name] = ReconstructDefiniteArray(e, reg.lookup(e.Args[0]))
		case "indef_array":
			reg[e.Name] = ReconstructIndefiniteArray(e, reg.lookup(e.Args[0]))
		case "struct":
			reconstructStructEntry(reg, e)
		case "variant":
			reconstructVariantEntry(reg, e)
		default:
			panic(fmt.Sprintf("reconstruct: unknown type kind %q", e.Kind))
		}
	}

	return reg
}

// reconstructStructEntry handles both halves of the two-phase struct
// protocol: a declaration entry (no Args) installs a fresh handle keyed
// by name; the later definition entry (with Args) resolves field types
// on that same handle (spec.md §4.1, §4.6).
func reconstructStructEntry(reg Registry, e module.TypeEntry) {
	if e.Args == nil {
		reg[e.Name] = ReconstructStructDecl(e)
		return
	}

	s, ok := reg[e.Name].(*Struct)
	if !ok {
		panic(fmt.Sprintf("reconstruct: struct definition entry %q has no matching declaration", e.Name))
	}

	ReconstructStructDefn(s, reg.lookupAll(e.Args))
}

// reconstructVariantEntry mirrors reconstructStructEntry for variants,
// deliberately instantiating a *Variant at both the declaration and
// definition entry (see ReconstructVariantDecl's doc comment).
func reconstructVariantEntry(reg Registry, e module.TypeEntry) {
	if e.Args == nil {
		reg[e.Name] = ReconstructVariantDecl(e)
		return
	}

	v, ok := reg[e.Name].(*Variant)
	if !ok {
		panic(fmt.Sprintf("reconstruct: variant definition entry %q has no matching declaration", e.Name))
	}

	ReconstructVariantDefn(v, reg.lookupAll(e.Args))
}

func (reg Registry) lookup(name string) Type {
	t, ok := reg[name]
	if !ok {
		panic(fmt.Sprintf("reconstruct: unresolved type reference %q", name))
	}

	return t
}

func (reg Registry) lookupAll(names []string) []Type {
	types := make([]Type, len(names))
	for i, n := range names {
		types[i] = reg.lookup(n)
	}

	return types
}
