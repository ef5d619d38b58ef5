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
	"github.com/thorin-ir/go-thorin/pkg/util"
)

// Struct is a nominal, ordered aggregate of (field name, field type) pairs.
// Unlike the other type builders, Name emits *two* table entries sharing
// one synthetic name: a forward declaration (name + field names only),
// followed — after field types are themselves resolved — by a definition
// entry carrying the field types. The declaration's name is assigned and
// cached before any field type is materialized, so a field may legally
// refer back to the struct itself (e.g. `ptr<Self>`), supporting recursive
// types (spec.md §4.1, scenario E3).
type Struct struct {
	Base

	structName string
	fields     []util.Pair[string, Type]
}

// NewStruct constructs a nominal struct type named structName from an
// ordered list of field (name, type) pairs. Emitting a struct with no
// fields is a programmer error (spec.md §7 "missing required field").
func NewStruct(structName string, fields ...util.Pair[string, Type]) *Struct {
	if len(fields) == 0 {
		panic("struct type requires at least one field")
	}

	return &Struct{structName: structName, fields: fields}
}

// Name implements Type, performing the two-phase declaration/definition
// emission described above.
func (s *Struct) Name(ctx *module.Context) string {
	if name, ok := s.cached(); ok {
		return name
	}

	fieldNames := make([]string, len(s.fields))
	for i, f := range s.fields {
		fieldNames[i] = f.Left
	}

	idx := ctx.NextTypeIndex()
	name := fmt.Sprintf("_struct_%d", idx)
	// Reserve and cache the name before recursing into field types, so a
	// self-referential field (e.g. a pointer back to this struct) resolves
	// to the correct name rather than re-entering materialization.
	s.cache(name)
	ctx.AppendType(module.TypeEntry{Kind: "struct", Name: name, StructName: s.structName, ArgNames: fieldNames})

	fieldTypes := make([]string, len(s.fields))
	for i, f := range s.fields {
		fieldTypes[i] = f.Right.Name(ctx)
	}

	ctx.AppendType(module.TypeEntry{Kind: "struct", Name: name, StructName: s.structName, ArgNames: fieldNames, Args: fieldTypes})

	return name
}

// ReconstructStructDecl rebuilds a Struct handle from its declaration
// entry alone; the field types are installed later by
// ReconstructStructDefn once the matching definition entry is reached
// (spec.md §4.6 step 1, "forward references").
func ReconstructStructDecl(entry module.TypeEntry) *Struct {
	s := &Struct{structName: entry.StructName, fields: make([]util.Pair[string, Type], len(entry.ArgNames))}
	for i, n := range entry.ArgNames {
		s.fields[i] = util.NewPair[string, Type](n, nil)
	}

	s.cache(entry.Name)

	return s
}

// ReconstructStructDefn installs the resolved field types on a Struct
// handle previously created by ReconstructStructDecl.
func ReconstructStructDefn(s *Struct, fieldTypes []Type) {
	for i := range s.fields {
		s.fields[i].Right = fieldTypes[i]
	}
}

// Variant is a nominal, ordered tagged union of (case name, case type)
// pairs, discriminated at runtime by Discriminant/index (spec.md §3). It
// shares the Struct type's two-phase emission protocol.
type Variant struct {
	Base

	variantName string
	cases       []util.Pair[string, Type]
}

// NewVariant constructs a variant type named variantName from an ordered
// list of case (name, type) pairs. Emitting a variant with no cases is a
// programmer error.
func NewVariant(variantName string, cases ...util.Pair[string, Type]) *Variant {
	if len(cases) == 0 {
		panic("variant type requires at least one case")
	}

	return &Variant{variantName: variantName, cases: cases}
}

// Name implements Type, mirroring Struct's two-phase emission.
func (v *Variant) Name(ctx *module.Context) string {
	if name, ok := v.cached(); ok {
		return name
	}

	caseNames := make([]string, len(v.cases))
	for i, c := range v.cases {
		caseNames[i] = c.Left
	}

	idx := ctx.NextTypeIndex()
	name := fmt.Sprintf("_variant_%d", idx)
	v.cache(name)
	ctx.AppendType(module.TypeEntry{Kind: "variant", Name: name, VariantName: v.variantName, ArgNames: caseNames})

	caseTypes := make([]string, len(v.cases))
	for i, c := range v.cases {
		caseTypes[i] = c.Right.Name(ctx)
	}

	ctx.AppendType(module.TypeEntry{Kind: "variant", Name: name, VariantName: v.variantName, ArgNames: caseNames, Args: caseTypes})

	return name
}

// ReconstructVariantDecl rebuilds a Variant handle from its declaration
// entry. Note this deliberately instantiates a *Variant, not a *Struct —
// the original implementation's reconstruction path is documented to
// confuse the two kinds here, which this library treats as a bug to fix
// rather than reproduce (spec.md §9).
func ReconstructVariantDecl(entry module.TypeEntry) *Variant {
	v := &Variant{variantName: entry.VariantName, cases: make([]util.Pair[string, Type], len(entry.ArgNames))}
	for i, n := range entry.ArgNames {
		v.cases[i] = util.NewPair[string, Type](n, nil)
	}

	v.cache(entry.Name)

	return v
}

// ReconstructVariantDefn installs the resolved case types on a Variant
// handle previously created by ReconstructVariantDecl.
func ReconstructVariantDefn(v *Variant, caseTypes []Type) {
	for i := range v.cases {
		v.cases[i].Right = caseTypes[i]
	}
}
