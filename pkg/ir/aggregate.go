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
package ir

import (
	"fmt"

	"github.com/thorin-ir/go-thorin/pkg/module"
	"github.com/thorin-ir/go-thorin/pkg/types"
)

// Extract projects the element at index out of an aggregate (tuple,
// struct, vector, array). index may be a Def or an integer literal,
// lifted to a qu32 constant (spec.md §3, §4.2).
type Extract struct {
	Base

	Aggregate Def
	Index     Def
}

// NewExtract constructs an Extract of aggregate at index.
func NewExtract(aggregate Def, index any) *Extract {
	return &Extract{Aggregate: aggregate, Index: liftIndex(index)}
}

// Name implements Def.
func (e *Extract) Name(ctx *module.Context) string {
	return once(&e.Base, ctx, func(ctx *module.Context) string {
		args := []string{e.Aggregate.Name(ctx), e.Index.Name(ctx)}
		name := fmt.Sprintf("_extract_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "extract", Name: name, Args: args})

		return name
	})
}

// Insert returns a copy of aggregate with the element at index replaced
// by value. index may be a Def or an integer literal, lifted to qu32.
type Insert struct {
	Base

	Aggregate Def
	Index     Def
	Value     Def
}

// NewInsert constructs an Insert of value into aggregate at index.
func NewInsert(aggregate Def, index any, value Def) *Insert {
	return &Insert{Aggregate: aggregate, Index: liftIndex(index), Value: value}
}

// Name implements Def.
func (n *Insert) Name(ctx *module.Context) string {
	return once(&n.Base, ctx, func(ctx *module.Context) string {
		args := []string{n.Aggregate.Name(ctx), n.Index.Name(ctx), n.Value.Name(ctx)}
		name := fmt.Sprintf("_insert_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "insert", Name: name, Args: args})

		return name
	})
}

// LEA computes a pointer to the field at index within the aggregate
// pointed to by ptr, without dereferencing (load-effective-address).
type LEA struct {
	Base

	Ptr   Def
	Index Def
}

// NewLEA constructs a LEA of ptr at index.
func NewLEA(ptr Def, index any) *LEA {
	return &LEA{Ptr: ptr, Index: liftIndex(index)}
}

// Name implements Def.
func (l *LEA) Name(ctx *module.Context) string {
	return once(&l.Base, ctx, func(ctx *module.Context) string {
		args := []string{l.Ptr.Name(ctx), l.Index.Name(ctx)}
		name := fmt.Sprintf("_lea_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "lea", Name: name, Args: args})

		return name
	})
}

// TupleVal constructs a tuple value from its element defs.
type TupleVal struct {
	Base

	Elems []Def
}

// NewTupleVal constructs a TupleVal from the given element defs, in order.
func NewTupleVal(elems ...Def) *TupleVal {
	return &TupleVal{Elems: elems}
}

// Name implements Def.
func (t *TupleVal) Name(ctx *module.Context) string {
	return once(&t.Base, ctx, func(ctx *module.Context) string {
		args := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			args[i] = e.Name(ctx)
		}

		name := fmt.Sprintf("_tuple_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "tuple", Name: name, Args: args})

		return name
	})
}

// Vector constructs a SIMD vector value from its lane defs.
type Vector struct {
	Base

	Elems []Def
}

// NewVector constructs a Vector from the given lane defs, in order.
func NewVector(elems ...Def) *Vector {
	return &Vector{Elems: elems}
}

// Name implements Def.
func (v *Vector) Name(ctx *module.Context) string {
	return once(&v.Base, ctx, func(ctx *module.Context) string {
		args := make([]string, len(v.Elems))
		for i, e := range v.Elems {
			args[i] = e.Name(ctx)
		}

		name := fmt.Sprintf("_vector_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "vector", Name: name, Args: args})

		return name
	})
}

// StructVal constructs a struct value of the given struct type from its
// field defs, in field order.
type StructVal struct {
	Base

	Type   types.Type
	Fields []Def
}

// NewStructVal constructs a StructVal of structType from fields, in
// field order.
func NewStructVal(structType types.Type, fields ...Def) *StructVal {
	return &StructVal{Type: structType, Fields: fields}
}

// Name implements Def.
func (s *StructVal) Name(ctx *module.Context) string {
	return once(&s.Base, ctx, func(ctx *module.Context) string {
		typeName := s.Type.Name(ctx)
		args := make([]string, len(s.Fields))
		for i, f := range s.Fields {
			args[i] = f.Name(ctx)
		}

		name := fmt.Sprintf("_struct_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "struct", Name: name, StructType: typeName, Args: args})

		return name
	})
}

// DefiniteArrayVal constructs a fixed-length array value from its
// element defs, in order.
type DefiniteArrayVal struct {
	Base

	Elem  types.Type
	Elems []Def
}

// NewDefiniteArrayVal constructs a DefiniteArrayVal of the given element
// type from elems, in order.
func NewDefiniteArrayVal(elem types.Type, elems ...Def) *DefiniteArrayVal {
	return &DefiniteArrayVal{Elem: elem, Elems: elems}
}

// Name implements Def.
func (a *DefiniteArrayVal) Name(ctx *module.Context) string {
	return once(&a.Base, ctx, func(ctx *module.Context) string {
		elemType := a.Elem.Name(ctx)
		args := make([]string, len(a.Elems))
		for i, e := range a.Elems {
			args[i] = e.Name(ctx)
		}

		name := fmt.Sprintf("_def_array_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "def_array", Name: name, ElemType: elemType, Args: args})

		return name
	})
}

// IndefiniteArrayVal constructs an unbounded-length array value of the
// given element type and a runtime dimension def (spec.md §3).
type IndefiniteArrayVal struct {
	Base

	Elem types.Type
	Dim  Def
}

// NewIndefiniteArrayVal constructs an IndefiniteArrayVal of elem sized by
// the runtime def dim.
func NewIndefiniteArrayVal(elem types.Type, dim Def) *IndefiniteArrayVal {
	return &IndefiniteArrayVal{Elem: elem, Dim: dim}
}

// Name implements Def.
func (a *IndefiniteArrayVal) Name(ctx *module.Context) string {
	return once(&a.Base, ctx, func(ctx *module.Context) string {
		elemType := a.Elem.Name(ctx)
		dim := a.Dim.Name(ctx)
		name := fmt.Sprintf("_indef_array_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "indef_array", Name: name, ElemType: elemType, Dim: dim})

		return name
	})
}
