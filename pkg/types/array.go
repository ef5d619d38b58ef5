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

// DefiniteArray is a fixed-length homogeneous aggregate, indexed by
// Extract/Insert and nominally identified by its element type and length
// (spec.md §3).
type DefiniteArray struct {
	Base

	Elem   Type
	Length uint
}

// NewDefiniteArray constructs a definite array type. length must be >=1.
func NewDefiniteArray(elem Type, length uint) *DefiniteArray {
	if length < 1 {
		panic("definite array type requires length >= 1")
	}

	return &DefiniteArray{Elem: elem, Length: length}
}

// Name implements Type.
func (a *DefiniteArray) Name(ctx *module.Context) string {
	return once(&a.Base, ctx, func(ctx *module.Context) string {
		elem := a.Elem.Name(ctx)
		idx := ctx.NextTypeIndex()
		name := fmt.Sprintf("_array_%d", idx)
		length := a.Length
		ctx.AppendType(module.TypeEntry{Kind: "def_array", Name: name, Args: []string{elem}, Length: &length})

		return name
	})
}

// ReconstructDefiniteArray rebuilds a DefiniteArray handle given the
// already-reconstructed element type.
func ReconstructDefiniteArray(entry module.TypeEntry, elem Type) *DefiniteArray {
	length := uint(1)
	if entry.Length != nil {
		length = *entry.Length
	}

	a := &DefiniteArray{Elem: elem, Length: length}
	a.cache(entry.Name)

	return a
}

// IndefiniteArray is an unbounded-length homogeneous aggregate: only ever
// appears behind a Pointer, since it carries no static size (spec.md §3).
type IndefiniteArray struct {
	Base

	Elem Type
}

// NewIndefiniteArray constructs an indefinite array type.
func NewIndefiniteArray(elem Type) *IndefiniteArray {
	return &IndefiniteArray{Elem: elem}
}

// Name implements Type.
func (a *IndefiniteArray) Name(ctx *module.Context) string {
	return once(&a.Base, ctx, func(ctx *module.Context) string {
		elem := a.Elem.Name(ctx)
		name := fmt.Sprintf("_indef_array_%d", ctx.NextTypeIndex())
		ctx.AppendType(module.TypeEntry{Kind: "indef_array", Name: name, Args: []string{elem}})

		return name
	})
}

// ReconstructIndefiniteArray rebuilds an IndefiniteArray handle given the
// already-reconstructed element type.
func ReconstructIndefiniteArray(entry module.TypeEntry, elem Type) *IndefiniteArray {
	a := &IndefiniteArray{Elem: elem}
	a.cache(entry.Name)

	return a
}
