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

// Package flow provides structured control-flow combinators that expand
// common host-language patterns into well-formed CPS fragments: memory-
// threaded load/store, conditional branch, counted loop, string
// literals, and stack-frame entry (spec.md §4.4).
package flow

import (
	"github.com/thorin-ir/go-thorin/pkg/ir"
	"github.com/thorin-ir/go-thorin/pkg/types"
)

// LoadResult is the pair of projections surfaced by LoadExtract: the new
// memory token and the loaded value.
type LoadResult struct {
	Mem   ir.Def
	Value ir.Def
}

// LoadExtract emits a Load through ptr and surfaces both projections of
// its `(mem', value)` result tuple directly, sparing callers a manual
// Extract pair (spec.md §4.4).
func LoadExtract(mem, ptr ir.Def) LoadResult {
	load := ir.NewLoad(mem, ptr)

	return LoadResult{
		Mem:   ir.NewExtract(load, 0),
		Value: ir.NewExtract(load, 1),
	}
}

// EnterResult is the pair of projections surfaced by EnterExtract: the
// new stack frame and the new memory token.
type EnterResult struct {
	Frame ir.Def
	Mem   ir.Def
}

// EnterExtract emits an Enter and surfaces both projections of its
// `(frame, mem')` result tuple directly (spec.md §4.4).
func EnterExtract(mem ir.Def) EnterResult {
	enter := ir.NewEnter(mem)

	return EnterResult{
		Frame: ir.NewExtract(enter, 0),
		Mem:   ir.NewExtract(enter, 1),
	}
}

// Store is a thin re-export of ir.NewStore for symmetry with LoadExtract
// at call sites that otherwise only import pkg/flow.
func Store(mem, ptr, value ir.Def) ir.Def {
	return ir.NewStore(mem, ptr, value)
}

// FrameEnter opens a stack frame over mem and allocates a single slot of
// the given type within it, returning the slot pointer and the new
// memory token — the common case of EnterExtract immediately followed
// by one Slot allocation.
func FrameEnter(mem ir.Def, t types.Type) (slot ir.Def, newMem ir.Def) {
	entered := EnterExtract(mem)

	return ir.NewSlot(entered.Frame, t), entered.Mem
}
