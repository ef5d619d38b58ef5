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

// Load reads through ptr, producing a single def whose IR value is a
// `(mem', T)` tuple — callers typically use the LoadExtract combinator
// (pkg/flow) to surface both projections directly (spec.md §4.2).
type Load struct {
	Base

	Mem Def
	Ptr Def
}

// NewLoad constructs a Load of ptr, threading mem.
func NewLoad(mem, ptr Def) *Load {
	return &Load{Mem: mem, Ptr: ptr}
}

// Name implements Def.
func (l *Load) Name(ctx *module.Context) string {
	return once(&l.Base, ctx, func(ctx *module.Context) string {
		args := []string{l.Mem.Name(ctx), l.Ptr.Name(ctx)}
		name := fmt.Sprintf("_load_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "load", Name: name, Args: args})

		return name
	})
}

// Store writes value through ptr, producing a new memory def.
type Store struct {
	Base

	Mem   Def
	Ptr   Def
	Value Def
}

// NewStore constructs a Store of value through ptr, threading mem.
func NewStore(mem, ptr, value Def) *Store {
	return &Store{Mem: mem, Ptr: ptr, Value: value}
}

// Name implements Def.
func (s *Store) Name(ctx *module.Context) string {
	return once(&s.Base, ctx, func(ctx *module.Context) string {
		args := []string{s.Mem.Name(ctx), s.Ptr.Name(ctx), s.Value.Name(ctx)}
		name := fmt.Sprintf("_store_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "store", Name: name, Args: args})

		return name
	})
}

// Enter creates a new stack frame, producing a `(frame, mem')` pair —
// callers typically use the EnterExtract combinator (pkg/flow).
type Enter struct {
	Base

	Mem Def
}

// NewEnter constructs an Enter threading mem.
func NewEnter(mem Def) *Enter {
	return &Enter{Mem: mem}
}

// Name implements Def.
func (e *Enter) Name(ctx *module.Context) string {
	return once(&e.Base, ctx, func(ctx *module.Context) string {
		memName := e.Mem.Name(ctx)
		name := fmt.Sprintf("_enter_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "enter", Name: name, Mem: memName})

		return name
	})
}

// Slot allocates a stack slot of the given type within frame.
type Slot struct {
	Base

	Frame Def
	Type  types.Type
}

// NewSlot constructs a Slot of the given type within frame.
func NewSlot(frame Def, t types.Type) *Slot {
	return &Slot{Frame: frame, Type: t}
}

// Name implements Def.
func (s *Slot) Name(ctx *module.Context) string {
	return once(&s.Base, ctx, func(ctx *module.Context) string {
		frameName := s.Frame.Name(ctx)
		typeName := s.Type.Name(ctx)
		name := fmt.Sprintf("_slot_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "slot", Name: name, TargetType: typeName, Frame: frameName})

		return name
	})
}

// Alloc heap-allocates a value of the given type, threading mem.
type Alloc struct {
	Base

	Type types.Type
	Mem  Def
}

// NewAlloc constructs an Alloc of the given type, threading mem.
func NewAlloc(t types.Type, mem Def) *Alloc {
	return &Alloc{Type: t, Mem: mem}
}

// Name implements Def.
func (a *Alloc) Name(ctx *module.Context) string {
	return once(&a.Base, ctx, func(ctx *module.Context) string {
		typeName := a.Type.Name(ctx)
		args := []string{a.Mem.Name(ctx)}
		name := fmt.Sprintf("_alloc_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "alloc", Name: name, TargetType: typeName, Args: args})

		return name
	})
}
