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

// Const is a typed constant value.
type Const struct {
	Base

	Type  types.Type
	Value any
}

// NewConst constructs a constant of the given type and literal value.
func NewConst(t types.Type, value any) *Const {
	return &Const{Type: t, Value: value}
}

// Name implements Def.
func (c *Const) Name(ctx *module.Context) string {
	return once(&c.Base, ctx, func(ctx *module.Context) string {
		typeName := c.Type.Name(ctx)
		name := fmt.Sprintf("_const_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "const", Name: name, ConstType: typeName, Value: c.Value})

		return name
	})
}

// Top is the special "unknown/any" constant of a given type.
type Top struct {
	Base

	Type types.Type
}

// NewTop constructs a Top constant of the given type.
func NewTop(t types.Type) *Top { return &Top{Type: t} }

// Name implements Def.
func (t *Top) Name(ctx *module.Context) string {
	return once(&t.Base, ctx, func(ctx *module.Context) string {
		typeName := t.Type.Name(ctx)
		name := fmt.Sprintf("_top_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "top", Name: name, ConstType: typeName})

		return name
	})
}

// BottomConst is the special uninhabited-value constant of a given type.
// Named BottomConst (rather than Bottom) to avoid colliding with
// types.Bottom in call sites that import both packages.
type BottomConst struct {
	Base

	Type types.Type
}

// NewBottomConst constructs a Bottom constant of the given type.
func NewBottomConst(t types.Type) *BottomConst { return &BottomConst{Type: t} }

// Name implements Def.
func (b *BottomConst) Name(ctx *module.Context) string {
	return once(&b.Base, ctx, func(ctx *module.Context) string {
		typeName := b.Type.Name(ctx)
		name := fmt.Sprintf("_bottom_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "bottom", Name: name, ConstType: typeName})

		return name
	})
}

// LiftArith coerces v into a Def for an arithmetic or comparison operand
// (qs32 for integer literals), exported for combinators (pkg/flow) that
// need the same coercion rule outside an ArithOp/Cmp constructor.
func LiftArith(v any) Def { return liftArith(v) }

// LiftIndex coerces v into a Def for an aggregate-index operand (qu32
// for integer literals), exported for the same reason as LiftArith.
func LiftIndex(v any) Def { return liftIndex(v) }

// liftArith coerces v into a Def for an arithmetic or comparison operand:
// a Def passes through unchanged; an integer literal is lifted to a
// qs32 constant. Any other value is an unsupported coercion (spec.md §7).
// The lift applies symmetrically on either operand, not left-biased as
// in the original implementation (spec.md §4.2, §9 Open Questions).
func liftArith(v any) Def {
	return lift(v, types.QS32)
}

// liftIndex coerces v into a Def for an aggregate-index operand: an
// integer literal is lifted to a qu32 constant instead of qs32.
func liftIndex(v any) Def {
	return lift(v, types.QU32)
}

func lift(v any, tag string) Def {
	switch x := v.(type) {
	case Def:
		return x
	case int:
		return NewConst(types.NewPrim(tag), x)
	case int32:
		return NewConst(types.NewPrim(tag), x)
	case int64:
		return NewConst(types.NewPrim(tag), x)
	case uint:
		return NewConst(types.NewPrim(tag), x)
	case uint32:
		return NewConst(types.NewPrim(tag), x)
	case uint64:
		return NewConst(types.NewPrim(tag), x)
	default:
		panic(fmt.Sprintf("unsupported coercion to def: %T is neither a Def nor an integer literal", v))
	}
}
