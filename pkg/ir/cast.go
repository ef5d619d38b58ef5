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

// Cast is a value-preserving conversion (e.g. widening/narrowing a
// numeric primitive) from source's type to target.
type Cast struct {
	Base

	Source Def
	Target types.Type
}

// NewCast constructs a Cast of source to the target type.
func NewCast(source Def, target types.Type) *Cast {
	return &Cast{Source: source, Target: target}
}

// Name implements Def.
func (c *Cast) Name(ctx *module.Context) string {
	return once(&c.Base, ctx, func(ctx *module.Context) string {
		source := c.Source.Name(ctx)
		target := c.Target.Name(ctx)
		name := fmt.Sprintf("_cast_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "cast", Name: name, Source: source, TargetType: target})

		return name
	})
}

// Bitcast is a bit-reinterpreting conversion (no value transformation)
// from source's type to target.
type Bitcast struct {
	Base

	Source Def
	Target types.Type
}

// NewBitcast constructs a Bitcast of source to the target type.
func NewBitcast(source Def, target types.Type) *Bitcast {
	return &Bitcast{Source: source, Target: target}
}

// Name implements Def.
func (b *Bitcast) Name(ctx *module.Context) string {
	return once(&b.Base, ctx, func(ctx *module.Context) string {
		source := b.Source.Name(ctx)
		target := b.Target.Name(ctx)
		name := fmt.Sprintf("_bitcast_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "bitcast", Name: name, Source: source, TargetType: target})

		return name
	})
}
