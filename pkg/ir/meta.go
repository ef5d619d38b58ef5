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

// Sizeof yields the byte size of a type, as a def.
type Sizeof struct {
	Base

	Type types.Type
}

// NewSizeof constructs a Sizeof of the given type.
func NewSizeof(t types.Type) *Sizeof { return &Sizeof{Type: t} }

// Name implements Def.
func (s *Sizeof) Name(ctx *module.Context) string {
	return once(&s.Base, ctx, func(ctx *module.Context) string {
		typeName := s.Type.Name(ctx)
		name := fmt.Sprintf("_sizeof_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "sizeof", Name: name, TargetType: typeName})

		return name
	})
}

// Alignof yields the byte alignment of a type, as a def.
type Alignof struct {
	Base

	Type types.Type
}

// NewAlignof constructs an Alignof of the given type.
func NewAlignof(t types.Type) *Alignof { return &Alignof{Type: t} }

// Name implements Def.
func (a *Alignof) Name(ctx *module.Context) string {
	return once(&a.Base, ctx, func(ctx *module.Context) string {
		typeName := a.Type.Name(ctx)
		name := fmt.Sprintf("_alignof_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "alignof", Name: name, TargetType: typeName})

		return name
	})
}
