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

// Inject constructs a variant value of variantType by injecting value
// under the case at caseIndex. Unlike Extract/Insert/LEA, caseIndex is
// not lifted to a materialized Def: it is serialized as the raw literal
// case index (spec.md §4.2 only calls out aggregate-index lifting for
// Extract/Insert/LEA; Variant injection carries its index as a plain
// value, matching original_source/irbuilder.py's ThorinVariant.compile).
type Inject struct {
	Base

	Type  types.Type
	Value Def
	Index any
}

// NewInject constructs an Inject of value into variantType at caseIndex.
func NewInject(variantType types.Type, value Def, caseIndex any) *Inject {
	return &Inject{Type: variantType, Value: value, Index: caseIndex}
}

// Name implements Def.
func (i *Inject) Name(ctx *module.Context) string {
	return once(&i.Base, ctx, func(ctx *module.Context) string {
		typeName := i.Type.Name(ctx)
		value := i.Value.Name(ctx)
		name := fmt.Sprintf("_variant_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "variant", Name: name, VariantType: typeName, Value: value, Index: i.Index})

		return name
	})
}

// Project extracts the payload of variant at caseIndex, asserting (at
// the backend) that the discriminant matches. As with Inject, caseIndex
// is serialized as a raw literal, never a materialized Def (see Inject's
// doc comment).
type Project struct {
	Base

	Variant Def
	Index   any
}

// NewProject constructs a Project of variant at caseIndex.
func NewProject(variant Def, caseIndex any) *Project {
	return &Project{Variant: variant, Index: caseIndex}
}

// Name implements Def.
func (p *Project) Name(ctx *module.Context) string {
	return once(&p.Base, ctx, func(ctx *module.Context) string {
		value := p.Variant.Name(ctx)
		name := fmt.Sprintf("_variantextract_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "variantextract", Name: name, Value: value, Index: p.Index})

		return name
	})
}

// Discriminant extracts the runtime case tag of a variant value.
type Discriminant struct {
	Base

	Variant Def
}

// NewDiscriminant constructs a Discriminant of variant.
func NewDiscriminant(variant Def) *Discriminant {
	return &Discriminant{Variant: variant}
}

// Name implements Def.
func (d *Discriminant) Name(ctx *module.Context) string {
	return once(&d.Base, ctx, func(ctx *module.Context) string {
		value := d.Variant.Name(ctx)
		name := fmt.Sprintf("_variantindex_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "variantindex", Name: name, Value: value})

		return name
	})
}
