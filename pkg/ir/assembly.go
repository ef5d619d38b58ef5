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

// Assembly is an inline-asm escape hatch: a textual template, its input
// defs, and input/output constraint and clobber lists passed verbatim to
// the backend (spec.md §3, §6).
type Assembly struct {
	Base

	Type              types.Type
	Inputs            []Def
	Template          string
	InputConstraints  []string
	OutputConstraints []string
	Clobbers          []string
}

// NewAssembly constructs an Assembly def of the given result type.
func NewAssembly(t types.Type, template string, inputs []Def, inputConstraints, outputConstraints, clobbers []string) *Assembly {
	return &Assembly{
		Type: t, Inputs: inputs, Template: template,
		InputConstraints: inputConstraints, OutputConstraints: outputConstraints, Clobbers: clobbers,
	}
}

// Name implements Def.
func (a *Assembly) Name(ctx *module.Context) string {
	return once(&a.Base, ctx, func(ctx *module.Context) string {
		typeName := a.Type.Name(ctx)
		inputs := make([]string, len(a.Inputs))
		for i, in := range a.Inputs {
			inputs[i] = in.Name(ctx)
		}

		name := fmt.Sprintf("_assembly_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{
			Kind: "assembly", Name: name, AsmType: typeName, Inputs: inputs, AsmTemplate: a.Template,
			InputConstraints: a.InputConstraints, OutputConstraints: a.OutputConstraints, Clobbers: a.Clobbers,
		})

		return name
	})
}
