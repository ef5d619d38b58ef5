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
)

// Run is a partial-evaluation marker instructing the backend to force
// evaluation at this point. It carries no operands.
type Run struct{ Base }

// NewRun constructs a Run marker.
func NewRun() *Run { return &Run{} }

// Name implements Def.
func (r *Run) Name(ctx *module.Context) string {
	return once(&r.Base, ctx, func(ctx *module.Context) string {
		name := fmt.Sprintf("_run_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "run", Name: name})

		return name
	})
}

// Hlt is a partial-evaluation marker instructing the backend to halt,
// naming the continuation at which evaluation should stop.
type Hlt struct {
	Base

	Target Def
}

// NewHlt constructs a Hlt marker targeting the given continuation.
func NewHlt(target Def) *Hlt { return &Hlt{Target: target} }

// Name implements Def.
func (h *Hlt) Name(ctx *module.Context) string {
	return once(&h.Base, ctx, func(ctx *module.Context) string {
		target := h.Target.Name(ctx)
		name := fmt.Sprintf("_hlt_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "hlt", Name: name, Target: target})

		return name
	})
}

// Known asserts that def is statically knowable, a hint to the backend's
// partial evaluator.
type Known struct {
	Base

	Def Def
}

// NewKnown constructs a Known marker over def.
func NewKnown(def Def) *Known { return &Known{Def: def} }

// Name implements Def.
func (k *Known) Name(ctx *module.Context) string {
	return once(&k.Base, ctx, func(ctx *module.Context) string {
		defName := k.Def.Name(ctx)
		name := fmt.Sprintf("_known_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "known", Name: name, Def: defName})

		return name
	})
}
