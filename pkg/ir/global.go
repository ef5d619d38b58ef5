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

// Global wraps an initializer def as a module-level global, optionally
// exported under an external link name (spec.md §3).
type Global struct {
	Base

	Init     Def
	Mutable  bool
	External string
}

// NewGlobal constructs an immutable, non-exported Global wrapping init.
func NewGlobal(init Def) *Global {
	return &Global{Init: init}
}

// WithMutable marks this global mutable, returning it for chaining. Must
// be called before the global is first materialized.
func (g *Global) WithMutable() *Global {
	if _, ok := g.cached(); ok {
		panic("cannot modify a global after materialization")
	}

	g.Mutable = true

	return g
}

// WithExternal exports this global under the given external link name,
// returning it for chaining. Must be called before the global is first
// materialized.
func (g *Global) WithExternal(name string) *Global {
	if _, ok := g.cached(); ok {
		panic("cannot modify a global after materialization")
	}

	g.External = name

	return g
}

// Name implements Def.
func (g *Global) Name(ctx *module.Context) string {
	return once(&g.Base, ctx, func(ctx *module.Context) string {
		init := g.Init.Name(ctx)
		mutable := g.Mutable
		name := fmt.Sprintf("_global_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{
			Kind: "global", Name: name, Init: init, Mutable: &mutable, External: g.External,
		})

		return name
	})
}
