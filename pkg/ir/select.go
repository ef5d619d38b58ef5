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

// Select is a three-operand branchless choice: cond ? onTrue : onFalse.
type Select struct {
	Base

	Cond, OnTrue, OnFalse Def
}

// NewSelect constructs a Select over cond/onTrue/onFalse.
func NewSelect(cond, onTrue, onFalse Def) *Select {
	return &Select{Cond: cond, OnTrue: onTrue, OnFalse: onFalse}
}

// Name implements Def.
func (s *Select) Name(ctx *module.Context) string {
	return once(&s.Base, ctx, func(ctx *module.Context) string {
		args := []string{s.Cond.Name(ctx), s.OnTrue.Name(ctx), s.OnFalse.Name(ctx)}
		name := fmt.Sprintf("_select_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "select", Name: name, Args: args})

		return name
	})
}

// Filter is a tuple of per-parameter boolean defs attached to a
// continuation as a partial-evaluation hint (spec.md §3, §4.3).
type Filter struct {
	Base

	Flags []Def
}

// NewFilter constructs a Filter from the given per-parameter boolean
// defs, in parameter order.
func NewFilter(flags ...Def) *Filter {
	return &Filter{Flags: flags}
}

// AllTrue/AllFalse build the shorthand filter of n boolean constants, all
// true or all false respectively (spec.md §4.3).
func AllTrue(n int) *Filter  { return uniformFilter(n, true) }
func AllFalse(n int) *Filter { return uniformFilter(n, false) }

func uniformFilter(n int, value bool) *Filter {
	flags := make([]Def, n)
	for i := range flags {
		flags[i] = NewConst(types.NewPrim(types.Bool), value)
	}

	return &Filter{Flags: flags}
}

// Name implements Def.
func (f *Filter) Name(ctx *module.Context) string {
	return once(&f.Base, ctx, func(ctx *module.Context) string {
		args := make([]string, len(f.Flags))
		for i, flag := range f.Flags {
			args[i] = flag.Name(ctx)
		}

		name := fmt.Sprintf("_filter_%d", ctx.NextDefIndex())
		ctx.AppendDef(module.DefEntry{Kind: "filter", Name: name, Args: args})

		return name
	})
}
