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
package types

import (
	"fmt"

	"github.com/thorin-ir/go-thorin/pkg/module"
)

// Function is a CPS function type: an ordered list of parameter types.
// There is no separate return type — a "return" is modeled by appending a
// function-typed parameter, the continuation to invoke on return
// (spec.md §3).  Use Returning/ReturningVoid for the common convenience
// shapes; leave them unset to build a no-return function type.
type Function struct {
	Base

	args []Type
}

// NewFunction constructs a function type with the given parameter types,
// in order.
func NewFunction(args ...Type) *Function {
	return &Function{args: args}
}

// Returning appends a trailing `fn(mem, ret)` parameter — "returning ret"
// in direct-style terms. Must be called before first materialization.
func (f *Function) Returning(ret Type) *Function {
	f.assertMutable()
	f.args = append(f.args, NewFunction(NewMem(), ret))

	return f
}

// ReturningVoid appends a trailing `fn(mem)` parameter — "returning void"
// in direct-style terms. Must be called before first materialization.
func (f *Function) ReturningVoid() *Function {
	f.assertMutable()
	f.args = append(f.args, NewFunction(NewMem()))

	return f
}

// Args returns the parameter types of this function type, in order.
func (f *Function) Args() []Type {
	return f.args
}

// Name implements Type.
func (f *Function) Name(ctx *module.Context) string {
	return once(&f.Base, ctx, func(ctx *module.Context) string {
		args := make([]string, len(f.args))
		for i, a := range f.args {
			args[i] = a.Name(ctx)
		}

		name := fmt.Sprintf("_fn_%d", ctx.NextTypeIndex())
		ctx.AppendType(module.TypeEntry{Kind: "function", Name: name, Args: args})

		return name
	})
}

func (f *Function) assertMutable() {
	if _, ok := f.cached(); ok {
		panic("cannot modify a function type after materialization")
	}
}

// ReconstructFunction rebuilds a Function handle given already-
// reconstructed argument types.
func ReconstructFunction(entry module.TypeEntry, args []Type) *Function {
	f := &Function{args: args}
	f.cache(entry.Name)

	return f
}
