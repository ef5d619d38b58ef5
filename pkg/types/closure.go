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

// Closure is an ordered list of argument types: the captured environment
// plus the function itself (spec.md §3).
type Closure struct {
	Base

	args []Type
}

// NewClosure constructs a closure type with the given argument types.
func NewClosure(args ...Type) *Closure {
	return &Closure{args: args}
}

// Name implements Type.
func (c *Closure) Name(ctx *module.Context) string {
	return once(&c.Base, ctx, func(ctx *module.Context) string {
		args := make([]string, len(c.args))
		for i, a := range c.args {
			args[i] = a.Name(ctx)
		}

		name := fmt.Sprintf("_closure_%d", ctx.NextTypeIndex())
		ctx.AppendType(module.TypeEntry{Kind: "closure", Name: name, Args: args})

		return name
	})
}

// ReconstructClosure rebuilds a Closure handle given already-reconstructed
// argument types.
func ReconstructClosure(entry module.TypeEntry, args []Type) *Closure {
	c := &Closure{args: args}
	c.cache(entry.Name)

	return c
}
