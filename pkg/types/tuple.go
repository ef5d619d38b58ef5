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

// Tuple is an ordered, unnamed aggregate of element types, indexed
// positionally by Extract/Insert (spec.md §3).
type Tuple struct {
	Base

	elems []Type
}

// NewTuple constructs a tuple type from the given element types, in order.
func NewTuple(elems ...Type) *Tuple {
	return &Tuple{elems: elems}
}

// Elems returns the element types of this tuple, in order.
func (t *Tuple) Elems() []Type {
	return t.elems
}

// Name implements Type.
func (t *Tuple) Name(ctx *module.Context) string {
	return once(&t.Base, ctx, func(ctx *module.Context) string {
		args := make([]string, len(t.elems))
		for i, e := range t.elems {
			args[i] = e.Name(ctx)
		}

		name := fmt.Sprintf("_tuple_%d", ctx.NextTypeIndex())
		ctx.AppendType(module.TypeEntry{Kind: "tuple", Name: name, Args: args})

		return name
	})
}

// ReconstructTuple rebuilds a Tuple handle given already-reconstructed
// element types.
func ReconstructTuple(entry module.TypeEntry, elems []Type) *Tuple {
	t := &Tuple{elems: elems}
	t.cache(entry.Name)

	return t
}
