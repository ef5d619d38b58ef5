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

// Primitive tags, as used in spec.md §3: signedness and saturation are
// encoded directly in the tag.
const (
	Bool = "bool"
	// Unsigned, wrapping
	PU8 = "pu8"
	PU16 = "pu16"
	PU32 = "pu32"
	PU64 = "pu64"
	// Unsigned, saturating
	QU8  = "qu8"
	QU16 = "qu16"
	QU32 = "qu32"
	QU64 = "qu64"
	// Signed, wrapping
	PS8  = "ps8"
	PS16 = "ps16"
	PS32 = "ps32"
	PS64 = "ps64"
	// Signed, saturating
	QS8  = "qs8"
	QS16 = "qs16"
	QS32 = "qs32"
	QS64 = "qs64"
	// Floating point, wrapping/saturating
	PF16 = "pf16"
	QF16 = "qf16"
	PF32 = "pf32"
	QF32 = "qf32"
	PF64 = "pf64"
	QF64 = "qf64"
)

// Prim is a primitive (scalar or SIMD-vector) type, identified by tag and
// lane count.
type Prim struct {
	Base

	Tag    string
	Length uint
}

// NewPrim constructs a scalar primitive type (length 1).
func NewPrim(tag string) *Prim {
	return &Prim{Tag: tag, Length: 1}
}

// NewPrimVector constructs a SIMD-lane primitive type.  length must be >=1.
func NewPrimVector(tag string, length uint) *Prim {
	if length < 1 {
		panic(fmt.Sprintf("primitive type %q requires length >= 1, got %d", tag, length))
	}

	return &Prim{Tag: tag, Length: length}
}

// Name implements Type.
func (p *Prim) Name(ctx *module.Context) string {
	return once(&p.Base, ctx, func(ctx *module.Context) string {
		idx := ctx.NextTypeIndex()
		name := fmt.Sprintf("_prim_%d", idx)
		length := p.Length
		ctx.AppendType(module.TypeEntry{Kind: "prim", Name: name, Tag: p.Tag, Length: &length})

		return name
	})
}

// ReconstructPrim rebuilds a Prim handle from a previously-serialized type
// entry (spec.md §4.6 import reconstruction).
func ReconstructPrim(entry module.TypeEntry) *Prim {
	length := uint(1)
	if entry.Length != nil {
		length = *entry.Length
	}

	p := &Prim{Tag: entry.Tag, Length: length}
	p.cache(entry.Name)

	return p
}
