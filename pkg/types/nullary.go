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

// Mem is the memory-token type: the linear type threaded through every
// effectful operation (spec.md Glossary).
type Mem struct{ Base }

// NewMem constructs a memory type handle.
func NewMem() *Mem { return &Mem{} }

// Name implements Type.
func (m *Mem) Name(ctx *module.Context) string {
	return once(&m.Base, ctx, func(ctx *module.Context) string {
		name := fmt.Sprintf("_mem_%d", ctx.NextTypeIndex())
		ctx.AppendType(module.TypeEntry{Kind: "mem", Name: name})

		return name
	})
}

// ReconstructMem rebuilds a Mem handle from a serialized entry.
func ReconstructMem(entry module.TypeEntry) *Mem {
	m := &Mem{}
	m.cache(entry.Name)

	return m
}

// Frame is a stack-allocation region type, produced by Enter and consumed
// by Slot (spec.md Glossary).
type Frame struct{ Base }

// NewFrame constructs a frame type handle.
func NewFrame() *Frame { return &Frame{} }

// Name implements Type.
func (f *Frame) Name(ctx *module.Context) string {
	return once(&f.Base, ctx, func(ctx *module.Context) string {
		name := fmt.Sprintf("_frame_%d", ctx.NextTypeIndex())
		ctx.AppendType(module.TypeEntry{Kind: "frame", Name: name})

		return name
	})
}

// ReconstructFrame rebuilds a Frame handle from a serialized entry.
func ReconstructFrame(entry module.TypeEntry) *Frame {
	f := &Frame{}
	f.cache(entry.Name)

	return f
}

// Bottom is the empty/uninhabited type.
type Bottom struct{ Base }

// NewBottom constructs a bottom type handle.
func NewBottom() *Bottom { return &Bottom{} }

// Name implements Type.
func (b *Bottom) Name(ctx *module.Context) string {
	return once(&b.Base, ctx, func(ctx *module.Context) string {
		name := fmt.Sprintf("_bottom_%d", ctx.NextTypeIndex())
		ctx.AppendType(module.TypeEntry{Kind: "bottom", Name: name})

		return name
	})
}

// ReconstructBottom rebuilds a Bottom handle from a serialized entry.
func ReconstructBottom(entry module.TypeEntry) *Bottom {
	b := &Bottom{}
	b.cache(entry.Name)

	return b
}
