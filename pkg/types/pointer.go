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

// Pointer is a pointer-to-pointee type.  Device and AddrSpace are opaque
// strings, untyped by this library (spec.md §4.1).
type Pointer struct {
	Base

	Pointee   Type
	Length    uint
	Device    string
	AddrSpace string
}

// NewPointer constructs a scalar pointer (length 1, no device/addrspace).
func NewPointer(pointee Type) *Pointer {
	return &Pointer{Pointee: pointee, Length: 1}
}

// NewPointerVector constructs a SIMD-lane pointer type.
func NewPointerVector(pointee Type, length uint) *Pointer {
	if length < 1 {
		panic("pointer type requires length >= 1")
	}

	return &Pointer{Pointee: pointee, Length: length}
}

// WithDevice annotates this pointer with a device id, returning it for
// chaining. Must be called before the pointer is first materialized.
func (p *Pointer) WithDevice(device string) *Pointer {
	if _, ok := p.cached(); ok {
		panic("cannot modify a pointer type after materialization")
	}

	p.Device = device

	return p
}

// WithAddrSpace annotates this pointer with an address space, returning it
// for chaining. Must be called before the pointer is first materialized.
func (p *Pointer) WithAddrSpace(addrspace string) *Pointer {
	if _, ok := p.cached(); ok {
		panic("cannot modify a pointer type after materialization")
	}

	p.AddrSpace = addrspace

	return p
}

// Name implements Type.
func (p *Pointer) Name(ctx *module.Context) string {
	return once(&p.Base, ctx, func(ctx *module.Context) string {
		pointee := p.Pointee.Name(ctx)
		idx := ctx.NextTypeIndex()
		name := fmt.Sprintf("_ptr_%d", idx)
		length := p.Length
		ctx.AppendType(module.TypeEntry{
			Kind: "ptr", Name: name, Length: &length, Args: []string{pointee},
			Device: p.Device, AddrSpace: p.AddrSpace,
		})

		return name
	})
}

// importedPointer is the reconstruction-only form; its pointee is looked
// up by name at reconstruction time rather than built from a live handle.
type importedPointer struct {
	Base

	pointee Type
	length  uint
}

// ReconstructPointer rebuilds a Pointer-shaped handle given the already-
// reconstructed pointee type.
func ReconstructPointer(entry module.TypeEntry, pointee Type) Type {
	length := uint(1)
	if entry.Length != nil {
		length = *entry.Length
	}

	p := &importedPointer{pointee: pointee, length: length}
	p.cache(entry.Name)

	return p
}

// Name implements Type for an imported pointer: it is already emitted, so
// this simply returns the cached name.
func (p *importedPointer) Name(ctx *module.Context) string {
	name, _ := p.cached()
	return name
}
