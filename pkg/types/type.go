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

// Package types provides builders for IR types: primitives, pointers,
// memory/frame/bottom, functions, closures, tuples, structs, variants and
// arrays.  Every builder is a lazily-materializing handle (see Base) that
// emits exactly one entry (two, for struct/variant) into a module.Context's
// type table on first use.
package types

import "github.com/thorin-ir/go-thorin/pkg/module"

// Type is the common interface satisfied by every type-builder handle.
// Name materializes (if not already cached) this type and its
// dependencies into ctx, returning the synthetic name assigned to it.
//
// Calling Name twice for the same handle against the same ctx returns the
// identical, cached name without appending further table entries
// (spec.md §8 property 1).
type Type interface {
	Name(ctx *module.Context) string
}

// Base implements the lazy-cache-once bookkeeping shared by every type
// handle.  It deliberately has no boolean interpretation and no equality
// beyond Go's native reference/struct equality, matching spec.md §7's
// "truthiness of a builder node is an error" rule: there is simply no
// method offered that would let a caller ask.
type Base struct {
	name      string
	materialized bool
}

// cached returns the previously-assigned name and whether one exists.
func (b *Base) cached() (string, bool) {
	return b.name, b.materialized
}

// cache records the name assigned to this handle. Subsequent calls are a
// no-op (idempotent), matching the "once-per-node materialization"
// invariant.
func (b *Base) cache(name string) string {
	if !b.materialized {
		b.name = name
		b.materialized = true
	}

	return b.name
}

// once runs compile() and caches its result the first time Name is called
// for this handle; later calls return the cached name directly without
// re-invoking compile. This is the standard (non-recursive, non-struct)
// materialization path — struct/variant/continuation need the
// reserve-then-fill variant instead (see struct_variant.go, and
// Continuation in pkg/ir).
func once(b *Base, ctx *module.Context, compile func(ctx *module.Context) string) string {
	if name, ok := b.cached(); ok {
		return name
	}

	return b.cache(compile(ctx))
}
