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

// Package ir provides builders for IR definitions: constants, arithmetic
// and comparison ops, casts, aggregate construction/projection, memory
// ops, partial-evaluation markers, and the continuation builder. Every
// builder is a lazily-materializing handle that emits exactly one entry
// (two, for continuations) into a module.Context's definition table on
// first use, mirroring the lazy-cache-once protocol of pkg/types.
package ir

import "github.com/thorin-ir/go-thorin/pkg/module"

// Def is the common interface satisfied by every definition-builder
// handle. Name materializes (if not already cached) this def and its
// dependencies into ctx, returning the synthetic name assigned to it.
type Def interface {
	Name(ctx *module.Context) string
}

// Base implements the lazy-cache-once bookkeeping shared by every def
// handle. As with types.Base, it deliberately offers no boolean
// interpretation and no equality beyond Go's native rules (spec.md §7).
type Base struct {
	name         string
	materialized bool
}

func (b *Base) cached() (string, bool) {
	return b.name, b.materialized
}

func (b *Base) cache(name string) string {
	if !b.materialized {
		b.name = name
		b.materialized = true
	}

	return b.name
}

// once runs compile() and caches its result the first time Name is
// called for this handle. Continuation uses a reserve-then-fill variant
// instead, since its application may reference its own name.
func once(b *Base, ctx *module.Context, compile func(ctx *module.Context) string) string {
	if name, ok := b.cached(); ok {
		return name
	}

	return b.cache(compile(ctx))
}
