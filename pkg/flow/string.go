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
package flow

import (
	"github.com/thorin-ir/go-thorin/pkg/ir"
	"github.com/thorin-ir/go-thorin/pkg/types"
)

// String encodes literal as UTF-8 plus a trailing NUL byte, emits a
// definite array of pu8 constants, wraps it in an immutable global, and
// bitcasts the result to `ptr<indef_array<pu8>>` — the shape expected
// wherever the backend accepts a C-style string pointer (spec.md §4.4,
// §8 scenario E4).
func String(literal string) ir.Def {
	bytes := append([]byte(literal), 0)

	pu8 := types.NewPrim(types.PU8)

	elems := make([]ir.Def, len(bytes))
	for i, b := range bytes {
		elems[i] = ir.NewConst(pu8, b)
	}

	arr := ir.NewDefiniteArrayVal(pu8, elems...)
	global := ir.NewGlobal(arr)
	target := types.NewPointer(types.NewIndefiniteArray(pu8))

	return ir.NewBitcast(global, target)
}
