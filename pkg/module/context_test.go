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
package module

import (
	"testing"

	"github.com/thorin-ir/go-thorin/pkg/util/assert"
)

func TestNewContextIsOpen(t *testing.T) {
	ctx := NewContext("m")
	assert.Equal(t, Open, ctx.State())
	assert.Equal(t, "m", ctx.Name())
}

func TestAppendTypeAndDefIndices(t *testing.T) {
	ctx := NewContext("m")

	assert.Equal(t, 0, ctx.NextTypeIndex())
	ctx.AppendType(TypeEntry{Kind: "mem", Name: "_mem_0"})
	assert.Equal(t, 1, ctx.NextTypeIndex())

	assert.Equal(t, 0, ctx.NextDefIndex())
	ctx.AppendDef(DefEntry{Kind: "run", Name: "_run_0"})
	assert.Equal(t, 1, ctx.NextDefIndex())
}

func TestAppendAfterSealPanics(t *testing.T) {
	ctx := NewContext("m")
	ctx.Seal()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic adding to a sealed module")
		}
	}()

	ctx.AppendDef(DefEntry{Kind: "run", Name: "_run_0"})
}

func TestSealTwicePanics(t *testing.T) {
	ctx := NewContext("m")
	ctx.Seal()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic sealing an already-sealed module")
		}
	}()

	ctx.Seal()
}

func TestSerializeSnapshotsCurrentTables(t *testing.T) {
	ctx := NewContext("m")
	ctx.AppendType(TypeEntry{Kind: "mem", Name: "_mem_0"})
	ctx.AppendDef(DefEntry{Kind: "run", Name: "_run_0"})

	doc := ctx.Serialize()
	assert.Equal(t, "m", doc.Module)
	assert.Equal(t, 1, len(doc.TypeTable))
	assert.Equal(t, 1, len(doc.Defs))

	// Mutating the context after Serialize must not retroactively affect
	// the previously-returned snapshot (it is a copy, not a view).
	ctx.AppendDef(DefEntry{Kind: "run", Name: "_run_1"})
	assert.Equal(t, 1, len(doc.Defs))
}

func TestRegisterRootMaterializesBeforeSeal(t *testing.T) {
	ctx := NewContext("m")

	called := false
	ctx.RegisterRoot(func() {
		called = true
		ctx.AppendDef(DefEntry{Kind: "run", Name: "_run_0"})
	})

	ctx.Seal()

	assert.True(t, called)
	assert.Equal(t, 1, len(ctx.DefEntries()))
	assert.Equal(t, Sealed, ctx.State())
}

func TestReleaseIsIdempotent(t *testing.T) {
	ctx := NewContext("m")
	ctx.Release()
	ctx.Release()
	assert.Equal(t, Released, ctx.State())
}
