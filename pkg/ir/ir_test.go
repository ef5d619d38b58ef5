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
package ir

import (
	"testing"

	"github.com/thorin-ir/go-thorin/pkg/module"
	"github.com/thorin-ir/go-thorin/pkg/types"
	"github.com/thorin-ir/go-thorin/pkg/util/assert"
)

func lastDef(ctx *module.Context) module.DefEntry {
	defs := ctx.DefEntries()
	return defs[len(defs)-1]
}

func TestSymmetricLiteralLiftingBothSides(t *testing.T) {
	ctx := module.NewContext("m")

	// lhs literal, rhs Def
	rhs := NewConst(types.NewPrim(types.QS32), 10)
	Add(3, rhs).Name(ctx)

	// lhs Def, rhs literal
	lhs := NewConst(types.NewPrim(types.QS32), 10)
	Add(lhs, 3).Name(ctx)

	constCount := 0
	for _, e := range ctx.DefEntries() {
		if e.Kind == "const" && e.ConstType != "" {
			constCount++
		}
	}
	// Two explicit consts plus two lifted literal consts (one per call).
	assert.Equal(t, 4, constCount)
}

func TestIndexLiftUsesUnsignedTag(t *testing.T) {
	ctx := module.NewContext("m")
	tuple := NewTupleVal(NewConst(types.NewPrim(types.QS32), 1))

	NewExtract(tuple, 0).Name(ctx)

	var idxConstType string
	for _, e := range ctx.DefEntries() {
		if e.Kind == "const" {
			idxConstType = e.ConstType
		}
	}

	// The lifted index constant's type entry should carry tag qu32.
	var tag string
	for _, e := range ctx.TypeEntries() {
		if e.Name == idxConstType {
			tag = e.Tag
		}
	}
	assert.Equal(t, types.QU32, tag)
}

func TestLiftRejectsUnsupportedType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic lifting an unsupported literal type")
		}
	}()

	Add("nope", 3)
}

func TestConstMaterializesOnce(t *testing.T) {
	ctx := module.NewContext("m")
	c := NewConst(types.NewPrim(types.QS32), 42)

	n1 := c.Name(ctx)
	n2 := c.Name(ctx)

	assert.Equal(t, n1, n2)

	count := 0
	for _, e := range ctx.DefEntries() {
		if e.Kind == "const" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestContinuationFiveStepProtocol(t *testing.T) {
	ctx := module.NewContext("m")

	fnType := types.NewFunction(types.NewPrim(types.QS32))
	cont := NewContinuation(fnType)
	params := cont.Params()
	assert.Equal(t, 1, len(params))

	target := NewConst(types.NewPrim(types.QS32), 0)
	cont.Terminate(target, params[0])

	name := cont.Name(ctx)

	var decl, app *module.DefEntry
	for i := range ctx.DefEntries() {
		e := &ctx.DefEntries()[i]
		if e.Kind == "continuation" && e.Name == name {
			if e.App == nil {
				decl = e
			} else {
				app = e
			}
		}
	}

	assert.True(t, decl != nil)
	assert.True(t, app != nil)
	assert.Equal(t, 1, len(decl.ArgNames))
	assert.Equal(t, name+".0", decl.ArgNames[0])
	assert.Equal(t, 1, len(app.App.Args))
}

func TestContinuationDoubleTerminatePanics(t *testing.T) {
	fnType := types.NewFunction()
	cont := NewContinuation(fnType)
	cont.Terminate(NewConst(types.NewPrim(types.QS32), 0))

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic terminating a continuation twice")
		}
	}()

	cont.Terminate(NewConst(types.NewPrim(types.QS32), 1))
}

func TestContinuationTerminateAfterMaterializePanics(t *testing.T) {
	ctx := module.NewContext("m")
	fnType := types.NewFunction()
	cont := NewContinuation(fnType)
	cont.Terminate(NewConst(types.NewPrim(types.QS32), 0))
	cont.Name(ctx)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic terminating an already-materialized continuation")
		}
	}()

	cont.Terminate(NewConst(types.NewPrim(types.QS32), 1))
}

func TestContinuationLinkageAfterMaterializePanics(t *testing.T) {
	ctx := module.NewContext("m")
	fnType := types.NewFunction()
	cont := NewContinuation(fnType)
	cont.Terminate(NewConst(types.NewPrim(types.QS32), 0))
	cont.Name(ctx)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic setting linkage after materialization")
		}
	}()

	cont.External("foo")
}

func TestContinuationDoubleLinkagePanics(t *testing.T) {
	fnType := types.NewFunction()
	cont := NewContinuation(fnType)
	cont.External("foo")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic setting a second linkage kind")
		}
	}()

	cont.Internal("bar")
}

func TestUnterminatedContinuationDeclOnly(t *testing.T) {
	ctx := module.NewContext("m")
	fnType := types.NewFunction()
	cont := NewContinuation(fnType).External("entry")

	cont.Name(ctx)

	count := 0
	for _, e := range ctx.DefEntries() {
		if e.Kind == "continuation" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestParameterNameBeforeParentReservedPanics(t *testing.T) {
	fnType := types.NewFunction(types.NewPrim(types.QS32))
	cont := NewContinuation(fnType)
	param := cont.Params()[0]

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic naming a parameter before its parent reserved a name")
		}
	}()

	ctx := module.NewContext("m")
	param.Name(ctx)
}

func TestOpenRegistersRootMaterializedAtSeal(t *testing.T) {
	ctx := module.NewContext("m")

	cont, params := Open(ctx, types.NewFunction(types.NewPrim(types.QS32)))
	cont.Terminate(NewConst(types.NewPrim(types.QS32), 0), params[0])

	ctx.Seal()

	found := false
	for _, e := range ctx.DefEntries() {
		if e.Kind == "continuation" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestFilterAllTrueAllFalse(t *testing.T) {
	ctx := module.NewContext("m")
	f := AllTrue(3)
	name := f.Name(ctx)
	assert.True(t, name != "")

	var entry *module.DefEntry
	for i := range ctx.DefEntries() {
		if ctx.DefEntries()[i].Name == name {
			entry = &ctx.DefEntries()[i]
		}
	}
	assert.Equal(t, 3, len(entry.Args))

	g := AllFalse(2)
	gName := g.Name(ctx)

	var falseEntry *module.DefEntry
	for i := range ctx.DefEntries() {
		if ctx.DefEntries()[i].Name == gName {
			falseEntry = &ctx.DefEntries()[i]
		}
	}
	assert.Equal(t, 2, len(falseEntry.Args))

	for _, arg := range falseEntry.Args {
		for _, e := range ctx.DefEntries() {
			if e.Name == arg {
				assert.Equal(t, false, e.Value)
			}
		}
	}
}

func TestReconstructImportsOnlyInternalContinuations(t *testing.T) {
	entries := []module.DefEntry{
		{Kind: "continuation", Name: "_continuation_0", Internal: "add_two"},
		{Kind: "continuation", Name: "_continuation_1", External: "main"},
		{Kind: "const", Name: "_const_0"},
	}

	imports := ReconstructImports(entries)
	assert.Equal(t, 1, len(imports))

	stub, ok := imports["add_two"]
	assert.True(t, ok)

	ctx := module.NewContext("m")
	assert.Equal(t, "_continuation_0", stub.Name(ctx))
}
