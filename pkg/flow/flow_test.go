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
	"testing"

	"github.com/thorin-ir/go-thorin/pkg/ir"
	"github.com/thorin-ir/go-thorin/pkg/module"
	"github.com/thorin-ir/go-thorin/pkg/types"
	"github.com/thorin-ir/go-thorin/pkg/util/assert"
)

// TestAddAndReturn mirrors scenario E1: a single exported entry point
// that loads two parameters, adds them, and tail-calls its return
// continuation with the sum.
func TestAddAndReturn(t *testing.T) {
	ctx := module.NewContext("m")

	fnType := types.NewFunction(types.NewPrim(types.QS32), types.NewPrim(types.QS32)).
		Returning(types.NewPrim(types.QS32))
	entry := ir.NewContinuation(fnType).External("add_and_return")
	params := entry.Params()

	sum := ir.Add(params[0], params[1])
	ret := params[2]
	entry.Terminate(ret, sum)

	name := entry.Name(ctx)
	assert.True(t, name != "")

	count := 0
	for _, e := range ctx.DefEntries() {
		if e.Kind == "continuation" && e.Name == name {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestLoadExtractSurfacesBothProjections(t *testing.T) {
	ctx := module.NewContext("m")

	// Parameters are named after their parent continuation, so the parent
	// is materialized before its parameters are referenced.
	cont := ir.NewContinuation(types.NewFunction(types.NewMem(), types.NewPointer(types.NewPrim(types.QS32))))
	cont.Name(ctx)
	memParam := cont.Params()
	result := LoadExtract(memParam[0], memParam[1])

	result.Mem.Name(ctx)
	result.Value.Name(ctx)

	extracts := 0
	for _, e := range ctx.DefEntries() {
		if e.Kind == "extract" {
			extracts++
		}
	}
	assert.Equal(t, 2, extracts)
}

func TestBranchAllocatesFreshBlocksWhenNil(t *testing.T) {
	mem := ir.NewContinuation(types.NewFunction(types.NewMem(), types.NewPrim(types.Bool))).Params()

	result := Branch(mem[0], mem[1], nil, nil)

	assert.True(t, result.OnTrue != nil)
	assert.True(t, result.OnFalse != nil)
	assert.Equal(t, 4, len(result.Args))
}

func TestBranchIntrinsicNotDedupedAcrossCalls(t *testing.T) {
	ctx := module.NewContext("m")
	mem := ir.NewContinuation(types.NewFunction(types.NewMem(), types.NewPrim(types.Bool))).Params()

	r1 := Branch(mem[0], mem[1], nil, nil)
	r2 := Branch(mem[0], mem[1], nil, nil)

	n1 := r1.Target.Name(ctx)
	n2 := r2.Target.Name(ctx)

	// Each call constructs its own intrinsic continuation handle: no
	// global cache collapses them to the same name.
	assert.True(t, n1 != n2)
}

// TestRangeStructuralShape exercises property 5: the
// structural shape of Range (a Branch on lo<hi before the body block)
// guarantees the body is unreachable when lo>=hi, independent of the
// bound values, since this is a static IR graph, not an interpreter.
func TestRangeStructuralShape(t *testing.T) {
	ctx := module.NewContext("m")

	body := ir.NewContinuation(types.NewFunction(types.NewMem(), types.NewPrim(types.QS32), types.NewFunction(types.NewMem())))
	bp := body.Params()
	body.Terminate(bp[2], bp[0])

	exit := ir.NewContinuation(types.NewFunction(types.NewMem()))
	ep := exit.Params()
	exit.Terminate(ep[0]) // not a real fn target, just materializes for the test

	outer := ir.NewContinuation(types.NewFunction(types.NewMem())).External("loop_entry")
	op := outer.Params()

	r := Range(op[0], 0, 10, 1, body, exit)
	outer.Terminate(r.Target, r.Args...)

	outer.Name(ctx)

	branchCount := 0
	for _, e := range ctx.DefEntries() {
		if e.Kind == "continuation" && e.Intrinsic == "branch" {
			branchCount++
		}
	}
	assert.Equal(t, 1, branchCount)
}

func TestStringLiteralEmitsArrayGlobalBitcast(t *testing.T) {
	ctx := module.NewContext("m")
	s := String("hi")
	s.Name(ctx)

	kinds := map[string]bool{}
	for _, e := range ctx.DefEntries() {
		kinds[e.Kind] = true
	}

	assert.True(t, kinds["def_array"])
	assert.True(t, kinds["global"])
	assert.True(t, kinds["bitcast"])

	// "hi" + NUL terminator = 3 elements.
	for _, e := range ctx.DefEntries() {
		if e.Kind == "def_array" {
			assert.Equal(t, 3, len(e.Args))
		}
	}
}

func TestFrameEnterAllocatesSlotInFreshFrame(t *testing.T) {
	ctx := module.NewContext("m")
	cont := ir.NewContinuation(types.NewFunction(types.NewMem()))
	cont.Name(ctx)
	mem := cont.Params()

	slot, newMem := FrameEnter(mem[0], types.NewPrim(types.QS32))
	slot.Name(ctx)
	newMem.Name(ctx)

	kinds := map[string]bool{}
	for _, e := range ctx.DefEntries() {
		kinds[e.Kind] = true
	}
	assert.True(t, kinds["enter"])
	assert.True(t, kinds["slot"])
}
