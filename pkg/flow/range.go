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

// RangeResult carries the target/args the caller hands to the
// terminating continuation's Terminate call, mirroring BranchResult.
type RangeResult struct {
	Target ir.Def
	Args   []ir.Def
}

// Range builds a counted loop: lo, hi, step (each a Def or integer
// literal, lifted to qs32) bound once and reused across iterations;
// body is a pre-built `fn(mem, i, next: fn(mem))` continuation invoked
// once per iteration, expected to terminate by tail-calling its own
// `next` parameter; exit is a pre-built `fn(mem)` continuation invoked
// once the loop condition fails (spec.md §4.4).
//
// Internally this allocates a recursive range continuation
// `fn(mem, lo, hi)` whose terminator is a Branch on `lo < hi`: the true
// branch calls body with the current lo and a freshly-built continue
// block that tail-calls the range continuation with `(mem, lo+step, hi)`;
// the false branch calls exit. Step is captured by closure over a single
// lifted Def, not threaded as a parameter, so it is effectively constant
// per range (spec.md §8 property 5: for lo >= hi, body is never called).
func Range(mem ir.Def, lo, hi, step any, body, exit *ir.Continuation) RangeResult {
	loDef := ir.LiftArith(lo)
	hiDef := ir.LiftArith(hi)
	stepDef := ir.LiftArith(step)

	qs32 := func() types.Type { return types.NewPrim(types.QS32) }

	rangeType := types.NewFunction(types.NewMem(), qs32(), qs32())
	rangeCont := ir.NewContinuation(rangeType)
	rp := rangeCont.Params()

	continueBlock := ir.NewContinuation(types.NewFunction(types.NewMem()))
	cp := continueBlock.Params()
	continueBlock.Terminate(rangeCont, cp[0], ir.Add(rp[1], stepDef), rp[2])

	trueBlock := ir.NewContinuation(types.NewFunction(types.NewMem()))
	tp := trueBlock.Params()
	trueBlock.Terminate(body, tp[0], rp[1], continueBlock)

	falseBlock := ir.NewContinuation(types.NewFunction(types.NewMem()))
	fp := falseBlock.Params()
	falseBlock.Terminate(exit, fp[0])

	br := Branch(rp[0], ir.Lt(rp[1], rp[2]), trueBlock, falseBlock)
	rangeCont.Terminate(br.Target, br.Args...)

	return RangeResult{Target: rangeCont, Args: []ir.Def{mem, loDef, hiDef}}
}
