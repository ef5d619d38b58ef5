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

// BranchResult is the output of Branch: the two destination blocks (each
// a fn(mem) continuation), their bound memory parameters, and the
// target/args pair the caller should hand to the terminating
// continuation's Terminate call.
type BranchResult struct {
	OnTrue, OnFalse   *ir.Continuation
	TrueMem, FalseMem ir.Def
	Target            ir.Def
	Args              []ir.Def
}

// Branch builds a conditional-branch terminator fragment. If onTrue or
// onFalse is nil, a fresh mem-typed continuation is allocated for it.
// The returned Target/Args are a call to the backend's "branch"
// intrinsic with type fn(mem, bool, fn(mem), fn(mem)); the caller is
// responsible for terminating its own continuation with them (spec.md
// §4.4).
func Branch(mem, cond ir.Def, onTrue, onFalse *ir.Continuation) BranchResult {
	if onTrue == nil {
		onTrue = ir.NewContinuation(types.NewFunction(types.NewMem()))
	}

	if onFalse == nil {
		onFalse = ir.NewContinuation(types.NewFunction(types.NewMem()))
	}

	intrinsicType := types.NewFunction(
		types.NewMem(),
		types.NewPrim(types.Bool),
		types.NewFunction(types.NewMem()),
		types.NewFunction(types.NewMem()),
	)
	branchIntrinsic := ir.NewContinuation(intrinsicType).Intrinsic("branch")

	return BranchResult{
		OnTrue:   onTrue,
		OnFalse:  onFalse,
		TrueMem:  onTrue.Params()[0],
		FalseMem: onFalse.Params()[0],
		Target:   branchIntrinsic,
		Args:     []ir.Def{mem, cond, onTrue, onFalse},
	}
}
