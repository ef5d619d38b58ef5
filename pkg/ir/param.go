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
	"fmt"

	"github.com/thorin-ir/go-thorin/pkg/module"
)

// Parameter is the i-th formal parameter of a continuation. A parameter
// is uniquely identified by (parent continuation name, index) and never
// emits its own table entry: its serialized "name" is the derived string
// "<parent>.<index>", valid only once the parent's name has been
// reserved (spec.md §3 invariants, §4.3 step 2).
type Parameter struct {
	parent *Continuation
	index  int
}

// Name implements Def. The parent continuation must already have a
// reserved name (step 1 of the materialization protocol). Params hands
// parameters out before the parent is materialized; naming one before
// its parent has reserved a name panics.
func (p *Parameter) Name(ctx *module.Context) string {
	parentName, ok := p.parent.cached()
	if !ok {
		panic("parameter referenced before its parent continuation reserved a name")
	}

	return fmt.Sprintf("%s.%d", parentName, p.index)
}

// Index returns this parameter's positional index within its parent.
func (p *Parameter) Index() int { return p.index }
