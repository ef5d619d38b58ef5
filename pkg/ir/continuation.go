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
	"github.com/thorin-ir/go-thorin/pkg/types"
)

// Continuation is the hardest node type in the builder: a first-class
// CPS block with a fixed parameter list, optional linkage, an optional
// filter, and a terminator (application) set at most once (spec.md
// §4.3). Its materialization protocol reserves and caches its own name
// *before* touching any dependent, since the application may target the
// continuation itself and its args may be the continuation's own
// parameters.
type Continuation struct {
	Base

	fnType *types.Function
	params []*Parameter

	linkageKind string // "", "external", "internal", or "intrinsic"
	linkageName string

	filter *Filter

	appTarget  Def
	appArgs    []Def
	terminated bool
}

// NewContinuation constructs a continuation of the given function type.
// Its parameters are allocated immediately (their identity, per
// (parent, index), does not depend on materialization) and are
// available via Params before the continuation's name is ever assigned.
func NewContinuation(fnType *types.Function) *Continuation {
	c := &Continuation{fnType: fnType}

	c.params = make([]*Parameter, len(fnType.Args()))
	for i := range c.params {
		c.params[i] = &Parameter{parent: c, index: i}
	}

	return c
}

// Open is the scoped-construction entry point described in spec.md §9's
// builder-pattern idiom: it constructs a continuation of fnType,
// registers it with ctx so that it materializes at Seal time even if
// nothing else ever references it, and returns the continuation plus its
// parameters for the caller to bind and terminate.
func Open(ctx *module.Context, fnType *types.Function) (*Continuation, []*Parameter) {
	c := NewContinuation(fnType)
	ctx.RegisterRoot(func() { c.Name(ctx) })

	return c, c.params
}

// Params returns this continuation's parameter handles, in order.
func (c *Continuation) Params() []*Parameter {
	return c.params
}

// External marks this continuation as an externally-linked entry point
// under the given name. At most one of External/Internal/Intrinsic may
// be set, and only before first materialization.
func (c *Continuation) External(name string) *Continuation {
	c.assertLinkageMutable()
	c.linkageKind, c.linkageName = "external", name

	return c
}

// Internal marks this continuation as internally-linked (importable by a
// later module via ImportResolver) under the given name.
func (c *Continuation) Internal(name string) *Continuation {
	c.assertLinkageMutable()
	c.linkageKind, c.linkageName = "internal", name

	return c
}

// Intrinsic marks this continuation as a backend intrinsic (no body;
// e.g. "branch") under the given name.
func (c *Continuation) Intrinsic(name string) *Continuation {
	c.assertLinkageMutable()
	c.linkageKind, c.linkageName = "intrinsic", name

	return c
}

func (c *Continuation) assertLinkageMutable() {
	if _, ok := c.cached(); ok {
		panic("cannot set linkage on a continuation after materialization")
	}

	if c.linkageKind != "" {
		panic(fmt.Sprintf("continuation already has %s linkage %q", c.linkageKind, c.linkageName))
	}
}

// WithFilter attaches a per-parameter boolean filter to this
// continuation. Must be called before the continuation is first
// materialized.
func (c *Continuation) WithFilter(f *Filter) *Continuation {
	if _, ok := c.cached(); ok {
		panic("cannot set filter on a continuation after materialization")
	}

	c.filter = f

	return c
}

// Terminate sets this continuation's terminator: a tail call to target
// with args. Calling Terminate twice on the same continuation is a
// fatal error (spec.md §8 scenario E6), as is calling it after the
// continuation has already materialized.
func (c *Continuation) Terminate(target Def, args ...Def) *Continuation {
	if _, ok := c.cached(); ok {
		panic("cannot terminate a continuation after materialization")
	}

	if c.terminated {
		panic("continuation application may be set only once")
	}

	c.appTarget = target
	c.appArgs = args
	c.terminated = true

	return c
}

// Name implements Def, performing the five-step materialization protocol
// of spec.md §4.3.
func (c *Continuation) Name(ctx *module.Context) string {
	if name, ok := c.cached(); ok {
		return name
	}

	// Step 1: reserve and cache the name before touching any dependent —
	// the application below may reference c itself or its own parameters.
	idx := ctx.NextDefIndex()
	name := fmt.Sprintf("_continuation_%d", idx)
	c.cache(name)

	// Step 2: declaration entry. Parameter names are derived strings, not
	// table entries in their own right.
	fnType := c.fnType.Name(ctx)

	argNames := make([]string, len(c.params))
	for i, p := range c.params {
		argNames[i] = p.Name(ctx)
	}

	decl := module.DefEntry{Kind: "continuation", Name: name, FnType: fnType, ArgNames: argNames}

	switch c.linkageKind {
	case "external":
		decl.External = c.linkageName
	case "internal":
		decl.Internal = c.linkageName
	case "intrinsic":
		decl.Intrinsic = c.linkageName
	}

	ctx.AppendDef(decl)

	if !c.terminated {
		// Declared but un-terminated: valid for imported externs or
		// combinator output whose terminator is filled in later.
		return name
	}

	// Step 3: materialize the filter, if any.
	var filterName string
	if c.filter != nil {
		filterName = c.filter.Name(ctx)
	}

	// Step 4: materialize the application and emit the second entry,
	// sharing the same name — the only place a repeated name is
	// permitted (spec.md §4.3 step 4, §8 property 2).
	target := c.appTarget.Name(ctx)

	args := make([]string, len(c.appArgs))
	for i, a := range c.appArgs {
		args[i] = a.Name(ctx)
	}

	app := module.DefEntry{
		Kind: "continuation", Name: name,
		App: &module.Application{Target: target, Args: args},
	}
	if filterName != "" {
		app.Filter = filterName
	}

	ctx.AppendDef(app)

	return name
}

// ReconstructContinuationStub builds the fn() stub handle described in
// spec.md §4.6 step 2 for an imported definition bearing internal
// linkage: a pre-named, already-materialized continuation referable by
// name but carrying no body. Per spec.md §9's open question, the stub is
// typed fn() regardless of the definition's real type; callers that know
// the real type should prefer reconstructing a full Continuation from
// the def table instead of relying on this fallback.
func ReconstructContinuationStub(name string) *Continuation {
	c := &Continuation{fnType: types.NewFunction()}
	c.cache(name)

	return c
}
