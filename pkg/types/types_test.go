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
package types

import (
	"testing"

	"github.com/thorin-ir/go-thorin/pkg/module"
	"github.com/thorin-ir/go-thorin/pkg/util"
	"github.com/thorin-ir/go-thorin/pkg/util/assert"
)

func TestPrimMaterializesOnce(t *testing.T) {
	ctx := module.NewContext("m")
	p := NewPrim(QU32)

	n1 := p.Name(ctx)
	n2 := p.Name(ctx)

	assert.Equal(t, n1, n2)
	assert.Equal(t, 1, len(ctx.TypeEntries()))
	assert.Equal(t, "_prim_0", n1)
}

func TestPrimVectorRejectsZeroLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero-length primitive vector")
		}
	}()

	NewPrimVector(QS32, 0)
}

func TestPointerSharesPointeeAcrossUses(t *testing.T) {
	ctx := module.NewContext("m")
	mem := NewMem()
	p1 := NewPointer(mem)
	p2 := NewPointer(mem)

	n1 := p1.Name(ctx)
	n2 := p2.Name(ctx)

	// Distinct pointer handles get distinct names, but the shared pointee
	// (mem) materializes only once.
	assert.True(t, n1 != n2)

	memEntries := 0
	for _, e := range ctx.TypeEntries() {
		if e.Kind == "mem" {
			memEntries++
		}
	}
	assert.Equal(t, 1, memEntries)
}

func TestPointerWithDeviceAfterMaterializePanics(t *testing.T) {
	ctx := module.NewContext("m")
	p := NewPointer(NewMem())
	p.Name(ctx)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic mutating a materialized pointer")
		}
	}()

	p.WithDevice("gpu0")
}

func TestFunctionReturningAppendsContinuationParameter(t *testing.T) {
	ctx := module.NewContext("m")
	fn := NewFunction(NewPrim(QS32)).Returning(NewPrim(QS32))

	assert.Equal(t, 2, len(fn.Args()))

	fn.Name(ctx)

	memNames := map[string]bool{}
	for _, e := range ctx.TypeEntries() {
		if e.Kind == "mem" {
			memNames[e.Name] = true
		}
	}

	found := false
	for _, e := range ctx.TypeEntries() {
		if e.Kind == "function" && len(e.Args) == 2 && memNames[e.Args[0]] {
			// the trailing fn(mem, ret) parameter
			found = true
		}
	}
	assert.True(t, found)
}

func TestStructTwoPhaseEmission(t *testing.T) {
	ctx := module.NewContext("m")
	s := NewStruct(
		"Point",
		util.NewPair[string, Type]("x", Type(NewPrim(QS32))),
		util.NewPair[string, Type]("y", Type(NewPrim(QS32))),
	)

	name := s.Name(ctx)

	var decl, defn *module.TypeEntry
	for i := range ctx.TypeEntries() {
		e := &ctx.TypeEntries()[i]
		if e.Kind == "struct" && e.Name == name {
			if e.Args == nil {
				decl = e
			} else {
				defn = e
			}
		}
	}

	assert.True(t, decl != nil)
	assert.True(t, defn != nil)
	assert.Equal(t, []string{"x", "y"}, decl.ArgNames)
	assert.Equal(t, 2, len(defn.Args))
}

func TestStructSelfReferentialField(t *testing.T) {
	ctx := module.NewContext("m")

	var self *Struct
	self = NewStruct(
		"Node",
		util.NewPair[string, Type]("next", Type(nil)),
	)
	// Install the self-referential pointer field after construction, since
	// we need `self` in scope to build it.
	self.fields[0].Right = NewPointer(self)

	name := self.Name(ctx)

	// Must not recurse infinitely: Name resolves because the struct's own
	// name was cached before the pointer field materialized.
	assert.True(t, name != "")
	assert.Equal(t, name, name)
}

func TestNewStructRejectsNoFields(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic constructing a struct with no fields")
		}
	}()

	NewStruct("Empty")
}

func TestVariantTwoPhaseEmission(t *testing.T) {
	ctx := module.NewContext("m")
	v := NewVariant(
		"Option",
		util.NewPair[string, Type]("some", Type(NewPrim(QS32))),
		util.NewPair[string, Type]("none", Type(NewBottom())),
	)

	name := v.Name(ctx)

	count := 0
	for _, e := range ctx.TypeEntries() {
		if e.Kind == "variant" && e.Name == name {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestTupleAndClosureAndArrays(t *testing.T) {
	ctx := module.NewContext("m")

	tup := NewTuple(NewPrim(QS32), NewPrim(QU32))
	tup.Name(ctx)

	clo := NewClosure(NewPrim(QS32))
	clo.Name(ctx)

	arr := NewDefiniteArray(NewPrim(PU8), 4)
	arr.Name(ctx)

	iarr := NewIndefiniteArray(NewPrim(PU8))
	iarr.Name(ctx)

	kinds := map[string]bool{}
	for _, e := range ctx.TypeEntries() {
		kinds[e.Kind] = true
	}

	assert.True(t, kinds["tuple"])
	assert.True(t, kinds["closure"])
	assert.True(t, kinds["def_array"])
	assert.True(t, kinds["indef_array"])
}

func TestDefiniteArrayRejectsZeroLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a zero-length definite array")
		}
	}()

	NewDefiniteArray(NewPrim(PU8), 0)
}

func TestReconstructRoundTripsMemAndPointer(t *testing.T) {
	ctx := module.NewContext("m")
	mem := NewMem()
	ptr := NewPointer(mem)
	ptr.Name(ctx)

	reg := Reconstruct(ctx.TypeEntries())

	memName := mem.Name(ctx) // already cached, just fetches it
	got, ok := reg[memName]
	assert.True(t, ok)
	assert.True(t, got != nil)

	_, ok = reg[ptr.Name(ctx)]
	assert.True(t, ok)
}
