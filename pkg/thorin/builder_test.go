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
package thorin

import (
	"path/filepath"
	"testing"

	"github.com/thorin-ir/go-thorin/pkg/ir"
	"github.com/thorin-ir/go-thorin/pkg/toolchain"
	"github.com/thorin-ir/go-thorin/pkg/types"
	"github.com/thorin-ir/go-thorin/pkg/util/assert"
)

func TestOpenAddSealRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rec := &toolchain.Recording{}

	b := Open("add_and_return",
		WithToolchain(rec),
		WithJSONPath(filepath.Join(dir, "add_and_return.thorin.json")),
	)

	fnType := types.NewFunction(types.NewPrim(types.QS32), types.NewPrim(types.QS32)).
		Returning(types.NewPrim(types.QS32))
	entry := ir.NewContinuation(fnType).External("add_and_return")
	params := entry.Params()
	entry.Terminate(params[2], ir.Add(params[0], params[1]))

	b.Add(entry)

	if err := b.Seal(); err != nil {
		t.Fatalf("seal failed: %v", err)
	}

	assert.Equal(t, 1, len(rec.Invocations))
	assert.Equal(t, "add_and_return", rec.Invocations[0].ModuleName)

	doc := rec.Invocations[0].Document
	assert.True(t, len(doc.Defs) > 0)

	b.Close()
}

func TestSealThenAddPanics(t *testing.T) {
	dir := t.TempDir()
	b := Open("m", WithJSONPath(filepath.Join(dir, "m.thorin.json")))

	entry := ir.NewContinuation(types.NewFunction()).External("entry")
	entry.Terminate(ir.NewConst(types.NewPrim(types.QS32), 0))
	b.Add(entry)

	if err := b.Seal(); err != nil {
		t.Fatalf("seal failed: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic adding to a sealed builder")
		}
	}()

	again := ir.NewContinuation(types.NewFunction()).Internal("other")
	b.Add(again)
}

func TestIncludeReconstructsImportedDefs(t *testing.T) {
	dir := t.TempDir()
	producerPath := filepath.Join(dir, "producer.thorin.json")

	producer := Open("producer", WithJSONPath(producerPath))

	fnType := types.NewFunction(types.NewPrim(types.QS32)).Returning(types.NewPrim(types.QS32))
	entry := ir.NewContinuation(fnType).Internal("double")
	ep := entry.Params()
	entry.Terminate(ep[1], ir.Add(ep[0], ep[0]))
	producer.Add(entry)

	if err := producer.Seal(); err != nil {
		t.Fatalf("producer seal failed: %v", err)
	}

	consumer := Open("consumer", WithJSONPath(filepath.Join(dir, "consumer.thorin.json")))
	if err := consumer.Include(producerPath); err != nil {
		t.Fatalf("include failed: %v", err)
	}

	stub, ok := consumer.LookupImported("double")
	assert.True(t, ok)
	assert.True(t, stub != nil)

	_, missing := consumer.LookupImported("nonexistent")
	assert.False(t, missing)
}
