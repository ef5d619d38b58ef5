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

import "fmt"

// State captures the three-phase lifecycle of a Context (spec.md §3
// Lifecycles): open while accepting new type/def entries, sealed once
// serialized (no further mutation permitted), released once handles
// derived from it must no longer be used.
type State uint8

const (
	// Open accepts new type/def entries.
	Open State = iota
	// Sealed has been serialized; Add is now fatal.
	Sealed
	// Released means backing resources (on-disk artifacts) may have been
	// cleaned up; the Context itself should not be touched further.
	Released
)

// Context is the in-progress module under construction: the ordered type
// and definition tables plus the bookkeeping needed to guarantee each
// builder node materializes at most once (spec.md §3 invariants).
//
// A Context is not safe for concurrent use by multiple goroutines (spec.md
// §5): a single module must not be constructed from multiple threads.
type Context struct {
	name    string
	types   []TypeEntry
	defs    []DefEntry
	state   State
	pending []func()
}

// NewContext opens a new, empty module under construction with the given
// name.
func NewContext(name string) *Context {
	return &Context{name: name, state: Open}
}

// Name returns the name of the module under construction.
func (c *Context) Name() string {
	return c.name
}

// State returns the current lifecycle state of this context.
func (c *Context) State() State {
	return c.state
}

// NextTypeIndex returns the index a type entry would be assigned if
// appended right now.  Callers reserve this index, cache the derived name,
// and only then materialize dependency entries — this is the
// reserve-then-fill pattern spec.md §9 requires for cyclic graphs.
func (c *Context) NextTypeIndex() int {
	return len(c.types)
}

// NextDefIndex is the definition-table analogue of NextTypeIndex.
func (c *Context) NextDefIndex() int {
	return len(c.defs)
}

// AppendType appends a fully-formed type entry to the type table.  Fatal
// if the context is no longer open.
func (c *Context) AppendType(entry TypeEntry) {
	c.assertOpen()
	c.types = append(c.types, entry)
}

// AppendDef appends a fully-formed definition entry to the definition
// table.  Fatal if the context is no longer open.
//
// A continuation is the only node permitted to call this twice with the
// same Name (declaration, then application) — see spec.md §4.3.
func (c *Context) AppendDef(entry DefEntry) {
	c.assertOpen()
	c.defs = append(c.defs, entry)
}

// TypeEntries returns the type table accumulated so far, in emission order.
func (c *Context) TypeEntries() []TypeEntry {
	return c.types
}

// DefEntries returns the definition table accumulated so far, in emission
// order.
func (c *Context) DefEntries() []DefEntry {
	return c.defs
}

// Serialize snapshots the current type/def tables into a Document.  This
// may be called while still open (to e.g. inspect progress); it does not
// itself transition the context to Sealed.
func (c *Context) Serialize() Document {
	return Document{
		Module:    c.name,
		TypeTable: append([]TypeEntry(nil), c.types...),
		Defs:      append([]DefEntry(nil), c.defs...),
	}
}

// RegisterRoot defers materialize to Seal time: a scoped continuation
// built without any other reference to it (e.g. the exit block of a
// top-level combinator) would otherwise never have its Name called and
// so never be emitted. materialize is invoked once, while the context is
// still Open, just before the state transitions to Sealed.
func (c *Context) RegisterRoot(materialize func()) {
	c.pending = append(c.pending, materialize)
}

// Seal transitions the context from Open to Sealed.  Fatal if already
// sealed or released — a sealed module cannot be reverted (spec.md §5).
// Any roots registered via RegisterRoot are materialized first, while the
// context is still Open.
func (c *Context) Seal() {
	if c.state != Open {
		panic(fmt.Sprintf("module %q is not open (state=%d)", c.name, c.state))
	}

	pending := c.pending
	c.pending = nil

	for _, materialize := range pending {
		materialize()
	}

	c.state = Sealed
}

// Release transitions the context to Released, after which handles
// materialized against it must not be used again. Idempotent.
func (c *Context) Release() {
	c.state = Released
}

func (c *Context) assertOpen() {
	if c.state != Open {
		panic(fmt.Sprintf("module %q is sealed; cannot add further definitions", c.name))
	}
}
