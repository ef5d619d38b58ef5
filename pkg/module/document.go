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

// Package module provides the top-level container for a Thorin IR module:
// the ordered type/definition tables, the serialized document shape
// consumed by the downstream optimizer, and the open/sealed/released
// lifecycle that guards against mutation after serialization.
package module

// Application represents the terminator of a continuation: a call to
// target with the given argument names.  Both target and args are names
// already present in the definition table (or, for a self-reference, the
// name of the continuation currently being materialized).
type Application struct {
	Target string   `json:"target"`
	Args   []string `json:"args"`
}

// TypeEntry is a single row of a module's type table.  Only the fields
// relevant to Kind are populated; the rest are omitted from the JSON
// encoding.  The shape mirrors spec.md §6 field-for-field.
type TypeEntry struct {
	Kind   string `json:"type"`
	Name   string `json:"name"`
	Tag    string `json:"tag,omitempty"`
	Length *uint  `json:"length,omitempty"`
	// Args holds dependency type names: pointee, element type, function
	// parameter types, tuple elements, etc, depending on Kind.
	Args []string `json:"args,omitempty"`
	// Device and AddrSpace are opaque, pointer-only attributes.
	Device    string `json:"device,omitempty"`
	AddrSpace string `json:"addrspace,omitempty"`
	// StructName/VariantName/ArgNames are the nominal-type fields; see
	// the two-phase struct/variant emission protocol in §4.1.
	StructName  string   `json:"struct_name,omitempty"`
	VariantName string   `json:"variant_name,omitempty"`
	ArgNames    []string `json:"arg_names,omitempty"`
}

// DefEntry is a single row of a module's definition table.  As with
// TypeEntry, only the fields relevant to Kind are populated.
type DefEntry struct {
	Kind string `json:"type"`
	Name string `json:"name"`
	// Constants / top / bottom
	ConstType string `json:"const_type,omitempty"`
	Value     any    `json:"value,omitempty"`
	// arithop / mathop / cmp
	Op string `json:"op,omitempty"`
	// Generic operand list, used by the majority of def kinds.
	Args []string `json:"args,omitempty"`
	// cast / bitcast
	Source     string `json:"source,omitempty"`
	TargetType string `json:"target_type,omitempty"`
	// enter / slot
	Mem   string `json:"mem,omitempty"`
	Frame string `json:"frame,omitempty"`
	// def_array / indef_array (as defs)
	ElemType string `json:"elem_type,omitempty"`
	Dim      string `json:"dim,omitempty"`
	// global
	Mutable  *bool  `json:"mutable,omitempty"`
	Init     string `json:"init,omitempty"`
	External string `json:"external,omitempty"`
	// closure / struct / variant (defs)
	ClosureType string `json:"closure_type,omitempty"`
	StructType  string `json:"struct_type,omitempty"`
	VariantType string `json:"variant_type,omitempty"`
	Index       any    `json:"index,omitempty"`
	// hlt / known
	Target string `json:"target,omitempty"`
	Def    string `json:"def,omitempty"`
	// assembly
	AsmType           string   `json:"asm_type,omitempty"`
	Inputs            []string `json:"inputs,omitempty"`
	AsmTemplate       string   `json:"asm_template,omitempty"`
	InputConstraints  []string `json:"input_constraints,omitempty"`
	OutputConstraints []string `json:"output_constraints,omitempty"`
	Clobbers          []string `json:"clobbers,omitempty"`
	// continuation
	FnType    string        `json:"fn_type,omitempty"`
	ArgNames  []string      `json:"arg_names,omitempty"`
	Internal  string        `json:"internal,omitempty"`
	Intrinsic string        `json:"intrinsic,omitempty"`
	App       *Application  `json:"app,omitempty"`
	Filter    string        `json:"filter,omitempty"`
}

// Document is the serialized module: the JSON-shaped contract with the
// downstream compiler described in spec.md §6.
type Document struct {
	Module    string      `json:"module"`
	TypeTable []TypeEntry `json:"type_table"`
	Defs      []DefEntry  `json:"defs"`
}
