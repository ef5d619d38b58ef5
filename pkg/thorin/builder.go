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

// Package thorin is the top-level facade gluing the type/def builders,
// the module lifecycle, and import resolution into the single entry
// point a host program uses: open a module, add definitions to it
// (directly or via pkg/flow combinators), seal it (invoking the
// injected toolchain strategy), and optionally import a previously-
// serialized module for cross-module linking (spec.md §2, §4.5, §4.6).
package thorin

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/thorin-ir/go-thorin/pkg/ir"
	"github.com/thorin-ir/go-thorin/pkg/module"
	"github.com/thorin-ir/go-thorin/pkg/toolchain"
	"github.com/thorin-ir/go-thorin/pkg/types"
)

// Builder is a module under construction plus the external collaborators
// it was opened with: the toolchain strategy invoked at Seal, and the
// frontend resolver invoked by Include.
type Builder struct {
	ctx *module.Context

	toolchain toolchain.Strategy
	frontend  toolchain.FrontendResolver

	jsonPath string

	imported     ir.ImportedDefs
	importedType types.Registry

	log *logrus.Entry
}

// Option configures a Builder at Open time.
type Option func(*Builder)

// WithToolchain overrides the default Strategy (a no-op Recording)
// invoked by Seal.
func WithToolchain(s toolchain.Strategy) Option {
	return func(b *Builder) { b.toolchain = s }
}

// WithFrontend overrides the default FrontendResolver (IdentityFrontend)
// invoked by Include.
func WithFrontend(f toolchain.FrontendResolver) Option {
	return func(b *Builder) { b.frontend = f }
}

// WithJSONPath sets the path Seal writes the serialized document to.
// Defaults to "<name>.thorin.json".
func WithJSONPath(path string) Option {
	return func(b *Builder) { b.jsonPath = path }
}

// WithLogger overrides the default logrus logger used for build
// diagnostics.
func WithLogger(log *logrus.Entry) Option {
	return func(b *Builder) { b.log = log }
}

// Open initializes a new, empty module under construction (spec.md
// §4.5).
func Open(name string, opts ...Option) *Builder {
	b := &Builder{
		ctx:       module.NewContext(name),
		toolchain: &toolchain.Recording{},
		frontend:  toolchain.IdentityFrontend{},
		jsonPath:  name + ".thorin.json",
		imported:  make(ir.ImportedDefs),
		log:       logrus.WithField("module", name),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Context exposes the underlying module.Context, for materializing
// types/defs (built directly or via pkg/flow combinators) through their
// Name methods, which take a *module.Context rather than a *Builder.
func (b *Builder) Context() *module.Context {
	return b.ctx
}

// Add materializes def against this module, forwarding to its Name
// method; fatal if the module is sealed (spec.md §4.5).
func (b *Builder) Add(def ir.Def) string {
	return def.Name(b.ctx)
}

// Serialize returns the JSON-shaped document for the module as it
// stands, without transitioning its lifecycle state (spec.md §4.5).
func (b *Builder) Serialize() module.Document {
	return b.ctx.Serialize()
}

// Seal materializes any defs registered via ir.Open that were never
// otherwise referenced, transitions the module to Sealed, and then writes
// the serialized document to disk and invokes the configured toolchain
// strategy. Subsequent Add is fatal (spec.md §4.5, §7).
func (b *Builder) Seal() error {
	b.ctx.Seal()

	doc := b.ctx.Serialize()

	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding module %q: %w", b.ctx.Name(), err)
	}

	if err := os.WriteFile(b.jsonPath, encoded, 0o644); err != nil {
		return fmt.Errorf("writing module %q: %w", b.ctx.Name(), err)
	}

	b.log.WithField("path", b.jsonPath).Debug("serialized module document")

	if err := b.toolchain.Invoke(b.ctx.Name(), doc, b.jsonPath); err != nil {
		b.log.WithError(err).Error("toolchain invocation failed")
		return err
	}

	return nil
}

// Include resolves sourcePath to a serialized module document (via the
// configured FrontendResolver), reads and parses it, and reconstructs
// live type/definition handles referable by LookupImported (spec.md
// §4.5, §4.6).
func (b *Builder) Include(sourcePath string) error {
	documentPath, err := b.frontend.Resolve(sourcePath)
	if err != nil {
		return fmt.Errorf("resolving include %q: %w", sourcePath, err)
	}

	raw, err := os.ReadFile(documentPath)
	if err != nil {
		return fmt.Errorf("reading included module %q: %w", documentPath, err)
	}

	var doc module.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing included module %q: %w", documentPath, err)
	}

	typeReg := types.Reconstruct(doc.TypeTable)
	defImports := ir.ReconstructImports(doc.Defs)

	if b.importedType == nil {
		b.importedType = typeReg
	} else {
		for name, t := range typeReg {
			b.importedType[name] = t
		}
	}

	for name, stub := range defImports {
		b.imported[name] = stub
	}

	b.log.WithFields(logrus.Fields{
		"source": sourcePath, "types": len(typeReg), "defs": len(defImports),
	}).Debug("included module")

	return nil
}

// LookupImported returns the stub handle for a previously-included
// module's internal-linkage definition name. The second return value is
// false if name was never imported.
func (b *Builder) LookupImported(name string) (ir.Def, bool) {
	c, ok := b.imported[name]
	return c, ok
}

// LookupImportedType returns the reconstructed type handle for a
// previously-included module's type-table name.
func (b *Builder) LookupImportedType(name string) (types.Type, bool) {
	t, ok := b.importedType[name]
	return t, ok
}

// Close releases this module's handles and, unless KEEP_BUILD_FILES
// requests retention, deletes its build artifacts — the only resource
// with external lifetime (spec.md §5).
func (b *Builder) Close() {
	if !module.KeepBuildFiles() {
		toolchain.RemoveArtifacts(b.jsonPath, b.ctx.Name())
	}

	b.ctx.Release()
}
