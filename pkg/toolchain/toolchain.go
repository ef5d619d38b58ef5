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

// Package toolchain models the external optimizer/codegen pipeline that
// seal() hands a serialized module document to.  The pipeline itself is
// out of scope for this library (spec.md §1); this package only defines
// the strategy interface and a couple of concrete implementations so
// callers can inject their own, or a stub that just records the document
// for testing (spec.md §9).
package toolchain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"

	"github.com/thorin-ir/go-thorin/pkg/module"
)

// Strategy turns a serialized module document into a build artifact (or
// simply records it).  Implementations must report non-zero exits from any
// external process verbatim (spec.md §7).
type Strategy interface {
	// Invoke hands the serialized document, identified by moduleName, to
	// whatever backs this strategy.  jsonPath is where the caller has (or
	// will) persist the document on disk, for strategies that shell out to
	// tools expecting a file path.
	Invoke(moduleName string, doc module.Document, jsonPath string) error
}

// Recording is a Strategy that just records every document handed to it.
// Intended for tests, matching spec.md §9's guidance that seal() should be
// modeled as a small strategy interface tests can stub out.
type Recording struct {
	Invocations []Recorded
}

// Recorded captures one call to Recording.Invoke.
type Recorded struct {
	ModuleName string
	Document   module.Document
	JSONPath   string
}

// Invoke implements Strategy.
func (r *Recording) Invoke(moduleName string, doc module.Document, jsonPath string) error {
	r.Invocations = append(r.Invocations, Recorded{moduleName, doc, jsonPath})
	return nil
}

// ExternalPipeline shells out to a two-stage external pipeline: an
// optimizer/codegen tool that emits intermediate text from the JSON
// document, followed by a linker that produces a shared object.  This
// mirrors original_source/thorin.py's compile_module, which runs
// "anyopt --emit-llvm" followed by "clang -shared".
type ExternalPipeline struct {
	// Optimizer is the executable invoked as:
	//   Optimizer OptimizerArgs... -o <module> <jsonPath>
	Optimizer     string
	OptimizerArgs []string
	// Linker is the executable invoked as:
	//   Linker LinkerArgs... <module>.ll -o <module>.so
	Linker     string
	LinkerArgs []string
}

// Invoke implements Strategy by writing the document to jsonPath and then
// running the two-stage pipeline.  Non-zero exits are reported verbatim,
// including combined stdout/stderr, and the JSON/IR/shared-object files are
// left on disk for diagnosis regardless of KEEP_BUILD_FILES (spec.md §7).
func (p *ExternalPipeline) Invoke(moduleName string, doc module.Document, jsonPath string) error {
	bytes_, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding module %q: %w", moduleName, err)
	}

	if err := os.WriteFile(jsonPath, bytes_, 0o644); err != nil {
		return fmt.Errorf("writing module %q: %w", moduleName, err)
	}

	optArgs := append(append([]string{}, p.OptimizerArgs...), "-o", moduleName, jsonPath)
	if err := run(p.Optimizer, optArgs...); err != nil {
		return fmt.Errorf("optimizer failed for module %q: %w", moduleName, err)
	}

	linkArgs := append(append([]string{}, p.LinkerArgs...), moduleName+".ll", "-o", moduleName+".so")
	if err := run(p.Linker, linkArgs...); err != nil {
		return fmt.Errorf("linker failed for module %q: %w", moduleName, err)
	}

	return nil
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)

	var combined bytes.Buffer

	cmd.Stdout = &combined
	cmd.Stderr = &combined

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w\n%s", name, err, combined.String())
	}

	return nil
}

// RemoveArtifacts deletes the trio of build artifacts for moduleName
// (serialized document, intermediate IR, shared object), matching
// original_source/thorin.py's __del__.  Missing files are ignored.
func RemoveArtifacts(jsonPath, moduleName string) {
	_ = os.Remove(jsonPath)
	_ = os.Remove(moduleName + ".ll")
	_ = os.Remove(moduleName + ".so")
}
