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
package toolchain

import (
	"fmt"
	"os"
	"strings"
)

// FrontendResolver turns a source path into the path of a serialized
// module document ready to be read by Builder.Include.  The default
// resolver (IdentityFrontend) assumes the path already names a document;
// a caller linking against a surface-syntax front-end compiler can supply
// one that shells out first, mirroring original_source/thorin.py's
// special-casing of ".art" sources.
type FrontendResolver interface {
	Resolve(sourcePath string) (documentPath string, err error)
}

// IdentityFrontend treats sourcePath as already being a serialized module
// document.
type IdentityFrontend struct{}

// Resolve implements FrontendResolver.
func (IdentityFrontend) Resolve(sourcePath string) (string, error) {
	return sourcePath, nil
}

// ExternalFrontend shells out to a surface-syntax compiler for any source
// path matching Extension, producing a sibling ".thorin.json" file.
// Sources with any other extension are passed through unchanged.
type ExternalFrontend struct {
	// Extension is matched case-sensitively, including the leading dot
	// (e.g. ".art").
	Extension string
	// Compiler is invoked as: Compiler --emit-json -o <stem> <sourcePath>
	Compiler string
}

// Resolve implements FrontendResolver.
func (f ExternalFrontend) Resolve(sourcePath string) (string, error) {
	if !strings.HasSuffix(sourcePath, f.Extension) {
		return sourcePath, nil
	}

	stem := strings.TrimSuffix(sourcePath, f.Extension)
	if err := run(f.Compiler, "--emit-json", "-o", stem, sourcePath); err != nil {
		return "", fmt.Errorf("frontend compilation of %q failed: %w", sourcePath, err)
	}

	documentPath := stem + ".thorin.json"
	if _, err := os.Stat(documentPath); err != nil {
		return "", fmt.Errorf("frontend did not produce %q: %w", documentPath, err)
	}

	return documentPath, nil
}
