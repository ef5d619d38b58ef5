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

import "github.com/thorin-ir/go-thorin/pkg/module"

// ImportedDefs maps an internal link name to the stub continuation
// handle that stands in for it after import (spec.md §4.6 step 2).
type ImportedDefs map[string]*Continuation

// ReconstructImports scans a deserialized definition table for entries
// bearing an internal linkage tag and allocates a callable stub for
// each, keyed by that internal name. Only continuation defs are
// imported as callable handles this way — a known limitation carried
// over from spec.md §4.6, §9.
func ReconstructImports(entries []module.DefEntry) ImportedDefs {
	imports := make(ImportedDefs)

	for _, e := range entries {
		if e.Kind == "continuation" && e.Internal != "" {
			imports[e.Internal] = ReconstructContinuationStub(e.Name)
		}
	}

	return imports
}
