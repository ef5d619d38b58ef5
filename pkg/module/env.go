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

import "os"

// KeepBuildFilesEnv is the environment variable controlling whether
// intermediate build artifacts (the serialized document, intermediate IR
// text, and linked shared object) survive past module destruction.
const KeepBuildFilesEnv = "KEEP_BUILD_FILES"

// KeepBuildFiles reports whether build artifacts should be retained,
// following spec.md §5: unset or "0" means delete.
func KeepBuildFiles() bool {
	v, ok := os.LookupEnv(KeepBuildFilesEnv)
	return ok && v != "0"
}
