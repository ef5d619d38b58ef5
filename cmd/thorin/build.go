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
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thorin-ir/go-thorin/pkg/toolchain"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] module.thorin.json",
	Short: "drive the external optimizer/linker pipeline over a serialized module document.",
	Long: "Read a serialized Thorin module document and hand it to the configured optimizer " +
		"and linker, producing a shared object.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		jsonPath := args[0]
		doc := readDocument(jsonPath)

		pipeline := &toolchain.ExternalPipeline{
			Optimizer: GetString(cmd, "optimizer"),
			Linker:    GetString(cmd, "linker"),
		}

		if err := pipeline.Invoke(doc.Module, doc, jsonPath); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		fmt.Printf("wrote %s.so\n", doc.Module)
	},
}

func init() {
	buildCmd.Flags().String("optimizer", "thorin-opt", "optimizer/codegen executable to invoke")
	buildCmd.Flags().String("linker", "cc", "linker executable to invoke")
}
