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
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/thorin-ir/go-thorin/pkg/module"
	"github.com/thorin-ir/go-thorin/pkg/util/termio"
)

// isTerminal reports whether stdout is attached to a terminal, so table
// output piped to a file or another process doesn't carry ANSI escapes.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] module.thorin.json",
	Short: "print the type and definition tables of a serialized module document.",
	Long:  "Parse a serialized Thorin module document and print its type and definition tables as formatted tables.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		doc := readDocument(args[0])

		fmt.Printf("module %q\n\n", doc.Module)
		fmt.Println("type table:")
		printTypeTable(doc.TypeTable)
		fmt.Println()
		fmt.Println("definitions:")
		printDefTable(doc.Defs)
	},
}

func readDocument(path string) module.Document {
	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	var doc module.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return doc
}

func printTypeTable(entries []module.TypeEntry) {
	table := termio.NewFormattedTable(4, uint(len(entries))+1)
	table.SetRow(0, termio.NewText("#"), termio.NewText("kind"), termio.NewText("name"), termio.NewText("args"))

	for i, e := range entries {
		table.SetRow(uint(i)+1,
			termio.NewText(fmt.Sprintf("%d", i)),
			termio.NewColouredText(e.Kind, termio.TERM_CYAN),
			termio.NewText(e.Name),
			termio.NewText(fmt.Sprintf("%v", e.Args)),
		)
	}

	table.Print(isTerminal())
}

func printDefTable(entries []module.DefEntry) {
	table := termio.NewFormattedTable(4, uint(len(entries))+1)
	table.SetRow(0, termio.NewText("#"), termio.NewText("kind"), termio.NewText("name"), termio.NewText("detail"))

	for i, e := range entries {
		table.SetRow(uint(i)+1,
			termio.NewText(fmt.Sprintf("%d", i)),
			termio.NewColouredText(e.Kind, termio.TERM_GREEN),
			termio.NewText(e.Name),
			termio.NewText(defDetail(e)),
		)
	}

	table.Print(isTerminal())
}

func defDetail(e module.DefEntry) string {
	switch e.Kind {
	case "continuation":
		if e.App != nil {
			return fmt.Sprintf("app -> %s(%v)", e.App.Target, e.App.Args)
		}

		return fmt.Sprintf("decl fn_type=%s args=%v", e.FnType, e.ArgNames)
	case "const", "top", "bottom":
		return fmt.Sprintf("%s = %v", e.ConstType, e.Value)
	case "arithop", "mathop", "cmp":
		return fmt.Sprintf("%s %v", e.Op, e.Args)
	default:
		return fmt.Sprintf("%v", e.Args)
	}
}
