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
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacky860226/lity/pkg/rewrite"
)

// catalog is built once, at package initialisation, and shared by every
// command.
var catalog = rewrite.BuildCatalog()

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the rule catalog's left-hand-side patterns in match order",
	Run: func(cmd *cobra.Command, args []string) {
		for i, lhs := range catalog.Lisp() {
			fmt.Printf("%4d  %s\n", i, lhs)
		}
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
