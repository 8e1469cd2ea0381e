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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jacky860226/lity/pkg/purity"
	"github.com/jacky860226/lity/pkg/rewrite"
	"github.com/jacky860226/lity/pkg/sexpr"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify [flags] expression",
	Short: "Simplify an expression against the rule catalog",
	Long:  `Parses expression as an s-expression (e.g. "(MOD #0 8)"), rewrites it to a fixed point, and prints the result.`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		e, err := sexpr.Parse(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		var oracle purity.Oracle
		if assumePure, _ := cmd.Flags().GetBool("assume-pure"); assumePure {
			oracle = purity.Always(true)
		}

		budgetFactor, _ := cmd.Flags().GetInt("budget")

		result := rewrite.SimplifyWithBudget(e, catalog, oracle, budgetFactor)

		fmt.Println(sexpr.Print(result))
	},
}

func init() {
	simplifyCmd.Flags().Bool("assume-pure", false, "treat every opaque leaf as pure (unsound in general, useful for exploring the catalog)")
	simplifyCmd.Flags().Int("budget", rewrite.DefaultBudgetFactor, "iteration-budget safety margin applied on top of term size x catalog size")
	rootCmd.AddCommand(simplifyCmd)
}
