// Copyright 2025 go-ftoi Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// ftoigen generates the public conversion wrappers of the ftoi package.
// The twenty entry points differ only in their type pair, so they are
// stamped out from one table instead of maintained by hand.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		out string
		pkg string
	)
	cmd := &cobra.Command{
		Use:   "ftoigen",
		Short: "Generate the public float-to-integer conversion wrappers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := Generate(pkg)
			if err != nil {
				return err
			}
			return os.WriteFile(out, src, 0o644)
		},
	}
	cmd.Flags().StringVar(&out, "out", "convert.go", "path of the generated file")
	cmd.Flags().StringVar(&pkg, "pkg", "ftoi", "package name for the generated file")
	return cmd
}
