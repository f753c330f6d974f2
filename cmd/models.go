// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/WenchenLie/MyOpenSees/mdl/uniax"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available models with example parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, name := range uniax.Names() {
			mdl, err := uniax.New(name)
			if err != nil {
				return err
			}
			_, wrapper := mdl.(uniax.Wrapper)
			fmt.Fprintf(w, "%s (%s)", name, mdl.Name())
			if wrapper {
				fmt.Fprintf(w, " requires \"inner\"")
			}
			fmt.Fprintln(w)
			for _, p := range mdl.GetPrms() {
				fmt.Fprintf(w, "  {\"n\": %q, \"v\": %g}\n", p.N, p.V)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
