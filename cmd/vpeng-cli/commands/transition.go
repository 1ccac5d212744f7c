// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/alaw989/vp-eng-nuxt-sub002/transition"
	"github.com/spf13/cobra"
)

func NewTransitionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transition <from> <to>",
		Short: "Print the page transition used between two paths",
		Example: `  vpeng-cli transition /projects /projects/tampa-marina-complex
  vpeng-cli transition /projects /projects/tampa-marina-complex --reduced-motion`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reducedMotion, err := cmd.Flags().GetBool("reduced-motion")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), transition.Select(args[0], args[1], reducedMotion))
			return nil
		},
	}
	cmd.Flags().Bool("reduced-motion", false, "Select as if the user prefers reduced motion")
	return cmd
}
