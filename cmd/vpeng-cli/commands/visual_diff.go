// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"github.com/alaw989/vp-eng-nuxt-sub002/visual"
	"github.com/spf13/cobra"
)

func NewVisualDiffCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visual-diff <baselineDir> <currentDir>",
		Short: "Compare two screenshot runs",
		Long: `Compare every screenshot of the baseline with the screenshot of the same name
in the current run. Fails if any shot differs by more than --threshold (share of
pixels) or is missing.`,
		Example: `  vpeng-cli visual-diff ./shots/baseline ./shots/current --threshold 0.02 --diff-dir ./shots/diff`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, err := cmd.Flags().GetFloat64("threshold")
			if err != nil {
				return err
			}
			diffDir, err := cmd.Flags().GetString("diff-dir")
			if err != nil {
				return err
			}

			diffs, err := visual.Compare(args[0], args[1], diffDir, threshold)
			if err != nil {
				return err
			}
			visual.RenderDiffs(cmd.OutOrStdout(), diffs)
			if visual.Failed(diffs) {
				return errFailedCheck
			}
			return nil
		},
	}

	cmd.Flags().Float64("threshold", 0.01, "Maximum share of differing pixels per screenshot")
	cmd.Flags().String("diff-dir", "", "Write a mask of the differing pixels for changed shots")
	return cmd
}
