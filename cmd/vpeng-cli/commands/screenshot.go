// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"slices"
	"time"

	"github.com/alaw989/vp-eng-nuxt-sub002/visual"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

func NewScreenshotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "screenshot",
		Short: "Capture screenshots of every page at every viewport",
		Long: `Capture full page screenshots of the pages listed in the manifest with a
headless chrome. Shots are named <page>--<viewport>.png so two runs can be compared
with visual-diff.`,
		Example: `  vpeng-cli screenshot --manifest pages.yaml --out ./shots/current
  vpeng-cli screenshot --manifest pages.yaml --base-url https://preview.vp-associates.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifestPath, _ := cmd.Flags().GetString("manifest")
			baseURL, _ := cmd.Flags().GetString("base-url")
			out, _ := cmd.Flags().GetString("out")
			controlURL, _ := cmd.Flags().GetString("browser")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			m, err := visual.LoadManifest(manifestPath)
			if err != nil {
				return err
			}
			if baseURL != "" {
				m.BaseURL = baseURL
			}

			shooter, err := visual.NewRodShooter(controlURL, timeout)
			if err != nil {
				return err
			}
			defer shooter.Close() // nolint: errcheck

			s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
			s.Suffix = " Capturing screenshots"
			s.Start()
			shots, err := visual.Capture(cmd.Context(), shooter, m, out)
			s.Stop()
			visual.RenderShots(cmd.OutOrStdout(), shots)
			if err != nil {
				return err
			}
			if slices.ContainsFunc(shots, func(s visual.Shot) bool { return s.Err != nil }) {
				return errFailedCheck
			}
			return nil
		},
	}

	cmd.Flags().String("manifest", "pages.yaml", "YAML manifest listing pages and viewports")
	cmd.Flags().String("base-url", "", "Overrides the base url of the manifest")
	cmd.Flags().String("out", "shots", "Output directory")
	cmd.Flags().String("browser", "", "DevTools websocket url of a running browser, a local one is launched if empty")
	cmd.Flags().Duration("timeout", 30*time.Second, "Timeout for loading a page")
	return cmd
}
