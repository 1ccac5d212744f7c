// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"net/http"
	"time"

	"github.com/alaw989/vp-eng-nuxt-sub002/seo"
	"github.com/alaw989/vp-eng-nuxt-sub002/services"
	"github.com/alaw989/vp-eng-nuxt-sub002/utils"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

func defaultSEOPaths() []string {
	return utils.Map(services.StaticSitemapEntries, func(e services.SitemapEntry) string {
		return e.Path
	})
}

func NewSEOCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seo-compare <oldBaseUrl> <newBaseUrl>",
		Short: "Compare SEO metadata of the old and the new site",
		Long: `Fetch every --path from both sites and compare title, description, canonical,
robots, og:* and h1. Host changes in canonical and og:url are ignored. Defaults to
the static pages of the sitemap.`,
		Example: `  vpeng-cli seo-compare https://vp-associates.com http://localhost:3000
  vpeng-cli seo-compare https://vp-associates.com http://localhost:3000 --path /about --path /careers`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := cmd.Flags().GetStringSlice("path")
			if err != nil {
				return err
			}
			failOnDiff, err := cmd.Flags().GetBool("fail-on-diff")
			if err != nil {
				return err
			}

			comparer := seo.NewComparer(&http.Client{Timeout: 15 * time.Second})
			s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
			s.Suffix = " Comparing metadata"
			s.Start()
			diffs, err := comparer.Compare(cmd.Context(), args[0], args[1], paths)
			s.Stop()
			if err != nil {
				return err
			}
			seo.Render(cmd.OutOrStdout(), diffs)
			if failOnDiff && len(diffs) > 0 {
				return errFailedCheck
			}
			return nil
		},
	}

	cmd.Flags().StringSlice("path", defaultSEOPaths(), "Paths to compare")
	cmd.Flags().Bool("fail-on-diff", false, "Exit non-zero if any difference is found")
	return cmd
}
