// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"time"

	"github.com/alaw989/vp-eng-nuxt-sub002/linkcheck"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

func NewCheckLinksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-links <baseUrl>",
		Short: "Crawl a site and report broken links",
		Long: `Crawl all pages on the host of <baseUrl> and validate every link, image,
script and stylesheet found. Transient failures (network errors, 429 and 5xx) are
retried. Fails if any link is broken.`,
		Example: `  vpeng-cli check-links http://localhost:3000 --max-pages 500 --concurrency 16`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := linkcheck.Options{}
			opts.MaxPages, _ = cmd.Flags().GetInt("max-pages")
			opts.Concurrency, _ = cmd.Flags().GetInt("concurrency")
			opts.Retries, _ = cmd.Flags().GetInt("retries")
			opts.Timeout, _ = cmd.Flags().GetDuration("timeout")
			opts.SkipExternal, _ = cmd.Flags().GetBool("skip-external")

			s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
			s.Suffix = " Crawling " + args[0]
			s.Start()
			report, err := linkcheck.NewChecker(nil, opts).Check(cmd.Context(), args[0])
			s.Stop()
			if err != nil {
				return err
			}
			linkcheck.Render(cmd.OutOrStdout(), report)
			if len(report.Broken()) > 0 {
				return errFailedCheck
			}
			return nil
		},
	}

	cmd.Flags().Int("max-pages", 200, "Maximum number of pages to crawl")
	cmd.Flags().Int("concurrency", 8, "Number of parallel requests")
	cmd.Flags().Int("retries", 2, "Retries for transient failures")
	cmd.Flags().Duration("timeout", 10*time.Second, "Timeout per request")
	cmd.Flags().Bool("skip-external", false, "Only validate links on the crawled host")
	return cmd
}
