// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"log/slog"

	"github.com/alaw989/vp-eng-nuxt-sub002/imageopt"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func NewOptimizeImagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimize-images <src>",
		Short: "Resize and re-encode images",
		Long: `Resize images wider than --max-width and re-encode all JPEG and PNG files
below <src> into --out. Images whose output is newer than the source are skipped.
With --watch the command keeps running and optimizes images as they appear.`,
		Example: `  vpeng-cli optimize-images ./uploads --out ./public/images
  vpeng-cli optimize-images ./uploads --out ./public/images --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := imageopt.Options{SrcDir: args[0]}
			var err error
			if opts.OutDir, err = cmd.Flags().GetString("out"); err != nil {
				return err
			}
			if opts.Pattern, err = cmd.Flags().GetString("pattern"); err != nil {
				return err
			}
			if opts.MaxWidth, err = cmd.Flags().GetInt("max-width"); err != nil {
				return err
			}
			if opts.Quality, err = cmd.Flags().GetInt("quality"); err != nil {
				return err
			}
			if opts.Force, err = cmd.Flags().GetBool("force"); err != nil {
				return err
			}
			watch, err := cmd.Flags().GetBool("watch")
			if err != nil {
				return err
			}

			files, err := imageopt.Discover(opts)
			if err != nil {
				return err
			}
			bar := progressbar.Default(int64(len(files)), "optimizing")
			results, err := imageopt.Run(opts, func(imageopt.Result) {
				bar.Add(1) // nolint: errcheck
			})
			if err != nil {
				return err
			}
			imageopt.Render(cmd.OutOrStdout(), results)

			if !watch {
				return nil
			}
			slog.Info("watching for new images", "dir", opts.SrcDir)
			return imageopt.Watch(cmd.Context(), opts, func(r imageopt.Result) {
				if r.Err != nil {
					slog.Error("could not optimize image", "file", r.File, "err", r.Err)
					return
				}
				slog.Info("optimized image", "file", r.File, "saved", r.Saved(), "resized", r.Resized)
			})
		},
	}

	cmd.Flags().String("out", "optimized", "Output directory")
	cmd.Flags().String("pattern", imageopt.DefaultPattern, "Glob selecting the source images")
	cmd.Flags().Int("max-width", 1920, "Images wider than this are scaled down")
	cmd.Flags().Int("quality", 80, "JPEG quality (1-100)")
	cmd.Flags().Bool("force", false, "Re-encode images even if the output is up to date")
	cmd.Flags().Bool("watch", false, "Keep running and optimize new images")
	return cmd
}
