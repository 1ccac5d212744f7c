// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alaw989/vp-eng-nuxt-sub002/config"
	"github.com/alaw989/vp-eng-nuxt-sub002/shared"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	defaultConfigFilename = ".vpeng"
)

// errFailedCheck signals a finished run whose result should fail the process, e.g.
// broken links. The report has been printed already.
var errFailedCheck = errors.New("check failed")

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		SilenceUsage:      true,
		Use:               "vpeng-cli",
		Short:             "Migration tooling for the VP Associates site",
		Version:           config.Version,
		DisableAutoGenTag: true,
		Long: `Migration tooling for the VP Associates site

vpeng-cli bundles the helpers used while moving the site to the new stack: image
optimization, screenshot capture and visual regression checks, link checking and
SEO metadata comparison. Configuration can be provided via a ./.vpeng config file
or environment variables (prefix VPENG_).`,
		Example: `  # Shrink the migrated uploads
  vpeng-cli optimize-images ./uploads --out ./public/images --max-width 1920

  # Compare two screenshot runs
  vpeng-cli visual-diff ./shots/baseline ./shots/current --threshold 0.01

  # Crawl the preview deployment for broken links
  vpeng-cli check-links https://preview.vp-associates.com`,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := cmd.Flags().GetString("logLevel")
			if err != nil {
				return err
			}
			shared.InitLogger(shared.ParseLogLevel(level))

			return initializeConfig(cmd)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vpeng-cli\n")
			fmt.Fprintf(out, "Version:    %s\n", config.Version)
			fmt.Fprintf(out, "Commit:     %s\n", config.Commit)
			fmt.Fprintf(out, "Built:      %s\n", config.BuildDate)
		},
	}

	rootCmd.AddCommand(
		versionCmd,
		NewSlugCommand(),
		NewTransitionCommand(),
		NewOptimizeImagesCommand(),
		NewScreenshotCommand(),
		NewVisualDiffCommand(),
		NewCheckLinksCommand(),
		NewSEOCompareCommand(),
	)

	rootCmd.PersistentFlags().StringP("logLevel", "l", "info", "Set the log level. Options: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.vpeng.yaml)")

	return rootCmd
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := NewRootCommand().ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func initializeConfig(cmd *cobra.Command) error {
	v := viper.New()
	if cfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(defaultConfigFilename)
	}

	v.AddConfigPath(".")

	// Attempt to read the config file, gracefully ignoring errors
	// caused by a config file not being found. Return an error
	// if we cannot parse the config file.
	if err := v.ReadInConfig(); err != nil {
		// It's okay if there isn't a config file
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		} else {
			slog.Debug("no config file found")
		}
	}

	v.SetEnvPrefix("VPENG")
	// Environment variables can't have dashes in them, so bind them to their equivalent
	// keys with underscores, e.g. --max-width to VPENG_MAX_WIDTH
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	bindFlags(cmd, v)
	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		configName := f.Name

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(configName) {
			val := v.Get(configName)
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				if err := sv.Replace(v.GetStringSlice(configName)); err != nil {
					slog.Error("could not apply config value", "flag", f.Name, "err", err)
				}
			} else {
				cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)) // nolint: errcheck
			}
		}

		if err := v.BindPFlag(configName, f); err != nil {
			slog.Error("could not bind flag to viper", "err", err)
		}
	})
}
