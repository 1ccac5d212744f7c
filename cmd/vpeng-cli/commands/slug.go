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
	"fmt"

	"github.com/gosimple/slug"
	"github.com/spf13/cobra"
)

func NewSlugCommand() *cobra.Command {
	slugCmd := &cobra.Command{
		Use:               "slug <text>",
		Short:             "Generate a URL-friendly slug",
		DisableAutoGenTag: true,
		Long: `Create a URL-friendly slug from the provided text.

Uses the same rules as the content api when an upstream item has no slug. The slug
is printed to stdout.`,
		Example: `  # Generate a slug from a project title
  vpeng-cli slug "Tampa Marina Complex"`,
		Args: cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// just use this command to disable the default root persistent pre-run
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), slug.Make(args[0]))
			return nil
		},
	}

	return slugCmd
}
