// Copyright (c) Contributors to the Apptainer project, established as
//   Apptainer a Series of LF Projects LLC.
//   For website terms of use, trademark policy, privacy policy and other
//   project policies see https://lfprojects.org/policies
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package buildtool

import (
	"github.com/spf13/cobra"
)

// getDescribe returns a command that displays the descriptor of a git repository.
func (c *command) getDescribe() *cobra.Command {
	var repo string

	cmd := &cobra.Command{
		Use:     "describe",
		Short:   "Display repository descriptor",
		Long:    "Display the descriptor of a git repository, in the form of \"git describe --dirty=+\".",
		Example: c.opts.rootPath + " describe --repo src/",
		Args:    cobra.NoArgs,
		PreRunE: c.initApp,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Describe(repo)
		},
	}
	addRepoFlags(cmd.Flags(), &repo)

	return cmd
}
