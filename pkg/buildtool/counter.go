// Copyright (c) Contributors to the Apptainer project, established as
//   Apptainer a Series of LF Projects LLC.
//   For website terms of use, trademark policy, privacy policy and other
//   project policies see https://lfprojects.org/policies
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package buildtool

import (
	"github.com/apptainer/buildnum/pkg/buildnum"
	"github.com/spf13/cobra"
)

// getCounter returns a command that displays the build counter.
func (c *command) getCounter() *cobra.Command {
	var counterFile string

	cmd := &cobra.Command{
		Use:     "counter",
		Short:   "Display build counter",
		Long:    "Display the build counter, or zero if no counter has been stored.",
		Example: c.opts.rootPath + " counter --counter-file src/buildnum",
		Args:    cobra.NoArgs,
		PreRunE: c.initApp,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Counter(buildnum.NewFileStore(counterFile))
		},
	}
	addCounterFileFlag(cmd.Flags(), &counterFile)

	return cmd
}
