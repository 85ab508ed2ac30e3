// Copyright (c) Contributors to the Apptainer project, established as
//   Apptainer a Series of LF Projects LLC.
//   For website terms of use, trademark policy, privacy policy and other
//   project policies see https://lfprojects.org/policies
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package buildtool

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// getDecode returns a command that displays the fields of a numeric build version.
func (c *command) getDecode() *cobra.Command {
	return &cobra.Command{
		Use:     "decode <version>",
		Short:   "Display build version fields",
		Long:    "Display the fields packed into a numeric build version.",
		Example: c.opts.rootPath + " decode 102030401",
		Args:    cobra.ExactArgs(1),
		PreRunE: c.initApp,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("while converting version: %w", err)
			}

			return c.app.Decode(n)
		},
		DisableFlagsInUseLine: true,
	}
}
