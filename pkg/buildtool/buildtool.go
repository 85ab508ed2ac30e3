// Copyright (c) Contributors to the Apptainer project, established as
//   Apptainer a Series of LF Projects LLC.
//   For website terms of use, trademark policy, privacy policy and other
//   project policies see https://lfprojects.org/policies
// Copyright (c) 2021, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

// Package buildtool adds buildnum commands to a parent cobra.Command.
package buildtool

import (
	"github.com/apptainer/buildnum/internal/app/buildtool"
	"github.com/spf13/cobra"
)

// command contains options and command state.
type command struct {
	opts commandOpts
	app  *buildtool.App
}

// initApp initializes the buildtool app.
func (c *command) initApp(cmd *cobra.Command, args []string) error {
	opts := []buildtool.AppOpt{
		buildtool.OptAppOutput(cmd.OutOrStdout()),
	}

	if useGit, err := cmd.Flags().GetBool(gitBinaryFlag); err == nil && useGit {
		opts = append(opts, buildtool.OptAppDescriber(buildtool.CommandDescriber))
	}

	app, err := buildtool.New(append(opts, c.opts.appOpts...)...)
	c.app = app

	return err
}

// commandOpts contains configured options.
type commandOpts struct {
	rootPath string
	appOpts  []buildtool.AppOpt
}

// CommandOpt are used to configure optional command behavior.
type CommandOpt func(*commandOpts) error

// OptWithAppOptions specifies additional options used to configure the app. These take
// precedence over options derived from command line flags.
func OptWithAppOptions(opts ...buildtool.AppOpt) CommandOpt {
	return func(co *commandOpts) error {
		co.appOpts = append(co.appOpts, opts...)
		return nil
	}
}

// AddCommands adds buildnum commands to cmd according to opts.
//
// A set of commands are provided to compute a numeric build version from a version control
// descriptor, maintaining a build counter across builds of a modified working tree.
func AddCommands(cmd *cobra.Command, opts ...CommandOpt) error {
	c := command{
		opts: commandOpts{
			rootPath: cmd.CommandPath(),
		},
	}

	for _, opt := range opts {
		if err := opt(&c.opts); err != nil {
			return err
		}
	}

	cmd.AddCommand(
		c.getStamp(),
		c.getDescribe(),
		c.getCounter(),
		c.getDecode(),
	)

	return nil
}
