// Copyright (c) Contributors to the Apptainer project, established as
//   Apptainer a Series of LF Projects LLC.
//   For website terms of use, trademark policy, privacy policy and other
//   project policies see https://lfprojects.org/policies
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package buildtool

import (
	"strings"

	"github.com/apptainer/buildnum/internal/app/buildtool"
	"github.com/apptainer/buildnum/pkg/buildnum"
	"github.com/spf13/cobra"
)

// getStampExamples returns stamp command examples based on rootPath.
func getStampExamples(rootPath string) string {
	examples := []string{
		rootPath + " stamp",
		rootPath + " stamp --repo src/ --counter-file src/buildnum",
		rootPath + " stamp --format semver 1.2.3-4-gdeadbee+",
	}
	return strings.Join(examples, "\n")
}

// getStamp returns a command that computes and persists a build version.
func (c *command) getStamp() *cobra.Command {
	var (
		repo, counterFile, format string
		dryRun                    bool
	)

	cmd := &cobra.Command{
		Use:   "stamp [descriptor]",
		Short: "Compute build version",
		Long: `Compute the numeric build version of a git repository, or of the given descriptor.

The build counter is incremented when the working tree has been modified, and reset
otherwise.`,
		Example: getStampExamples(c.opts.rootPath),
		Args:    cobra.MaximumNArgs(1),
	}

	addRepoFlags(cmd.Flags(), &repo)
	addCounterFileFlag(cmd.Flags(), &counterFile)
	cmd.Flags().StringVar(&format, "format", string(buildtool.FormatFull), `output format, one of:
  full   - numeric version and descriptor
  number - numeric version
  semver - semantic version`)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "do not update the build counter")

	cmd.PreRunE = c.initApp
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		s := buildnum.NewFileStore(counterFile)

		opts := buildtool.StampOptions{
			Format: buildtool.Format(format),
			DryRun: dryRun,
		}

		if len(args) == 1 {
			return c.app.Stamp(args[0], s, opts)
		}
		return c.app.StampRepository(repo, s, opts)
	}

	return cmd
}
