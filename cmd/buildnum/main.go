// Copyright (c) Contributors to the Apptainer project, established as
//   Apptainer a Series of LF Projects LLC.
//   For website terms of use, trademark policy, privacy policy and other
//   project policies see https://lfprojects.org/policies
// Copyright (c) 2018-2021, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/apptainer/buildnum/pkg/buildtool"
	"github.com/spf13/cobra"
)

var (
	version = "unknown"
	number  = ""
	date    = ""
	builtBy = ""
	commit  = ""
	state   = ""
)

func writeVersion(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "Version:\t%v\n", version)

	if number != "" {
		fmt.Fprintf(tw, "Build:\t%v\n", number)
	}

	if builtBy != "" {
		fmt.Fprintf(tw, "By:\t%v\n", builtBy)
	}

	if commit != "" {
		if state == "" {
			fmt.Fprintf(tw, "Commit:\t%v\n", commit)
		} else {
			fmt.Fprintf(tw, "Commit:\t%v (%v)\n", commit, state)
		}
	}

	if date != "" {
		fmt.Fprintf(tw, "Date:\t%v\n", date)
	}

	fmt.Fprintf(tw, "Runtime:\t%v (%v/%v)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	return nil
}

func getVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long: `Display binary version and build info.

The version is the semantic version derived from the nearest release tag of the
buildnum repository. When the binary was built with mage, Build holds the numeric
build version buildnum computed for itself from the nearest annotated tag and its
own build counter. By and Commit identify the builder and the source commit (marked
"dirty" if tracked files were modified), Date is the commit time, and Runtime is
the Go toolchain and platform the binary was compiled for.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeVersion(cmd.OutOrStdout())
		},
		DisableFlagsInUseLine: true,
	}
}

func main() {
	root := cobra.Command{
		Use:   "buildnum",
		Short: "buildnum is a program that computes monotonic numeric build versions",
		Long: `A set of commands are provided to compute a numeric build version from the
descriptor of a git repository, maintaining a build counter across builds of a
modified working tree.

A descriptor has the "git describe --dirty=+" form MAJOR.MINOR.PATCH-COMMITS-HASH+.
The version, commit count and build counter are packed two decimal digits each,
clamped to 99, into a single integer such as 102030401 for "1.2.3-4-gdeadbee+"
with a counter of 1. The counter is stored in a one-line file, reset to zero by
builds of a clean tree and incremented by builds of a modified one.`,
	}

	root.AddCommand(getVersion())

	if err := buildtool.AddCommands(&root); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
