// Copyright (c) Contributors to the Apptainer project, established as
//   Apptainer a Series of LF Projects LLC.
//   For website terms of use, trademark policy, privacy policy and other
//   project policies see https://lfprojects.org/policies
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package buildtool

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/apptainer/buildnum/pkg/buildnum"
)

// Counter writes the build counter held by s. If none is held, zero is written.
func (a *App) Counter(s buildnum.Store) error {
	n, _ := s.Load()

	_, err := fmt.Fprintln(a.opts.out, n)
	return err
}

var errNegativeVersion = errors.New("numeric version must not be negative")

// Decode writes the fields packed into the numeric version n.
func (a *App) Decode(n int64) error {
	if n < 0 {
		return fmt.Errorf("%w: %v", errNegativeVersion, n)
	}

	f := buildnum.Unpack(n)

	tw := tabwriter.NewWriter(a.opts.out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Major:\t%v\n", f.Major)
	fmt.Fprintf(tw, "Minor:\t%v\n", f.Minor)
	fmt.Fprintf(tw, "Patch:\t%v\n", f.Patch)
	fmt.Fprintf(tw, "Commits:\t%v\n", f.Commits)
	fmt.Fprintf(tw, "Build:\t%v\n", f.Build)
	fmt.Fprintf(tw, "Semver:\t%v\n", f.Semver())

	return tw.Flush()
}
