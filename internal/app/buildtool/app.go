// Copyright (c) Contributors to the Apptainer project, established as
//   Apptainer a Series of LF Projects LLC.
//   For website terms of use, trademark policy, privacy policy and other
//   project policies see https://lfprojects.org/policies
// Copyright (c) 2021, Sylabs Inc. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package buildtool

import (
	"io"
	"os"
)

// appOpts contains configured options.
type appOpts struct {
	out      io.Writer
	describe Describer
}

// AppOpt are used to configure optional behavior.
type AppOpt func(*appOpts) error

// App holds state and configured options.
type App struct {
	opts appOpts
}

// OptAppOutput specifies that output should be written to w.
func OptAppOutput(w io.Writer) AppOpt {
	return func(o *appOpts) error {
		o.out = w
		return nil
	}
}

// OptAppDescriber specifies that descriptors should be obtained using d.
func OptAppDescriber(d Describer) AppOpt {
	return func(o *appOpts) error {
		o.describe = d
		return nil
	}
}

// New creates a new App configured with opts.
func New(opts ...AppOpt) (*App, error) {
	a := App{
		opts: appOpts{
			out:      os.Stdout,
			describe: GitDescriber,
		},
	}

	for _, opt := range opts {
		if err := opt(&a.opts); err != nil {
			return nil, err
		}
	}

	return &a, nil
}
