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
	"io"

	"github.com/apptainer/buildnum/pkg/buildnum"
)

// Format selects how a build version is written.
type Format string

const (
	FormatFull   Format = "full"   // numeric version and descriptor, "102030401-1.2.3-4-gdeadbee+"
	FormatNumber Format = "number" // numeric version only, "102030401"
	FormatSemver Format = "semver" // semantic version, "1.2.3+4.1"
)

var errUnknownFormat = errors.New("unknown format")

// writeFunc returns a function that writes a version in format f.
func (f Format) writeFunc() (func(io.Writer, buildnum.Version) error, error) {
	switch f {
	case FormatFull, "":
		return func(w io.Writer, v buildnum.Version) error {
			_, err := fmt.Fprintln(w, v)
			return err
		}, nil

	case FormatNumber:
		return func(w io.Writer, v buildnum.Version) error {
			_, err := fmt.Fprintln(w, v.Number)
			return err
		}, nil

	case FormatSemver:
		return func(w io.Writer, v buildnum.Version) error {
			_, err := fmt.Fprintln(w, v.Semver())
			return err
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", errUnknownFormat, string(f))
}

// StampOptions contains the options when computing a build version.
type StampOptions struct {
	Format Format // output format
	DryRun bool   // if true, the build counter is not updated
}

// Stamp computes the build version of descr using the build counter held by s, and writes it
// according to opts.
func (a *App) Stamp(descr string, s buildnum.Store, opts StampOptions) error {
	write, err := opts.Format.writeFunc()
	if err != nil {
		return err
	}

	d, err := buildnum.ParseDescriptor(descr)
	if err != nil {
		return err
	}

	var v buildnum.Version
	if opts.DryRun {
		v = buildnum.Peek(d, s)
	} else if v, err = buildnum.Compute(d, s); err != nil {
		return err
	}

	return write(a.opts.out, v)
}

// StampRepository computes the build version of the repository at path.
func (a *App) StampRepository(path string, s buildnum.Store, opts StampOptions) error {
	descr, err := a.Descriptor(path)
	if err != nil {
		return err
	}

	return a.Stamp(descr, s, opts)
}
