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

	"github.com/apptainer/buildnum/internal/pkg/git"
)

// Describer returns the descriptor of the repository at path.
type Describer func(path string) (string, error)

// GitDescriber obtains a descriptor by inspecting the repository at path directly.
func GitDescriber(path string) (string, error) {
	d, err := git.Describe(path)
	if err != nil {
		return "", err
	}
	return d.Descriptor()
}

// CommandDescriber obtains a descriptor by running the git executable.
func CommandDescriber(path string) (string, error) {
	return git.DescribeCommand(path)
}

// Descriptor returns the descriptor of the repository at path.
func (a *App) Descriptor(path string) (string, error) {
	s, err := a.opts.describe(path)
	if err != nil {
		return "", fmt.Errorf("failed to describe %v: %w", path, err)
	}
	return s, nil
}

// Describe writes the descriptor of the repository at path.
func (a *App) Describe(path string) error {
	s, err := a.Descriptor(path)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.opts.out, s)
	return err
}
