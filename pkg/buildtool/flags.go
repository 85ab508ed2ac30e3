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
	"github.com/spf13/pflag"
)

const gitBinaryFlag = "git-binary"

// addRepoFlags declares the command line flags that select the repository to describe.
func addRepoFlags(fs *pflag.FlagSet, repo *string) {
	fs.StringVar(repo, "repo", ".", "path of the git repository to describe")
	fs.Bool(gitBinaryFlag, false, `describe using the git executable ("git describe --dirty=+")`)
}

// addCounterFileFlag declares the command line flag that locates the build counter file.
func addCounterFileFlag(fs *pflag.FlagSet, path *string) {
	fs.StringVar(path, "counter-file", buildnum.DefaultCounterFile, "path of the build counter file")
}
