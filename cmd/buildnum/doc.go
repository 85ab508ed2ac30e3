// Copyright (c) Contributors to the Apptainer project, established as
//   Apptainer a Series of LF Projects LLC.
//   For website terms of use, trademark policy, privacy policy and other
//   project policies see https://lfprojects.org/policies
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

/*
Buildnum is a program that computes monotonic numeric build versions.

The version is derived from the descriptor of a git repository ("git describe --dirty=+"
output), and a build counter persisted in a file that is incremented for each build of a
modified working tree.
*/
package main
