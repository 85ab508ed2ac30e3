// Copyright (c) Contributors to the Apptainer project, established as
//   Apptainer a Series of LF Projects LLC.
//   For website terms of use, trademark policy, privacy policy and other
//   project policies see https://lfprojects.org/policies
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

/*
Package buildnum derives a monotonic numeric build version from a version control descriptor.

A descriptor has the form produced by "git describe --dirty=+":

	major[.minor[.patch]][-commits[-hash]][+]

Each numeric field is clamped to 99 and packed, most significant first, into base-100 digit
pairs together with a build counter:

	((((major*100+minor)*100+patch)*100+commits)*100+build)

The build counter is persisted through a Store. It is reset to zero whenever the descriptor is
clean, and incremented on every computation against a dirty descriptor.

Malformed input never fails: absent or non-numeric components, and unreadable counter state,
all contribute zero.
*/
package buildnum
