// Copyright (c) Contributors to the Apptainer project, established as
//   Apptainer a Series of LF Projects LLC.
//   For website terms of use, trademark policy, privacy policy and other
//   project policies see https://lfprojects.org/policies
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package buildnum

import (
	"fmt"
	"math"
	"strconv"

	"github.com/blang/semver/v4"
)

// Fields are the logical fields packed into a numeric version.
type Fields struct {
	Major   int
	Minor   int
	Patch   int
	Commits int
	Build   int
}

// Pack returns the numeric version of f. Each field is clamped to 99 before packing.
func (f Fields) Pack() int64 {
	var v int64
	for _, i := range []int{f.Major, f.Minor, f.Patch, f.Commits, f.Build} {
		v = v*100 + int64(clamp(i))
	}
	return v
}

// Semver returns f as a semantic version, with Commits and Build as build metadata.
func (f Fields) Semver() semver.Version {
	return semver.Version{
		Major: uint64(f.Major),
		Minor: uint64(f.Minor),
		Patch: uint64(f.Patch),
		Build: []string{strconv.Itoa(f.Commits), strconv.Itoa(f.Build)},
	}
}

// Unpack splits the non-negative numeric version n into its fields. Digits beyond the packed
// range are attributed to Major.
func Unpack(n int64) Fields {
	var f Fields
	for _, p := range []*int{&f.Build, &f.Commits, &f.Patch, &f.Minor} {
		*p = int(n % 100)
		n /= 100
	}
	f.Major = int(n)
	return f
}

// Version is the result of a build version computation.
type Version struct {
	// Descriptor the version was computed from.
	Descriptor Descriptor

	// Counter is the build counter, as stored. It is zero for clean descriptors, and is not
	// clamped.
	Counter int

	// Number is the packed numeric version.
	Number int64
}

// String returns the numeric version followed by the original descriptor, separated by a
// dash.
func (v Version) String() string {
	return strconv.FormatInt(v.Number, 10) + "-" + v.Descriptor.String()
}

// Fields returns the fields that make up v.Number.
func (v Version) Fields() Fields {
	return Fields{
		Major:   v.Descriptor.Major(),
		Minor:   v.Descriptor.Minor(),
		Patch:   v.Descriptor.Patch(),
		Commits: v.Descriptor.Commits(),
		Build:   clamp(v.Counter),
	}
}

// Semver returns v as a semantic version. The commit count and build counter are carried as
// build metadata, for example "1.2.3+4.1".
func (v Version) Semver() semver.Version {
	return v.Fields().Semver()
}

// Peek returns the version Compute would return for d, without updating s.
func Peek(d Descriptor, s Store) Version {
	v := Version{
		Descriptor: d,
		Number:     d.Base(),
	}

	if !d.IsDirty() {
		return v
	}

	n, ok := s.Load()
	if !ok {
		n = 0
	}

	// The counter saturates at math.MaxInt.
	if n < math.MaxInt {
		n++
	}

	v.Counter = n
	v.Number += int64(clamp(v.Counter))

	return v
}

// Compute returns the build version of d. If d is dirty, the counter held by s is incremented.
// Otherwise, it is reset to zero.
func Compute(d Descriptor, s Store) (Version, error) {
	v := Peek(d, s)

	if err := s.Save(v.Counter); err != nil {
		return Version{}, fmt.Errorf("failed to save build counter: %w", err)
	}

	return v, nil
}
