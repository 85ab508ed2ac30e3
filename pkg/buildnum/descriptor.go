// Copyright (c) Contributors to the Apptainer project, established as
//   Apptainer a Series of LF Projects LLC.
//   For website terms of use, trademark policy, privacy policy and other
//   project policies see https://lfprojects.org/policies
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package buildnum

import (
	"errors"
	"strings"
)

// DirtyMarker is the suffix that marks a descriptor of a modified working tree.
const DirtyMarker = "+"

const numComponents = 3

// ErrEmptyDescriptor is returned when an empty descriptor is parsed.
var ErrEmptyDescriptor = errors.New("empty descriptor")

// Descriptor is a decomposed version control descriptor.
type Descriptor struct {
	raw        string
	dirty      bool
	components []string // dot separated components, at most numComponents
	commits    string
	hasCommits bool
	hash       string
}

// ParseDescriptor decomposes s, which is expected in the form
// "major[.minor[.patch]][-commits[-hash]][+]". Components that are absent or not numeric are
// treated as zero. An error is returned only if s is empty.
func ParseDescriptor(s string) (Descriptor, error) {
	if s == "" {
		return Descriptor{}, ErrEmptyDescriptor
	}

	d := Descriptor{raw: s}

	// The dirty marker is stripped before splitting, so it never ends up in the hash.
	if strings.HasSuffix(s, DirtyMarker) {
		d.dirty = true
		s = strings.TrimSuffix(s, DirtyMarker)
	}

	dash := strings.Split(s, "-")

	d.components = strings.Split(dash[0], ".")
	if len(d.components) > numComponents {
		d.components = d.components[:numComponents]
	}

	if len(dash) > 1 {
		d.commits = dash[1]
		d.hasCommits = true
	}
	if len(dash) > 2 {
		d.hash = dash[2]
	}

	return d, nil
}

// String returns the descriptor text as it was parsed, including any dirty marker.
func (d Descriptor) String() string {
	return d.raw
}

// IsDirty reports whether the descriptor carries the dirty marker.
func (d Descriptor) IsDirty() bool {
	return d.dirty
}

func (d Descriptor) component(i int) int {
	if i < len(d.components) {
		return Clamp99(d.components[i])
	}
	return 0
}

// Major returns the clamped major component.
func (d Descriptor) Major() int { return d.component(0) }

// Minor returns the clamped minor component.
func (d Descriptor) Minor() int { return d.component(1) }

// Patch returns the clamped patch component.
func (d Descriptor) Patch() int { return d.component(2) }

// Commits returns the clamped number of commits since the tag, or zero if the descriptor has
// none.
func (d Descriptor) Commits() int {
	if !d.hasCommits {
		return 0
	}
	return Clamp99(d.commits)
}

// Hash returns the hash token, which is never interpreted numerically.
func (d Descriptor) Hash() string {
	return d.hash
}

// Base returns the packed version of d with a build counter of zero.
func (d Descriptor) Base() int64 {
	var v int64
	for i := 0; i < numComponents; i++ {
		v = (v + int64(d.component(i))) * 100
	}
	if d.hasCommits {
		v += int64(Clamp99(d.commits))
	}
	return v * 100
}
