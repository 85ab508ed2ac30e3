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
	"strconv"
	"strings"
)

// maxField is the largest value that fits a packed digit pair.
const maxField = 99

// ParseOr parses s as a base-10 integer, ignoring surrounding whitespace. If s is not a valid
// integer, def is returned. Values that overflow an int saturate to its bounds.
func ParseOr(s string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return i
		}
		return def
	}
	return i
}

// Coerce parses s as a base-10 integer, returning zero if it cannot be parsed.
func Coerce(s string) int {
	return ParseOr(s, 0)
}

// Clamp99 returns Coerce(s), limited to at most 99. There is no lower bound.
func Clamp99(s string) int {
	return clamp(Coerce(s))
}

func clamp(i int) int {
	if i > maxField {
		return maxField
	}
	return i
}
