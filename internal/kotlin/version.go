// SPDX-License-Identifier: MPL-2.0

// Package kotlin models the Kotlin compiler plugin versions the extractor
// can be built against, and the registry of versions known to the build.
package kotlin

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedVersion is the sentinel error wrapped by MalformedVersionError.
var ErrMalformedVersion = errors.New("malformed version")

type (
	// Version is an immutable Kotlin compiler version: MAJOR.MINOR.PATCH with
	// an optional pre-release suffix (e.g. "2.0.0-Beta1"). The zero value is
	// not a valid version; construct via ParseVersion.
	Version struct {
		Major, Minor, Patch int

		// Suffix is the pre-release identifier, empty for final releases.
		Suffix string
	}

	// MalformedVersionError is returned when a version string cannot be
	// parsed. It wraps ErrMalformedVersion for errors.Is() compatibility.
	MalformedVersionError struct {
		Value string
	}
)

// Error implements the error interface.
func (e *MalformedVersionError) Error() string {
	return fmt.Sprintf("malformed Kotlin version %q (expected MAJOR.MINOR.PATCH with optional pre-release suffix)", e.Value)
}

// Unwrap returns ErrMalformedVersion so callers can use errors.Is for programmatic detection.
func (e *MalformedVersionError) Unwrap() error { return ErrMalformedVersion }

// versionPattern matches MAJOR.MINOR.PATCH plus an optional -Suffix
// pre-release identifier (alphanumeric, starting with a letter).
var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:-([A-Za-z][A-Za-z0-9]*))?$`)

// ParseVersion parses a version string like "1.7.20" or "2.0.0-Beta1".
func ParseVersion(s string) (Version, error) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, &MalformedVersionError{Value: s}
	}

	// The pattern guarantees the numeric groups parse.
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch, _ := strconv.Atoi(m[3])

	return Version{Major: major, Minor: minor, Patch: patch, Suffix: m[4]}, nil
}

// Compare returns -1, 0, or 1 depending on whether v is ordered before,
// equal to, or after o. Ordering is numeric on (major, minor, patch); a
// pre-release sorts before the final release with the same numbers, and
// two pre-releases compare lexically on their suffixes.
func (v Version) Compare(o Version) int {
	if c := compareInt(v.Major, o.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, o.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, o.Patch); c != 0 {
		return c
	}
	switch {
	case v.Suffix == o.Suffix:
		return 0
	case v.Suffix == "":
		return 1
	case o.Suffix == "":
		return -1
	case v.Suffix < o.Suffix:
		return -1
	default:
		return 1
	}
}

// LessThanOrEqual reports whether v is ordered at or before o.
func (v Version) LessThanOrEqual(o Version) bool {
	return v.Compare(o) <= 0
}

// String returns the canonical version string, e.g. "1.7.20" or "2.0.0-Beta1".
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Suffix != "" {
		s += "-" + v.Suffix
	}
	return s
}

// LanguageVersion returns the value passed to kotlinc's -language-version
// flag, e.g. "1.7" for version 1.7.20.
func (v Version) LanguageVersion() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// DirName returns the name of the per-version overlay folder for this
// version, e.g. "v_1_7_20".
func (v Version) DirName() string {
	return "v_" + strings.ReplaceAll(v.String(), ".", "_")
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
