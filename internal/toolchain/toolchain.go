// SPDX-License-Identifier: MPL-2.0

// Package toolchain locates and invokes the external compiler toolchain
// (kotlinc, javac) and the jar archiving utility that the build drives.
package toolchain

import (
	"os/exec"

	"github.com/VidyaPatil/codeql/internal/issue"
)

// Toolchain holds resolved command names or paths for the external tools.
type Toolchain struct {
	// Kotlinc is the resolved kotlinc path. On Windows this may point at
	// kotlinc.bat or kotlinc.cmd; exec.LookPath honors PATHEXT.
	Kotlinc string
	// Javac is the Java compiler command.
	Javac string
	// Jar is the archiving utility command.
	Jar string
}

// Overrides carries explicit tool paths from configuration. Empty fields
// fall back to PATH lookup (kotlinc) or the conventional command name
// (javac, jar).
type Overrides struct {
	Kotlinc string
	Javac   string
	Jar     string
}

// Locate resolves the toolchain. A missing kotlinc is a fatal environment
// error: nothing can be built without it, so it is reported before any
// filesystem work starts. javac and jar are resolved lazily by the OS at
// invocation time, matching their conventional always-on-PATH contract.
func Locate(o Overrides) (*Toolchain, error) {
	tc := &Toolchain{
		Kotlinc: o.Kotlinc,
		Javac:   o.Javac,
		Jar:     o.Jar,
	}

	if tc.Kotlinc == "" {
		path, err := exec.LookPath("kotlinc")
		if err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("locate the Kotlin compiler").
				WithResource("kotlinc").
				WithSuggestion("Install a Kotlin compiler and ensure kotlinc is on your PATH").
				WithSuggestion("Or set tools.kotlinc in the builder config file").
				Wrap(err).
				BuildError()
		}
		tc.Kotlinc = path
	}

	if tc.Javac == "" {
		tc.Javac = "javac"
	}
	if tc.Jar == "" {
		tc.Jar = "jar"
	}

	return tc, nil
}
