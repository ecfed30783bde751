// SPDX-License-Identifier: MPL-2.0

package builder

import (
	"fmt"

	"github.com/VidyaPatil/codeql/internal/kotlin"
)

// ErrInvalidKind is the sentinel error wrapped by InvalidKindError.
var ErrInvalidKind = fmt.Errorf("invalid packaging kind")

type (
	// Kind is the packaging kind of a build target. It determines which
	// compiler jars go on the classpath and whether IntelliJ imports are
	// rewritten to their shaded locations.
	Kind string

	// InvalidKindError is returned when a Kind value is not recognized.
	InvalidKindError struct {
		Value Kind
	}

	// Target is one (version, packaging kind) build request. Targets are
	// consumed once by a build run; nothing about them persists.
	Target struct {
		Version kotlin.Version
		Kind    Kind
	}
)

const (
	// KindStandalone packages against the plain Kotlin compiler jars.
	KindStandalone Kind = "standalone"
	// KindEmbeddable packages against kotlin-compiler-embeddable, which
	// shades IntelliJ classes under org.jetbrains.kotlin.
	KindEmbeddable Kind = "embeddable"
)

// Error implements the error interface.
func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid packaging kind %q (must be %q or %q)", e.Value, KindStandalone, KindEmbeddable)
}

// Unwrap returns ErrInvalidKind so callers can use errors.Is for programmatic detection.
func (e *InvalidKindError) Unwrap() error { return ErrInvalidKind }

// IsValid returns whether the Kind is recognized, and a list of
// validation errors if it is not.
func (k Kind) IsValid() (bool, []error) {
	switch k {
	case KindStandalone, KindEmbeddable:
		return true, nil
	default:
		return false, []error{&InvalidKindError{Value: k}}
	}
}

// OutputName returns the deterministic archive name for the target,
// e.g. "codeql-extractor-kotlin-standalone-1.7.20.jar".
func (t Target) OutputName() string {
	return fmt.Sprintf("codeql-extractor-kotlin-%s-%s.jar", t.Kind, t.Version)
}

// BuildDirName returns the scratch build folder for the target,
// e.g. "build_embeddable_1.7.20".
func (t Target) BuildDirName() string {
	return fmt.Sprintf("build_%s_%s", t.Kind, t.Version)
}

// classpathBases lists the dependency jar base names for the kotlinc
// classpath.
func (t Target) classpathBases() []string {
	v := t.Version.String()
	if t.Kind == KindEmbeddable {
		return []string{"kotlin-stdlib-" + v, "kotlin-compiler-embeddable-" + v}
	}
	return []string{"kotlin-stdlib-" + v, "kotlin-compiler-" + v}
}

// javaClasspathBases lists the dependency jar base names for the javac
// classpath.
func (t Target) javaClasspathBases() []string {
	return []string{"kotlin-stdlib-" + t.Version.String()}
}
