// SPDX-License-Identifier: MPL-2.0

package kotlin

import (
	"fmt"
	"regexp"
)

// OutputRunner runs an external tool and returns its combined
// stdout/stderr. kotlinc writes its -version banner to stderr.
type OutputRunner interface {
	CombinedOutput(name string, args ...string) (string, error)
}

// installedVersionPattern extracts the version from a kotlinc -version
// banner, e.g. "info: kotlinc-jvm 1.8.0 (JRE 17.0.2+8)" or
// "Kotlin Compiler version 2.0.0-Beta1-release-123".
// Only true pre-release suffixes (Beta/RC/M) are significant; trailing
// build metadata such as "-release-430" is ignored.
var installedVersionPattern = regexp.MustCompile(`(?:kotlinc-jvm|[Kk]otlin(?:\s+[Cc]ompiler)?\s+version)\s+(\d+\.\d+\.\d+)(-(?:Beta|RC|M)\d*)?`)

// DetectInstalledVersion runs `kotlinc -version`, parses the reported
// compiler version, and maps it onto the registry: an exact match wins,
// otherwise the greatest registered version at or below the installed one
// is used. Build metadata suffixes like "-release-430" are ignored.
func DetectInstalledVersion(runner OutputRunner, kotlincPath string, registry *Registry) (Version, error) {
	out, err := runner.CombinedOutput(kotlincPath, "-version")
	if err != nil {
		return Version{}, fmt.Errorf("failed to query kotlinc version: %w", err)
	}

	m := installedVersionPattern.FindStringSubmatch(out)
	if m == nil {
		return Version{}, fmt.Errorf("could not find a Kotlin version in kotlinc output: %q", out)
	}

	installed, err := ParseVersion(m[1] + m[2])
	if err != nil {
		return Version{}, err
	}

	if registry.Contains(installed) {
		return installed, nil
	}
	if floor, ok := registry.Floor(installed); ok {
		return floor, nil
	}
	return Version{}, fmt.Errorf("installed kotlinc %s predates every supported plugin version (oldest: %s)", installed, registry.Versions()[0])
}
