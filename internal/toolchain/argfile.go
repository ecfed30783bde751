// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"fmt"
	"os"
	"strings"
)

// WriteArgFile writes compiler arguments to path, one single-quoted
// argument per line, for @argfile-style invocation. Argument files bypass
// OS command-length limits, which the full extractor source list would
// otherwise exceed. Backslashes are normalized to forward slashes so the
// same file works for Windows paths; an argument that itself contains a
// single quote cannot be represented and is an error.
func WriteArgFile(path string, args []string) error {
	var b strings.Builder
	for _, arg := range args {
		if strings.Contains(arg, "'") {
			return fmt.Errorf("single quote in argument: %s", arg)
		}
		b.WriteString("'")
		b.WriteString(strings.ReplaceAll(arg, `\`, "/"))
		b.WriteString("'\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write argument file: %w", err)
	}
	return nil
}
