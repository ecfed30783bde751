// SPDX-License-Identifier: MPL-2.0

package builder

import (
	"bytes"
	"fmt"
	"os"
)

var (
	standaloneImportPrefix = []byte("import com.intellij")
	embeddableImportPrefix = []byte("import org.jetbrains.kotlin.com.intellij")
)

// TransformToEmbeddable rewrites IntelliJ imports in-place across srcs to
// the shaded package used by kotlin-compiler-embeddable. Applied to the
// disposable scratch tree only, never to the base sources.
func TransformToEmbeddable(srcs []string) error {
	for _, src := range srcs {
		content, err := os.ReadFile(src)
		if err != nil {
			return fmt.Errorf("failed to transform source: %w", err)
		}
		rewritten := bytes.ReplaceAll(content, standaloneImportPrefix, embeddableImportPrefix)
		if bytes.Equal(rewritten, content) {
			continue
		}
		if err := os.WriteFile(src, rewritten, 0o644); err != nil {
			return fmt.Errorf("failed to transform source: %w", err)
		}
	}
	return nil
}
