// SPDX-License-Identifier: MPL-2.0

// Package overlay materializes version-specific scratch source trees by
// layering per-version override folders onto a copy of the base sources.
package overlay

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/VidyaPatil/codeql/internal/kotlin"
)

// ErrBaseTreeMissing is the sentinel error wrapped when the base source
// tree does not exist, so callers can distinguish it from copy failures.
var ErrBaseTreeMissing = errors.New("base source tree missing")

const (
	// versionsSubdir is the folder of per-version overlays inside the
	// source tree, one v_X_Y_Z subfolder per registered version.
	versionsSubdir = "main/kotlin/utils/versions"

	// currentVersionSubdir receives the layered overlay content for the
	// version being built.
	currentVersionSubdir = "main/kotlin/utils/this_version"
)

// CopyTree copies the directory tree rooted at src into dst, creating
// directories as needed and overwriting existing files. File modes are
// preserved; symlinks are not followed.
func CopyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to copy source tree: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("failed to copy source tree: %s is not a directory", src)
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		fi, err := d.Info()
		if err != nil {
			return err
		}
		return copyFile(path, target, fi.Mode().Perm())
	})
}

func copyFile(src, dst string, perm fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Materialize builds the scratch source tree for one build target.
//
// The base tree is copied to scratchDir (replacing any leftover from a
// previous run), then for every registered version at or below target,
// in ascending order, that version's overlay folder is copied into the
// current-version folder. Later versions overwrite earlier ones on
// conflict, so the overlay closest to the target wins. Conflicts are not
// diagnosed; the ascending order is the resolution rule. Finally the
// per-version overlay folders are removed so they never reach the
// compiler.
func Materialize(baseDir, scratchDir string, target kotlin.Version, registry *kotlin.Registry) error {
	if _, err := os.Stat(baseDir); err != nil {
		return fmt.Errorf("%w: %s (%v)", ErrBaseTreeMissing, baseDir, err)
	}

	if err := os.RemoveAll(scratchDir); err != nil {
		return fmt.Errorf("failed to clear scratch directory: %w", err)
	}
	if err := CopyTree(baseDir, scratchDir); err != nil {
		return err
	}

	currentDir := filepath.Join(scratchDir, filepath.FromSlash(currentVersionSubdir))
	if err := os.MkdirAll(currentDir, 0o755); err != nil {
		return fmt.Errorf("failed to create current-version folder: %w", err)
	}

	versionsDir := filepath.Join(scratchDir, filepath.FromSlash(versionsSubdir))
	for _, v := range registry.Versions() {
		if !v.LessThanOrEqual(target) {
			continue
		}
		overlayDir := filepath.Join(versionsDir, v.DirName())
		if _, err := os.Stat(overlayDir); err != nil {
			continue // not every version ships an overlay
		}
		if err := CopyTree(overlayDir, currentDir); err != nil {
			return fmt.Errorf("failed to apply overlay for %s: %w", v, err)
		}
	}

	if err := os.RemoveAll(versionsDir); err != nil {
		return fmt.Errorf("failed to remove version overlay folders: %w", err)
	}

	return nil
}
