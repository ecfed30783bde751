// SPDX-License-Identifier: MPL-2.0

package builder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrJarMissing is the sentinel error wrapped when a dependency jar
// cannot be found on the compile classpath.
var ErrJarMissing = errors.New("dependency jar missing")

// FindJar returns the path of <base>.jar inside dir, erroring unless it
// exists as a regular file.
func FindJar(dir, base string) (string, error) {
	path := filepath.Join(dir, base+".jar")
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: no jar file at %s", ErrJarMissing, path)
	}
	return path, nil
}

// ClasspathFromBases resolves each base name to a jar in dir and joins
// the results with the OS classpath separator.
func ClasspathFromBases(dir string, bases []string) (string, error) {
	paths := make([]string, 0, len(bases))
	for _, base := range bases {
		path, err := FindJar(dir, base)
		if err != nil {
			return "", err
		}
		paths = append(paths, path)
	}
	return JoinClasspath(paths...), nil
}

// JoinClasspath joins classpath entries with the OS path list separator.
func JoinClasspath(entries ...string) string {
	return strings.Join(entries, string(os.PathListSeparator))
}

// FindSources walks root and returns all Kotlin sources followed by all
// Java sources. kotlinc receives the full list (it resolves references
// into the Java sources); javac later receives only the Java subset.
func FindSources(root string) ([]string, error) {
	var ktSrcs, javaSrcs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".kt":
			ktSrcs = append(ktSrcs, path)
		case ".java":
			javaSrcs = append(javaSrcs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate sources under %s: %w", root, err)
	}
	return append(ktSrcs, javaSrcs...), nil
}

// javaOnly filters srcs down to the Java sources.
func javaOnly(srcs []string) []string {
	var out []string
	for _, s := range srcs {
		if filepath.Ext(s) == ".java" {
			out = append(out, s)
		}
	}
	return out
}
