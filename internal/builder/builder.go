// SPDX-License-Identifier: MPL-2.0

// Package builder drives the extractor build pipeline: materialize a
// version-specific scratch source tree, compile it with the external
// Kotlin and Java compilers, and package the result into one archive per
// build target. The pipeline is strictly sequential with no retries; any
// compiler or archiver failure aborts the run.
package builder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/VidyaPatil/codeql/internal/issue"
	"github.com/VidyaPatil/codeql/internal/kotlin"
	"github.com/VidyaPatil/codeql/internal/overlay"
	"github.com/VidyaPatil/codeql/internal/toolchain"

	"github.com/charmbracelet/log"
)

const (
	// moduleName is the Kotlin module name baked into the compiled classes.
	moduleName = "codeql-kotlin-extractor"

	// resourcePackageDir holds generated resources inside the scratch tree.
	resourcePackageDir = "main/resources/com/github/codeql"

	// markerFileName names the output artifact inside the archive so the
	// extractor can identify itself at runtime.
	markerFileName = "extractor.name"
)

// Builder runs the compile-and-package pipeline for build targets.
type Builder struct {
	// Runner invokes the external tools.
	Runner *toolchain.Runner
	// Tools is the resolved external toolchain.
	Tools *toolchain.Toolchain
	// Registry lists the known plugin versions.
	Registry *kotlin.Registry
	// DependenciesDir contains the per-version dependency jars.
	DependenciesDir string
	// SourceDir is the base source tree (default "src").
	SourceDir string
	// BuildRoot receives scratch build folders and output archives
	// (default: the working directory).
	BuildRoot string
	// Logger receives pipeline progress. Nil falls back to the package
	// default logger.
	Logger *log.Logger
}

// Build produces the archive for one target. On failure no archive is
// left at the target's output path; scratch state is cleared by the next
// run for the same target.
func (b *Builder) Build(target Target) error {
	if ok, errs := target.Kind.IsValid(); !ok {
		return errs[0]
	}

	logger := b.logger()
	output := filepath.Join(b.buildRoot(), target.OutputName())
	logger.Info("building extractor", "version", target.Version.String(), "kind", string(target.Kind), "output", output)

	classpath, err := ClasspathFromBases(b.DependenciesDir, target.classpathBases())
	if err != nil {
		return b.dependencyError(err)
	}
	javaClasspath, err := ClasspathFromBases(b.DependenciesDir, target.javaClasspathBases())
	if err != nil {
		return b.dependencyError(err)
	}

	buildDir := filepath.Join(b.buildRoot(), target.BuildDirName())
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return fmt.Errorf("failed to create build directory: %w", err)
	}

	tmpSrcDir := filepath.Join(buildDir, "temp_src")
	if err := overlay.Materialize(b.sourceDir(), tmpSrcDir, target.Version, b.Registry); err != nil {
		return issue.NewErrorContext().
			WithOperation("materialize scratch source tree").
			WithResource(b.sourceDir()).
			WithSuggestion("Run the builder from the extractor folder containing the src tree").
			Wrap(err).
			BuildError()
	}

	resourceDir := filepath.Join(tmpSrcDir, filepath.FromSlash(resourcePackageDir))
	if err := os.MkdirAll(resourceDir, 0o755); err != nil {
		return fmt.Errorf("failed to create resource directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(resourceDir, markerFileName), []byte(target.OutputName()), 0o644); err != nil {
		return fmt.Errorf("failed to write extractor name marker: %w", err)
	}

	srcs, err := FindSources(tmpSrcDir)
	if err != nil {
		return err
	}

	if target.Kind == KindEmbeddable {
		if err := TransformToEmbeddable(srcs); err != nil {
			return err
		}
	}

	if err := b.compileToJar(buildDir, tmpSrcDir, srcs, target, classpath, javaClasspath, output); err != nil {
		return err
	}

	if err := os.RemoveAll(tmpSrcDir); err != nil {
		return fmt.Errorf("failed to clean scratch source tree: %w", err)
	}

	logger.Info("built extractor", "output", output)
	return nil
}

// BuildAll builds the standalone and embeddable archives for every
// registered version, sequentially. Each target fully cleans up its
// scratch state before the next begins; the first failure aborts.
func (b *Builder) BuildAll() error {
	for _, version := range b.Registry.Versions() {
		for _, kind := range []Kind{KindStandalone, KindEmbeddable} {
			if err := b.Build(Target{Version: version, Kind: kind}); err != nil {
				return err
			}
		}
	}
	return nil
}

// compileToDir compiles srcs into outDir: kotlinc over the full source
// list first, then javac over the Java subset referencing the fresh
// Kotlin class files. Both compilers read their arguments from generated
// argument files to stay clear of OS command-length limits.
func (b *Builder) compileToDir(buildDir string, srcs []string, target Target, classpath, javaClasspath, outDir string) error {
	kotlinArgFile := filepath.Join(buildDir, "kotlin.args")
	kotlinArgs := []string{
		"-Werror",
		"-opt-in=kotlin.RequiresOptIn",
		"-opt-in=org.jetbrains.kotlin.ir.symbols.IrSymbolInternals",
		"-d", outDir,
		"-module-name", moduleName,
		"-Xsuppress-version-warnings",
		"-language-version", target.Version.LanguageVersion(),
		"-no-reflect", "-no-stdlib",
		"-jvm-target", "1.8",
		"-classpath", classpath,
	}
	kotlinArgs = append(kotlinArgs, srcs...)
	if err := toolchain.WriteArgFile(kotlinArgFile, kotlinArgs); err != nil {
		return err
	}
	// kotlinc can default to 256M, which isn't enough when we are
	// extracting the build.
	if err := b.Runner.Run(b.Tools.Kotlinc, "-J-Xmx2G", "@"+kotlinArgFile); err != nil {
		return err
	}

	javaArgFile := filepath.Join(buildDir, "java.args")
	javaArgs := []string{
		"-d", outDir,
		"-source", "8", "-target", "8",
		"-classpath", JoinClasspath(outDir, classpath, javaClasspath),
	}
	javaArgs = append(javaArgs, javaOnly(srcs)...)
	if err := toolchain.WriteArgFile(javaArgFile, javaArgs); err != nil {
		return err
	}
	return b.Runner.Run(b.Tools.Javac, "@"+javaArgFile)
}

// compileToJar compiles into a fresh class directory, then packages the
// classes plus the archive manifest and the extractor name marker into
// the output archive. The intermediate class directory is deleted after
// packaging.
func (b *Builder) compileToJar(buildDir, tmpSrcDir string, srcs []string, target Target, classpath, javaClasspath, output string) error {
	classDir := filepath.Join(buildDir, "classes")
	if err := os.RemoveAll(classDir); err != nil {
		return fmt.Errorf("failed to clear class directory: %w", err)
	}
	if err := os.MkdirAll(classDir, 0o755); err != nil {
		return fmt.Errorf("failed to create class directory: %w", err)
	}

	if err := b.compileToDir(buildDir, srcs, target, classpath, javaClasspath, classDir); err != nil {
		return err
	}

	resourcesDir := filepath.Join(tmpSrcDir, "main", "resources")
	if err := b.Runner.Run(b.Tools.Jar, "cf", output,
		"-C", classDir, ".",
		"-C", resourcesDir, "META-INF",
		"-C", resourcesDir, "com/github/codeql/"+markerFileName); err != nil {
		return err
	}

	if err := os.RemoveAll(classDir); err != nil {
		return fmt.Errorf("failed to remove class directory: %w", err)
	}
	return nil
}

func (b *Builder) dependencyError(err error) error {
	return issue.NewErrorContext().
		WithOperation("resolve compile classpath").
		WithResource(b.DependenciesDir).
		WithSuggestion("Check the --dependencies flag points at the kotlin-dependencies folder").
		WithSuggestion("Fetch the dependency jars for the version being built").
		Wrap(err).
		BuildError()
}

func (b *Builder) sourceDir() string {
	if b.SourceDir != "" {
		return b.SourceDir
	}
	return "src"
}

func (b *Builder) buildRoot() string {
	if b.BuildRoot != "" {
		return b.BuildRoot
	}
	return "."
}

func (b *Builder) logger() *log.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return log.Default()
}
