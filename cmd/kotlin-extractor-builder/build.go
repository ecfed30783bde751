// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/VidyaPatil/codeql/internal/builder"
	"github.com/VidyaPatil/codeql/internal/config"
	"github.com/VidyaPatil/codeql/internal/issue"
	"github.com/VidyaPatil/codeql/internal/kotlin"
	"github.com/VidyaPatil/codeql/internal/overlay"
	"github.com/VidyaPatil/codeql/internal/toolchain"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// runBuild is the RunE handler for the root command. It validates the
// flag combination, resolves the toolchain and version registry, and
// builds the selected targets sequentially.
func runBuild(cmd *cobra.Command, _ []string) error {
	if err := validateBuildFlags(); err != nil {
		// Usage errors print the usage text and exit nonzero before any
		// filesystem work happens.
		_ = cmd.Usage()
		return err
	}

	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	logger := newBuildLogger()
	registry, err := kotlin.DefaultRegistry()
	if err != nil {
		return err
	}

	tools, err := toolchain.Locate(toolchain.Overrides{
		Kotlinc: cfg.Tools.Kotlinc,
		Javac:   cfg.Tools.Javac,
		Jar:     cfg.Tools.Jar,
	})
	if err != nil {
		renderIssue(cmd, issue.KotlincNotFoundId)
		return &ExitError{Code: 1, Err: err}
	}

	runner := toolchain.NewRunner(logger)
	b := &builder.Builder{
		Runner:          runner,
		Tools:           tools,
		Registry:        registry,
		DependenciesDir: dependenciesPath(),
		SourceDir:       cfg.SourceDir,
		BuildRoot:       cfg.BuildRoot,
		Logger:          logger,
	}

	switch {
	case singleVersion != "":
		var version kotlin.Version
		version, err = registry.Resolve(singleVersion)
		if err != nil {
			return err
		}
		kind := builder.KindStandalone
		if singleVersionEmbeddable {
			kind = builder.KindEmbeddable
		}
		err = b.Build(builder.Target{Version: version, Kind: kind})

	case buildMany:
		err = b.BuildAll()

	default:
		// Single build for whatever kotlinc is installed.
		var version kotlin.Version
		version, err = kotlin.DetectInstalledVersion(runner, tools.Kotlinc, registry)
		if err != nil {
			return err
		}
		err = b.Build(builder.Target{Version: version, Kind: builder.KindStandalone})
	}

	if err != nil {
		if id, ok := knownIssueId(err); ok {
			renderIssue(cmd, id)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Build succeeded"))
	return nil
}

// knownIssueId maps pipeline failures onto catalog issues with
// remediation text. Failures without a catalog entry go through the
// standard error display path only.
func knownIssueId(err error) (issue.Id, bool) {
	switch {
	case errors.Is(err, builder.ErrJarMissing):
		return issue.DependencyJarMissingId, true
	case errors.Is(err, overlay.ErrBaseTreeMissing):
		return issue.BaseSourceTreeMissingId, true
	default:
		return 0, false
	}
}

// validateBuildFlags rejects contradictory flag combinations. Kind
// selection only makes sense against one explicit version: with --many
// both kinds are always built, and the detected-version default is
// standalone by definition.
func validateBuildFlags() error {
	if singleVersionEmbeddable && singleVersion == "" {
		return fmt.Errorf("--single-version-embeddable requires --single-version")
	}
	return nil
}

// dependenciesPath resolves the dependency folder: the flag wins over the
// configured value.
func dependenciesPath() string {
	if dependenciesDir != "" {
		return dependenciesDir
	}
	return cfg.DependenciesDir
}

// newBuildLogger builds the pipeline logger; verbose enables debug
// entries such as converted batch command lines.
func newBuildLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// renderIssue prints the remediation text for a known issue, falling back
// to silence when rendering fails (the error itself is still returned to
// the caller).
func renderIssue(cmd *cobra.Command, id issue.Id) {
	known := issue.Lookup(id)
	if known == nil {
		return
	}
	if md, err := known.Render("dark"); err == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), md)
	}
}
