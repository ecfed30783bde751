// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI surface of the Kotlin extractor builder.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/VidyaPatil/codeql/internal/config"
	"github.com/VidyaPatil/codeql/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// dependenciesDir is the --dependencies flag value
	dependenciesDir string
	// buildMany selects building every registered version/kind
	buildMany bool
	// buildSingle selects building a single version/kind
	buildSingle bool
	// singleVersion is an explicit version to build
	singleVersion string
	// singleVersionEmbeddable selects the embeddable kind for --single-version
	singleVersionEmbeddable bool

	// cfg is the loaded configuration, populated by initRootConfig
	cfg *config.Config

	// rootCmd is the one and only command: the builder has no subcommands,
	// a single run builds one or many extractor archives.
	rootCmd = &cobra.Command{
		Use:   "kotlin-extractor-builder",
		Short: "Build the CodeQL Kotlin extractor archives",
		Long: TitleStyle.Render("kotlin-extractor-builder") + SubtitleStyle.Render(" - packages the CodeQL Kotlin extractor") + `

Drives kotlinc and javac over a version-specific copy of the extractor
sources and packages the result into one archive per build target.

` + SubtitleStyle.Render("Examples:") + `
  kotlin-extractor-builder                                   Build standalone for the installed kotlinc
  kotlin-extractor-builder --single-version 1.7.20           Build standalone for 1.7.20
  kotlin-extractor-builder --single-version 1.7.20 \
      --single-version-embeddable                            Build embeddable for 1.7.20
  kotlin-extractor-builder --many                            Build both kinds for every known version`,
		SilenceErrors: true,
		RunE:          runBuild,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/kotlin-extractor-builder/config.cue)")

	rootCmd.Flags().StringVar(&dependenciesDir, "dependencies", "", "folder containing the dependency jars")
	rootCmd.Flags().BoolVar(&buildMany, "many", false, "build for all versions/kinds")
	rootCmd.Flags().BoolVar(&buildSingle, "single", false, "build for a single version/kind")
	rootCmd.Flags().StringVar(&singleVersion, "single-version", "", "build for a specific version")
	rootCmd.Flags().BoolVar(&singleVersionEmbeddable, "single-version-embeddable", false,
		"when building a single version, build an embeddable extractor (default is standalone)")

	rootCmd.MarkFlagsMutuallyExclusive("many", "single")
	rootCmd.MarkFlagsMutuallyExclusive("many", "single-version")
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in the config file and environment overrides.
func initRootConfig() {
	loaded, err := config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		// Surface config loading problems but keep going on defaults.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		loaded = config.DefaultConfig()
	}
	cfg = loaded

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.Verbose
	}
}

// formatErrorForDisplay formats an error for user display. ActionableError
// values render their suggestions; verbose mode shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
