// SPDX-License-Identifier: MPL-2.0

package config

type (
	// Config is the resolved builder configuration.
	Config struct {
		// DependenciesDir is the folder containing dependency jars,
		// one <artifact>-<version>.jar per (artifact, version).
		DependenciesDir string `mapstructure:"dependencies_dir"`

		// SourceDir is the base extractor source tree.
		SourceDir string `mapstructure:"source_dir"`

		// BuildRoot receives scratch build folders and output archives.
		BuildRoot string `mapstructure:"build_root"`

		// Verbose enables verbose diagnostic output.
		Verbose bool `mapstructure:"verbose"`

		// Tools carries explicit external tool paths.
		Tools ToolsConfig `mapstructure:"tools"`
	}

	// ToolsConfig overrides PATH lookup for the external tools. Empty
	// fields use the default resolution (PATH lookup for kotlinc, the
	// conventional command names for javac and jar).
	ToolsConfig struct {
		Kotlinc string `mapstructure:"kotlinc"`
		Javac   string `mapstructure:"javac"`
		Jar     string `mapstructure:"jar"`
	}
)

// DefaultConfig returns the configuration used when no config file exists.
// The dependencies default matches the conventional checkout layout, where
// the dependency jars live beside the repository's resources folder.
func DefaultConfig() *Config {
	return &Config{
		DependenciesDir: "../../../resources/kotlin-dependencies",
		SourceDir:       "src",
		BuildRoot:       ".",
		Verbose:         false,
	}
}
