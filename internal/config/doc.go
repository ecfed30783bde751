// SPDX-License-Identifier: MPL-2.0

// Package config handles builder configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/kotlin-extractor-builder/config.cue (or the
// XDG equivalent on Linux, ~/Library/Application Support on macOS, %APPDATA% on
// Windows), falling back to a config.cue in the working directory. Values cover the
// dependency jar folder, the base source tree, the build root, verbosity, and explicit
// external tool paths.
//
// Configuration is validated against a CUE schema (config_schema.cue) before being
// merged into Viper, so malformed files fail with clear messages instead of silently
// misconfiguring a build.
package config
