// SPDX-License-Identifier: MPL-2.0

// Package cmd wires the builder CLI: one root command whose flags select
// which (version, packaging kind) extractor archives to build.
package cmd
