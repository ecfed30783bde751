// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error context and a catalog of known
// failure modes with markdown remediation text.
package issue
