// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/VidyaPatil/codeql/cmd/kotlin-extractor-builder"

func main() {
	cmd.Execute()
}
