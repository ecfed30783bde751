// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

// Id identifies a known issue in the catalog.
type Id int

const (
	KotlincNotFoundId Id = iota + 1
	DependencyJarMissingId
	BaseSourceTreeMissingId
)

// MarkdownMsg is markdown remediation text rendered for the terminal.
type MarkdownMsg string

// HttpLink points at documentation for an issue.
type HttpLink string

// Issue is a known failure mode with remediation guidance.
type Issue struct {
	id       Id
	mdMsg    MarkdownMsg
	docLinks []HttpLink
}

// Id returns the catalog identifier.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the raw remediation markdown.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// DocLinks returns the documentation links for the issue.
func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the remediation text for the terminal.
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	kotlincNotFoundIssue = &Issue{
		id: KotlincNotFoundId,
		mdMsg: `
# No kotlinc found!

The Kotlin extractor cannot be built without a Kotlin compiler on your PATH.

## Things you can try:
- Install a Kotlin compiler release and add its bin folder to PATH:
~~~
$ sdkman install kotlin
~~~
- Or point the builder at an explicit compiler path in config.cue:
~~~cue
tools: kotlinc: "/opt/kotlinc/bin/kotlinc"
~~~`,
		docLinks: []HttpLink{"https://kotlinlang.org/docs/command-line.html"},
	}

	dependencyJarMissingIssue = &Issue{
		id: DependencyJarMissingId,
		mdMsg: `
# Dependency jar missing!

A jar required on the compile classpath was not found in the dependencies
folder.

## Things you can try:
- Check the --dependencies flag points at the kotlin-dependencies folder
- Fetch the dependency jars for the version you are building`,
	}

	baseSourceTreeMissingIssue = &Issue{
		id: BaseSourceTreeMissingId,
		mdMsg: `
# Base source tree missing!

The extractor's base source tree was not found, so no scratch copy could
be materialized.

## Things you can try:
- Run the builder from the extractor folder containing the src tree
- Set source_dir in config.cue when building from elsewhere`,
	}

	catalog = map[Id]*Issue{
		KotlincNotFoundId:       kotlincNotFoundIssue,
		DependencyJarMissingId:  dependencyJarMissingIssue,
		BaseSourceTreeMissingId: baseSourceTreeMissingIssue,
	}
)

// Lookup returns the catalog issue for id, or nil when unknown.
func Lookup(id Id) *Issue {
	return catalog[id]
}
