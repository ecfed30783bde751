// SPDX-License-Identifier: MPL-2.0

package kotlin

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/slices"
)

//go:embed versions.toml
var versionsTOML []byte

// registryFile is the on-disk shape of the embedded version list.
type registryFile struct {
	Versions []string `toml:"versions"`
}

// Registry holds the ascending-ordered list of known plugin versions.
type Registry struct {
	versions []Version
}

// NewRegistry builds a Registry from version strings. The list must be
// non-empty, well-formed, and strictly ascending.
func NewRegistry(versionStrings []string) (*Registry, error) {
	if len(versionStrings) == 0 {
		return nil, fmt.Errorf("version registry is empty")
	}

	versions := make([]Version, 0, len(versionStrings))
	for _, s := range versionStrings {
		v, err := ParseVersion(s)
		if err != nil {
			return nil, fmt.Errorf("invalid registry entry: %w", err)
		}
		if n := len(versions); n > 0 && versions[n-1].Compare(v) >= 0 {
			return nil, fmt.Errorf("version registry not ascending: %s listed after %s", v, versions[n-1])
		}
		versions = append(versions, v)
	}

	return &Registry{versions: versions}, nil
}

// DefaultRegistry loads the registry embedded in the binary.
func DefaultRegistry() (*Registry, error) {
	var file registryFile
	if err := toml.Unmarshal(versionsTOML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse embedded version registry: %w", err)
	}
	return NewRegistry(file.Versions)
}

// Versions returns the registered versions in ascending order.
func (r *Registry) Versions() []Version {
	return slices.Clone(r.versions)
}

// Latest returns the newest registered version.
func (r *Registry) Latest() Version {
	return r.versions[len(r.versions)-1]
}

// Contains reports whether v is a registered version.
func (r *Registry) Contains(v Version) bool {
	return slices.Contains(r.versions, v)
}

// Resolve parses s and requires it to name a registered version.
func (r *Registry) Resolve(s string) (Version, error) {
	v, err := ParseVersion(s)
	if err != nil {
		return Version{}, err
	}
	if !r.Contains(v) {
		return Version{}, fmt.Errorf("%s is not a registered Kotlin plugin version (known: %s..%s)", v, r.versions[0], r.Latest())
	}
	return v, nil
}

// Floor returns the greatest registered version that is <= v, and whether
// one exists.
func (r *Registry) Floor(v Version) (Version, bool) {
	for i := len(r.versions) - 1; i >= 0; i-- {
		if r.versions[i].LessThanOrEqual(v) {
			return r.versions[i], true
		}
	}
	return Version{}, false
}
