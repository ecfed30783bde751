// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"testing"

	"github.com/VidyaPatil/codeql/internal/builder"
	"github.com/VidyaPatil/codeql/internal/issue"
	"github.com/VidyaPatil/codeql/internal/overlay"
)

func TestValidateBuildFlags(t *testing.T) {
	tests := []struct {
		name          string
		singleVersion string
		embeddable    bool
		wantErr       bool
	}{
		{
			name: "defaults are fine",
		},
		{
			name:          "explicit version standalone",
			singleVersion: "1.7.20",
		},
		{
			name:          "explicit version embeddable",
			singleVersion: "1.7.20",
			embeddable:    true,
		},
		{
			name:       "embeddable without version is a usage error",
			embeddable: true,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origVersion, origEmbeddable := singleVersion, singleVersionEmbeddable
			t.Cleanup(func() {
				singleVersion, singleVersionEmbeddable = origVersion, origEmbeddable
			})
			singleVersion = tt.singleVersion
			singleVersionEmbeddable = tt.embeddable

			err := validateBuildFlags()
			if tt.wantErr && err == nil {
				t.Fatal("validateBuildFlags succeeded, want usage error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("validateBuildFlags failed: %v", err)
			}
		})
	}
}

func TestKnownIssueId(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		wantId issue.Id
		wantOk bool
	}{
		{
			name:   "missing dependency jar",
			err:    fmt.Errorf("resolve classpath: %w", builder.ErrJarMissing),
			wantId: issue.DependencyJarMissingId,
			wantOk: true,
		},
		{
			name:   "missing base source tree",
			err:    fmt.Errorf("materialize: %w", overlay.ErrBaseTreeMissing),
			wantId: issue.BaseSourceTreeMissingId,
			wantOk: true,
		},
		{
			name: "plain failure has no catalog entry",
			err:  fmt.Errorf("command kotlinc failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := knownIssueId(tt.err)
			if ok != tt.wantOk {
				t.Fatalf("knownIssueId ok = %v, want %v", ok, tt.wantOk)
			}
			if id != tt.wantId {
				t.Errorf("knownIssueId = %v, want %v", id, tt.wantId)
			}
		})
	}
}

func TestDependenciesPathPrecedence(t *testing.T) {
	origFlag, origCfg := dependenciesDir, cfg
	t.Cleanup(func() { dependenciesDir, cfg = origFlag, origCfg })

	initRootConfig()
	dependenciesDir = ""
	if got := dependenciesPath(); got != cfg.DependenciesDir {
		t.Errorf("dependenciesPath = %q, want configured %q", got, cfg.DependenciesDir)
	}

	dependenciesDir = "/explicit/deps"
	if got := dependenciesPath(); got != "/explicit/deps" {
		t.Errorf("dependenciesPath = %q, want the flag value", got)
	}
}
