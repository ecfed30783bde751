// SPDX-License-Identifier: MPL-2.0

package kotlin

import (
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr bool
	}{
		{
			name:  "plain release",
			input: "1.7.20",
			want:  Version{Major: 1, Minor: 7, Patch: 20},
		},
		{
			name:  "zero patch",
			input: "2.0.0",
			want:  Version{Major: 2, Minor: 0, Patch: 0},
		},
		{
			name:  "pre-release suffix",
			input: "2.0.0-Beta1",
			want:  Version{Major: 2, Minor: 0, Patch: 0, Suffix: "Beta1"},
		},
		{
			name:    "missing patch",
			input:   "1.7",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "not-a-version",
			wantErr: true,
		},
		{
			name:    "suffix starting with digit",
			input:   "1.7.20-1beta",
			wantErr: true,
		},
		{
			name:    "trailing content",
			input:   "1.7.20.5",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseVersion(%q) succeeded, want error", tt.input)
				}
				if !errors.Is(err, ErrMalformedVersion) {
					t.Errorf("error %v does not wrap ErrMalformedVersion", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVersion(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "equal", a: "1.7.20", b: "1.7.20", want: 0},
		{name: "patch order", a: "1.7.0", b: "1.7.20", want: -1},
		{name: "minor order", a: "1.6.20", b: "1.7.0", want: -1},
		{name: "major order", a: "2.0.0", b: "1.9.20", want: 1},
		{name: "double digit beats single", a: "1.5.9", b: "1.5.10", want: -1},
		{name: "pre-release before release", a: "2.0.0-Beta1", b: "2.0.0", want: -1},
		{name: "pre-releases compare lexically", a: "2.0.0-Beta1", b: "2.0.0-Beta2", want: -1},
		{name: "equal pre-releases", a: "2.0.0-RC1", b: "2.0.0-RC1", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustParse(t, tt.a)
			b := mustParse(t, tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := b.Compare(a); got != -tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
			wantLTE := tt.want <= 0
			if got := a.LessThanOrEqual(b); got != wantLTE {
				t.Errorf("LessThanOrEqual(%s, %s) = %v, want %v", tt.a, tt.b, got, wantLTE)
			}
		})
	}
}

func TestVersionFormatting(t *testing.T) {
	tests := []struct {
		input       string
		wantString  string
		wantLang    string
		wantDirName string
	}{
		{input: "1.7.20", wantString: "1.7.20", wantLang: "1.7", wantDirName: "v_1_7_20"},
		{input: "1.5.0", wantString: "1.5.0", wantLang: "1.5", wantDirName: "v_1_5_0"},
		{input: "2.0.0-Beta1", wantString: "2.0.0-Beta1", wantLang: "2.0", wantDirName: "v_2_0_0-Beta1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v := mustParse(t, tt.input)
			if got := v.String(); got != tt.wantString {
				t.Errorf("String() = %q, want %q", got, tt.wantString)
			}
			if got := v.LanguageVersion(); got != tt.wantLang {
				t.Errorf("LanguageVersion() = %q, want %q", got, tt.wantLang)
			}
			if got := v.DirName(); got != tt.wantDirName {
				t.Errorf("DirName() = %q, want %q", got, tt.wantDirName)
			}
		})
	}
}

func mustParse(t *testing.T, s string) Version {
	t.Helper()
	v, err := ParseVersion(s)
	if err != nil {
		t.Fatalf("ParseVersion(%q) failed: %v", s, err)
	}
	return v
}
