// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	cause := errors.New("executable file not found in $PATH")

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "load configuration"},
			want: "failed to load configuration",
		},
		{
			name: "operation and resource",
			err:  &ActionableError{Operation: "locate the Kotlin compiler", Resource: "kotlinc"},
			want: "failed to locate the Kotlin compiler: kotlinc",
		},
		{
			name: "full context",
			err:  &ActionableError{Operation: "locate the Kotlin compiler", Resource: "kotlinc", Cause: cause},
			want: "failed to locate the Kotlin compiler: kotlinc: executable file not found in $PATH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorContextBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := NewErrorContext().
		WithOperation("resolve compile classpath").
		WithResource("/deps").
		WithSuggestion("Check the --dependencies flag").
		WithSuggestion("Fetch the dependency jars").
		Wrap(cause).
		BuildError()

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("BuildError returned %T, want *ActionableError", err)
	}
	if !errors.Is(err, cause) {
		t.Error("built error does not unwrap to its cause")
	}
	if len(ae.Suggestions) != 2 {
		t.Errorf("got %d suggestions, want 2", len(ae.Suggestions))
	}

	formatted := ae.Format(false)
	if !strings.Contains(formatted, "• Check the --dependencies flag") {
		t.Errorf("Format is missing suggestions: %q", formatted)
	}
	if strings.Contains(formatted, "Error chain") {
		t.Errorf("non-verbose Format includes the error chain: %q", formatted)
	}
	if verbose := ae.Format(true); !strings.Contains(verbose, "Error chain") {
		t.Errorf("verbose Format is missing the error chain: %q", verbose)
	}
}

func TestErrorContextRequiresOperation(t *testing.T) {
	if err := NewErrorContext().WithResource("kotlinc").BuildError(); err != nil {
		t.Errorf("BuildError without operation = %v, want nil", err)
	}
}

func TestWrapWithOperation(t *testing.T) {
	if WrapWithOperation(nil, "anything") != nil {
		t.Error("WrapWithOperation(nil) should return nil")
	}
	cause := errors.New("boom")
	ae := WrapWithOperation(cause, "apply version overlay")
	if ae == nil || !errors.Is(ae, cause) {
		t.Errorf("WrapWithOperation did not wrap the cause: %v", ae)
	}
}

func TestCatalogLookup(t *testing.T) {
	known := Lookup(KotlincNotFoundId)
	if known == nil {
		t.Fatal("KotlincNotFoundId missing from the catalog")
	}
	if known.Id() != KotlincNotFoundId {
		t.Errorf("Id() = %v, want %v", known.Id(), KotlincNotFoundId)
	}
	if !strings.Contains(string(known.MarkdownMsg()), "kotlinc") {
		t.Error("remediation text does not mention kotlinc")
	}
	if Lookup(Id(9999)) != nil {
		t.Error("Lookup returned an issue for an unknown id")
	}
}

func TestIssueRender(t *testing.T) {
	orig := render
	t.Cleanup(func() { render = orig })
	render = func(in, stylePath string) (string, error) {
		return "rendered:" + in, nil
	}

	out, err := Lookup(DependencyJarMissingId).Render("dark")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.HasPrefix(out, "rendered:") {
		t.Errorf("Render did not go through the renderer: %q", out)
	}
}
