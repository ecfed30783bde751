// SPDX-License-Identifier: MPL-2.0

package builder

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTransformToEmbeddable(t *testing.T) {
	dir := t.TempDir()

	withImports := filepath.Join(dir, "PsiUser.kt")
	writeSource(t, withImports, `package com.github.codeql

import com.intellij.psi.PsiElement
import com.intellij.openapi.Disposable
import org.jetbrains.kotlin.ir.IrElement

class PsiUser
`)

	withoutImports := filepath.Join(dir, "Plain.kt")
	writeSource(t, withoutImports, `package com.github.codeql

class Plain
`)

	if err := TransformToEmbeddable([]string{withImports, withoutImports}); err != nil {
		t.Fatalf("TransformToEmbeddable failed: %v", err)
	}

	got := readSource(t, withImports)
	want := `package com.github.codeql

import org.jetbrains.kotlin.com.intellij.psi.PsiElement
import org.jetbrains.kotlin.com.intellij.openapi.Disposable
import org.jetbrains.kotlin.ir.IrElement

class PsiUser
`
	if got != want {
		t.Errorf("transformed source = %q, want %q", got, want)
	}

	if got := readSource(t, withoutImports); got != "package com.github.codeql\n\nclass Plain\n" {
		t.Errorf("source without IntelliJ imports changed: %q", got)
	}
}

func TestTransformToEmbeddableIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "PsiUser.kt")
	writeSource(t, src, "import com.intellij.psi.PsiElement\n")

	for i := 0; i < 2; i++ {
		if err := TransformToEmbeddable([]string{src}); err != nil {
			t.Fatalf("TransformToEmbeddable failed on pass %d: %v", i+1, err)
		}
	}
	if got := readSource(t, src); got != "import org.jetbrains.kotlin.com.intellij.psi.PsiElement\n" {
		t.Errorf("double transform corrupted the import: %q", got)
	}
}

func TestTransformToEmbeddableMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.kt")
	if err := TransformToEmbeddable([]string{missing}); err == nil {
		t.Fatal("TransformToEmbeddable succeeded for a missing file, want error")
	}
}

func writeSource(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readSource(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(content)
}
