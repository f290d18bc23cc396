package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/pgfplots/pkg/errors"
)

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	tex := filepath.Join(dir, "doc.tex")
	if err := os.WriteFile(tex, []byte("\\documentclass{article}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := loadDocument(tex)
	if err != nil {
		t.Fatalf("loadDocument(.tex): %v", err)
	}
	if got != "\\documentclass{article}\n" {
		t.Errorf(".tex document altered: %q", got)
	}

	fig := filepath.Join(dir, "fig.json")
	if err := os.WriteFile(fig, []byte(`{"axes":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = loadDocument(fig)
	if err != nil {
		t.Fatalf("loadDocument(.json): %v", err)
	}
	want := "\\documentclass{standalone}\n\\usepackage{pgfplots}\n\\begin{document}\n\\begin{tikzpicture}\n\\end{tikzpicture}\n\\end{document}"
	if got != want {
		t.Errorf("figure document = %q, want %q", got, want)
	}

	if _, err := loadDocument(filepath.Join(dir, "missing.tex")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing .tex error = %v", err)
	}
}

func TestCopyFileCreatesParents(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.pdf")
	if err := os.WriteFile(src, []byte("pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(dir, "out", "nested", "b.pdf")
	if err := copyFile(src, dst); err != nil {
		t.Fatalf("copyFile: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil || string(data) != "pdf" {
		t.Errorf("copied data = %q, %v", data, err)
	}
}
