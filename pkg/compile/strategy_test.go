package compile

import (
	"context"
	stderrors "errors"
	"os"
	"strings"
	"testing"

	"github.com/matzehuels/pgfplots/pkg/errors"
)

func TestNormalize(t *testing.T) {
	in := "\\begin{tikzpicture}\n\t\\begin{axis}\n\t\\end{axis}\n\\end{tikzpicture}"
	want := "\\begin{tikzpicture}  \\begin{axis}  \\end{axis} \\end{tikzpicture}"
	if got := Normalize(in); got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
	if got := Normalize("a b"); got != "a b" {
		t.Errorf("Normalize changed plain text: %q", got)
	}
}

func TestEmbeddedDispatchNormalizes(t *testing.T) {
	ws, err := PrepareWorkspace(t.TempDir(), ScratchUnique)
	if err != nil {
		t.Fatal(err)
	}
	var seen string
	s := &Embedded{Label: "fake", Ext: "pdf", Func: func(_ context.Context, doc string) ([]byte, error) {
		seen = doc
		return []byte("artifact"), nil
	}}

	if err := s.Dispatch(context.Background(), ws, "a\n\tb"); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if seen != "a  b" {
		t.Errorf("compiler saw %q", seen)
	}
	data, err := os.ReadFile(ws.File("pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "artifact" {
		t.Errorf("artifact = %q", data)
	}
}

func TestEmbeddedDispatchError(t *testing.T) {
	ws, err := PrepareWorkspace(t.TempDir(), ScratchUnique)
	if err != nil {
		t.Fatal(err)
	}
	s := &Embedded{Label: "fake", Ext: "pdf", Func: func(context.Context, string) ([]byte, error) {
		return nil, stderrors.New("undefined control sequence")
	}}
	err = s.Dispatch(context.Background(), ws, "x")
	if !errors.Is(err, errors.ErrCodeCompilation) {
		t.Fatalf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeCompilation)
	}
	if !strings.Contains(err.Error(), "undefined control sequence") {
		t.Errorf("error lost cause: %v", err)
	}
}

func TestExternalMissingEngine(t *testing.T) {
	ws, err := PrepareWorkspace(t.TempDir(), ScratchUnique)
	if err != nil {
		t.Fatal(err)
	}
	s := NewExternal("pgfplots-test-no-such-engine")
	err = s.Dispatch(context.Background(), ws, "doc")
	if !errors.Is(err, errors.ErrCodeLaunch) {
		t.Fatalf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeLaunch)
	}
	data, err := os.ReadFile(ws.Source())
	if err != nil {
		t.Fatalf("source not staged: %v", err)
	}
	if string(data) != "doc" {
		t.Errorf("staged source = %q", data)
	}
}

func TestStrategyNames(t *testing.T) {
	if got := NewExternal("").Name(); got != "external:pdflatex" {
		t.Errorf("default external name = %s", got)
	}
	if got := NewExternal("/usr/bin/lualatex").Name(); got != "external:lualatex" {
		t.Errorf("absolute external name = %s", got)
	}
	if got := StarTeX().Name(); got != "embedded:star-tex" {
		t.Errorf("star-tex name = %s", got)
	}
	if got := StarTeX().Extension(); got != "dvi" {
		t.Errorf("star-tex extension = %s", got)
	}
}

func TestTeXPlain(t *testing.T) {
	dvi, err := TeX(context.Background(), `\nopagenumbers hello \bye`)
	if err != nil {
		t.Fatalf("TeX: %v", err)
	}
	// DVI files start with the pre opcode.
	if len(dvi) == 0 || dvi[0] != 247 {
		t.Errorf("output is not DVI (%d bytes)", len(dvi))
	}
}

func TestTeXCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := TeX(ctx, `\bye`); err == nil {
		t.Error("expected error for cancelled context")
	}
}
