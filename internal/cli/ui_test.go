package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/pgfplots/pkg/compile"
)

// captureStdout redirects status lines to a buffer for the rest of the test.
func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })
	return &buf
}

func TestPrintResult(t *testing.T) {
	tests := []struct {
		name string
		res  compile.Result
		want []string
	}{
		{
			name: "fresh",
			res:  compile.Result{Strategy: "external:pdflatex", Duration: 1234567 * time.Microsecond},
			want: []string{"external:pdflatex", "1.235s", "fresh"},
		},
		{
			name: "cached",
			res:  compile.Result{Strategy: "embedded:star-tex", Cached: true},
			want: []string{"embedded:star-tex", "0s", "cached"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureStdout(t)
			printResult(&tt.res)
			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("printResult() = %q, missing %q", out, want)
				}
			}
			if strings.Count(out, "\n") != 1 {
				t.Errorf("printResult() should print one line, got %q", out)
			}
		})
	}
}

func TestPrintFileAndKeyValue(t *testing.T) {
	buf := captureStdout(t)
	printFile("figs/squares.pdf")
	printKeyValue("engine", "pdflatex")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], iconArrow) || !strings.HasSuffix(lines[0], "figs/squares.pdf") {
		t.Errorf("printFile() = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "engine") || !strings.HasSuffix(lines[1], "pdflatex") {
		t.Errorf("printKeyValue() = %q", lines[1])
	}
}
