package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"

	"github.com/matzehuels/pgfplots/pkg/compile"
	"github.com/matzehuels/pgfplots/pkg/errors"
)

const squareFigure = `{"axes":[{"title":"Squares","plots":[{"coordinates":[[0,0],[1,1]]}]}]}`

func newTestServer(t *testing.T, fn compile.EmbeddedFunc) (*Server, string) {
	t.Helper()
	root := t.TempDir()
	s := New(Config{
		Strategy: &compile.Embedded{Label: "fake", Ext: "pdf", Func: fn},
		TempRoot: root,
		Logger:   log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel}),
	})
	t.Cleanup(func() { s.Close() })
	return s, root
}

func okCompiler(context.Context, string) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not JSON: %v (%q)", err, rec.Body.String())
	}
	return body
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, okCompiler)
	rec := do(t, s, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRender(t *testing.T) {
	s, _ := newTestServer(t, okCompiler)

	rec := do(t, s, http.MethodPost, "/v1/render", squareFigure)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "\\documentclass{standalone}\n") {
		t.Errorf("render is not a standalone document: %q", body)
	}
	if !strings.Contains(body, "title={Squares}") {
		t.Errorf("render lost the title: %q", body)
	}

	rec = do(t, s, http.MethodPost, "/v1/render?standalone=false", squareFigure)
	if !strings.HasPrefix(rec.Body.String(), "\\begin{tikzpicture}") {
		t.Errorf("standalone=false body = %q", rec.Body.String())
	}
}

func TestRenderBadRequests(t *testing.T) {
	s, _ := newTestServer(t, okCompiler)
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"empty", "", errors.ErrCodeInvalidInput},
		{"malformed", "{", errors.ErrCodeInvalidFormat},
		{"unknown field", `{"axes":[],"colour":1}`, errors.ErrCodeInvalidFormat},
		{"unknown type", `{"axes":[{"plots":[{"type":"wiggly"}]}]}`, errors.ErrCodeInvalidInput},
		{"data file", `{"axes":[{"plots":[{"data":{"file":"/etc/passwd"}}]}]}`, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/v1/render", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if got := decodeError(t, rec).Code; got != tt.code {
				t.Errorf("code = %s, want %s", got, tt.code)
			}
		})
	}
}

func TestCompileReturnsArtifactAndCleansUp(t *testing.T) {
	s, root := newTestServer(t, okCompiler)

	rec := do(t, s, http.MethodPost, "/v1/compile", squareFigure)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %s", ct)
	}
	if rec.Body.String() != "%PDF-fake" {
		t.Errorf("body = %q", rec.Body.String())
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("workspace left behind: %d entries", len(entries))
	}
}

func TestCompileFailure(t *testing.T) {
	s, _ := newTestServer(t, func(context.Context, string) ([]byte, error) {
		return nil, stderrors.New("! Undefined control sequence.")
	})

	rec := do(t, s, http.MethodPost, "/v1/compile", squareFigure)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeError(t, rec).Code; got != errors.ErrCodeCompilation {
		t.Errorf("code = %s", got)
	}
}

func TestStatusFor(t *testing.T) {
	tests := map[errors.Code]int{
		errors.ErrCodeInvalidInput:    http.StatusBadRequest,
		errors.ErrCodeCompilation:     http.StatusUnprocessableEntity,
		errors.ErrCodeLaunch:          http.StatusServiceUnavailable,
		errors.ErrCodeArtifactMissing: http.StatusBadGateway,
		errors.ErrCodeIO:              http.StatusInternalServerError,
	}
	for code, want := range tests {
		if got := statusFor(code); got != want {
			t.Errorf("statusFor(%s) = %d, want %d", code, got, want)
		}
	}
}

func TestRenderWithDataDir(t *testing.T) {
	dataDir := t.TempDir()
	if err := os.WriteFile(dataDir+"/sq.csv", []byte("1,1\n2,4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(Config{
		Strategy: &compile.Embedded{Label: "fake", Ext: "pdf", Func: okCompiler},
		TempRoot: t.TempDir(),
		DataDir:  dataDir,
		Logger:   log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel}),
	})
	defer s.Close()

	rec := do(t, s, http.MethodPost, "/v1/render", `{"axes":[{"plots":[{"data":{"file":"sq.csv"}}]}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "(2,4)") {
		t.Errorf("data not rendered: %q", rec.Body.String())
	}

	rec = do(t, s, http.MethodPost, "/v1/render", `{"axes":[{"plots":[{"data":{"file":"../secret.csv"}}]}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("traversal status = %d", rec.Code)
	}
	if got := decodeError(t, rec).Code; got != errors.ErrCodeInvalidPath {
		t.Errorf("traversal code = %s", got)
	}
}
