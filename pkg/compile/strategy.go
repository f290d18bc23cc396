package compile

import (
	"context"
	stderrors "errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/matzehuels/pgfplots/pkg/errors"
)

// Strategy compiles a document staged in a workspace.
//
// Dispatch must leave its artifact at ws.File(Extension()). Verifying that
// the artifact exists is the Runner's job, so a Strategy only reports
// failures it observes directly.
type Strategy interface {
	// Name identifies the strategy in logs and cache keys.
	Name() string
	// Extension is the artifact extension without a dot, e.g. "pdf".
	Extension() string
	// Dispatch runs the compilation.
	Dispatch(ctx context.Context, ws *Workspace, document string) error
}

// Common LaTeX engines for [External].
const (
	PdfLaTeX = "pdflatex"
	LuaLaTeX = "lualatex"
	XeLaTeX  = "xelatex"
)

// DefaultEngine is the engine used when none is configured.
const DefaultEngine = PdfLaTeX

// EngineArgs are the arguments passed to every external engine before the
// source file name.
var EngineArgs = []string{"-interaction=batchmode", "-halt-on-error", "-jobname=" + JobName}

// External runs a TeX engine executable as a subprocess.
type External struct {
	// Engine is an executable name resolved through PATH, or an absolute path.
	Engine string
}

// NewExternal returns an External strategy for engine, or DefaultEngine if
// engine is empty.
func NewExternal(engine string) *External {
	if engine == "" {
		engine = DefaultEngine
	}
	return &External{Engine: engine}
}

func (e *External) Name() string      { return "external:" + filepath.Base(e.Engine) }
func (e *External) Extension() string { return "pdf" }

// Dispatch writes the document verbatim to figure.tex and runs the engine in
// the workspace. Engine output is discarded. A missing executable or a failed
// start is ErrCodeLaunch; a non-zero exit is ErrCodeCompilation. Cancelling
// ctx kills the engine.
func (e *External) Dispatch(ctx context.Context, ws *Workspace, document string) error {
	if err := os.WriteFile(ws.Source(), []byte(document), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", ws.Source())
	}

	path, err := exec.LookPath(e.Engine)
	if err != nil {
		return errors.Wrap(errors.ErrCodeLaunch, err, "%s not found", e.Engine)
	}

	args := append(append([]string{}, EngineArgs...), filepath.Base(ws.Source()))
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = ws.Dir

	if err := cmd.Start(); err != nil {
		return errors.Wrap(errors.ErrCodeLaunch, err, "start %s", e.Engine)
	}
	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return errors.Wrap(errors.ErrCodeCompilation, ctx.Err(), "%s interrupted", e.Engine)
		}
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			return errors.Wrap(errors.ErrCodeCompilation, err, "%s exited with status %d (see %s)",
				e.Engine, exitErr.ExitCode(), ws.File("log"))
		}
		return errors.Wrap(errors.ErrCodeLaunch, err, "run %s", e.Engine)
	}
	return nil
}

// EmbeddedFunc compiles a normalized document in process and returns the
// artifact bytes.
type EmbeddedFunc func(ctx context.Context, document string) ([]byte, error)

// Embedded runs an in-process compiler.
type Embedded struct {
	// Label names the compiler in logs and cache keys.
	Label string
	// Ext is the artifact extension the compiler produces.
	Ext string
	// Func does the work.
	Func EmbeddedFunc
}

func (e *Embedded) Name() string      { return "embedded:" + e.Label }
func (e *Embedded) Extension() string { return e.Ext }

// Dispatch normalizes the document, calls Func and writes its output to
// figure.<ext>. Any compiler error is ErrCodeCompilation.
func (e *Embedded) Dispatch(ctx context.Context, ws *Workspace, document string) error {
	if e.Func == nil {
		return errors.New(errors.ErrCodeInternal, "embedded compiler %q has no function", e.Label)
	}
	data, err := e.Func(ctx, Normalize(document))
	if err != nil {
		return errors.Wrap(errors.ErrCodeCompilation, err, "%s failed", e.Label)
	}
	out := ws.File(e.Ext)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", out)
	}
	return nil
}

var normalizer = strings.NewReplacer("\n", " ", "\t", " ")

// Normalize replaces every newline and tab with a single space.
func Normalize(document string) string {
	return normalizer.Replace(document)
}
