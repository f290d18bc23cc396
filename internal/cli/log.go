// Package cli implements the pgfplots command-line interface.
//
// This package provides commands for rendering figure files to LaTeX,
// compiling them with a TeX engine, opening the result, serving the same
// operations over HTTP and managing the artifact cache. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Write the LaTeX source of a figure
//   - compile: Compile a figure or .tex document and copy the artifact out
//   - show: Compile and open the artifact in the default viewer
//   - serve: Run the HTTP API
//   - cache: Manage the artifact cache
//   - config: Show the effective configuration
//
// # Configuration
//
// Settings are read from $XDG_CONFIG_HOME/pgfplots/config.toml (or the file
// named by --config) and overridden by flags.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pgfplots/pkg/compile"
	"github.com/matzehuels/pgfplots/pkg/errors"
)

// newLogger returns a logger writing to w with "15:04:05.00" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times the compilation of one input file.
type progress struct {
	logger *log.Logger
	input  string
	start  time.Time
}

func newProgress(l *log.Logger, input string) *progress {
	return &progress{logger: l, input: filepath.Base(input), start: time.Now()}
}

// done logs a finished compilation at info level, e.g.
// "Compiled squares.yaml strategy=external:pdflatex cached=false elapsed=1.234s".
func (p *progress) done(res *compile.Result) {
	p.logger.Info("Compiled "+p.input,
		"strategy", res.Strategy,
		"cached", res.Cached,
		"elapsed", time.Since(p.start).Round(time.Millisecond))
}

// failed logs where a compilation stopped. The user-facing error is printed
// by main, so this only adds detail at debug level.
func (p *progress) failed(res *compile.Result, err error) {
	p.logger.Debug("Compilation failed",
		"input", p.input,
		"state", res.State,
		"code", errors.GetCode(err),
		"workspace", res.Workspace)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by the root command, or
// log.Default() outside a command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
