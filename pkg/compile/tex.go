package compile

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"star-tex.org/x/tex"
)

// StarTeX returns an embedded strategy backed by the pure Go plain TeX engine
// from star-tex.org. It produces DVI.
//
// The engine understands plain TeX only. Documents using \documentclass and
// pgfplots need an external LaTeX engine; StarTeX is meant for hand-written
// plain TeX and for environments without a TeX installation.
func StarTeX() *Embedded {
	return &Embedded{Label: "star-tex", Ext: "dvi", Func: TeX}
}

// TeX typesets document with star-tex and returns the DVI output. The
// engine's terminal log is included in the error on failure.
func TeX(ctx context.Context, document string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var dvi, log bytes.Buffer
	engine := tex.NewEngine(&log, bytes.NewReader(nil))
	if err := engine.Process(&dvi, strings.NewReader(document)); err != nil {
		return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(log.String()))
	}
	return dvi.Bytes(), nil
}
