package pgf

import (
	"io"
	"strings"
)

// Indentation depth of each environment in the rendered source.
const (
	depthPicture = 0
	depthAxis    = 1
	depthPlot    = 2
)

// writeOptions writes the bracketed options clause, one key per line with a
// trailing comma. Nothing is written for an empty key list.
func writeOptions[K Key](b *strings.Builder, depth int, keys []K) {
	if len(keys) == 0 {
		return
	}
	b.WriteString("[\n")
	for _, k := range keys {
		indent(b, depth+1)
		b.WriteString(k.String())
		b.WriteString(",\n")
	}
	indent(b, depth)
	b.WriteByte(']')
}

func indent(b *strings.Builder, depth int) {
	for range depth {
		b.WriteByte('\t')
	}
}

// writeString adapts a rendered node to io.WriterTo.
func writeString(w io.Writer, s string) (int64, error) {
	n, err := io.WriteString(w, s)
	return int64(n), err
}
