package pgf

import (
	"io"
	"slices"
	"strings"
)

// Plot2D is a two-dimensional \addplot command.
//
// It renders as:
//
//	\addplot[
//		<key>,
//	] coordinates {
//		(x,y)
//	};
//
// The options clause is omitted when the plot has no keys.
type Plot2D struct {
	// Coordinates are rendered in order, one per line.
	Coordinates Series

	keys Keys[PlotKey]
}

// NewPlot2D creates an empty plot.
func NewPlot2D() *Plot2D {
	return &Plot2D{}
}

// AddKey adds a key, evicting any key of the same group.
func (p *Plot2D) AddKey(k PlotKey) {
	p.keys.Add(k)
}

// Keys returns a copy of the plot's keys in order.
func (p *Plot2D) Keys() []PlotKey {
	return p.keys.List()
}

// Picture wraps a deep copy of the plot in a fresh axis and picture.
func (p *Plot2D) Picture() *Picture {
	pic := NewPicture()
	pic.Axes = append(pic.Axes, Axis{Plots: []Plot2D{p.clone()}})
	return pic
}

func (p *Plot2D) clone() Plot2D {
	return Plot2D{
		Coordinates: slices.Clone(p.Coordinates),
		keys:        Keys[PlotKey]{list: slices.Clone(p.keys.list)},
	}
}

// String renders the plot.
func (p *Plot2D) String() string {
	var b strings.Builder
	p.write(&b)
	return b.String()
}

// WriteTo writes the rendered plot to w.
func (p *Plot2D) WriteTo(w io.Writer) (int64, error) {
	return writeString(w, p.String())
}

func (p *Plot2D) write(b *strings.Builder) {
	indent(b, depthPlot)
	b.WriteString(`\addplot`)
	writeOptions(b, depthPlot, p.keys.list)
	b.WriteString(" coordinates {\n")
	for _, c := range p.Coordinates {
		indent(b, depthPlot+1)
		c.write(b)
		b.WriteByte('\n')
	}
	indent(b, depthPlot)
	b.WriteString("};")
}
