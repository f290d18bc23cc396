package pgf

import (
	"io"
	"slices"
	"strings"
)

// Axis is a PGFPlots axis environment holding plots.
//
// It renders as:
//
//	\begin{axis}[
//		<key>,
//	]
//		<plot>
//		\addlegendentry{<entry>}
//	\end{axis}
type Axis struct {
	// Plots are rendered in order.
	Plots []Plot2D
	// Legend entries are rendered after the plots and matched to them by
	// position.
	Legend []string

	keys Keys[AxisKey]
}

// NewAxis creates an empty axis.
func NewAxis() *Axis {
	return &Axis{}
}

// AddKey adds a key, evicting any key of the same group.
func (a *Axis) AddKey(k AxisKey) {
	a.keys.Add(k)
}

// Keys returns a copy of the axis keys in order.
func (a *Axis) Keys() []AxisKey {
	return a.keys.List()
}

// SetTitle is shorthand for AddKey(Title(title)).
func (a *Axis) SetTitle(title string) {
	a.AddKey(Title(title))
}

// SetXLabel is shorthand for AddKey(XLabel(label)).
func (a *Axis) SetXLabel(label string) {
	a.AddKey(XLabel(label))
}

// SetYLabel is shorthand for AddKey(YLabel(label)).
func (a *Axis) SetYLabel(label string) {
	a.AddKey(YLabel(label))
}

// AddLegendEntry appends a legend entry. The text is not escaped.
func (a *Axis) AddLegendEntry(text string) {
	a.Legend = append(slices.Clip(a.Legend), text)
}

// Picture wraps a deep copy of the axis in a fresh picture. Changes to the
// picture do not affect a.
func (a *Axis) Picture() *Picture {
	p := NewPicture()
	p.Axes = append(p.Axes, a.clone())
	return p
}

func (a *Axis) clone() Axis {
	c := Axis{
		Plots:  make([]Plot2D, len(a.Plots)),
		Legend: slices.Clone(a.Legend),
		keys:   Keys[AxisKey]{list: slices.Clone(a.keys.list)},
	}
	for i := range a.Plots {
		c.Plots[i] = a.Plots[i].clone()
	}
	return c
}

// String renders the axis environment.
func (a *Axis) String() string {
	var b strings.Builder
	a.write(&b)
	return b.String()
}

// WriteTo writes the rendered axis to w.
func (a *Axis) WriteTo(w io.Writer) (int64, error) {
	return writeString(w, a.String())
}

func (a *Axis) write(b *strings.Builder) {
	indent(b, depthAxis)
	b.WriteString(`\begin{axis}`)
	writeOptions(b, depthAxis, a.keys.list)
	b.WriteByte('\n')
	for i := range a.Plots {
		a.Plots[i].write(b)
		b.WriteByte('\n')
	}
	for _, entry := range a.Legend {
		indent(b, depthAxis+1)
		b.WriteString(`\addlegendentry{`)
		b.WriteString(entry)
		b.WriteString("}\n")
	}
	indent(b, depthAxis)
	b.WriteString(`\end{axis}`)
}
