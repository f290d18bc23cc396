package pgf

import (
	"strconv"
	"strings"
)

// Coordinate2D is a single data point of a two-dimensional plot. ErrorX and
// ErrorY are optional; when either is set the coordinate renders with an
// explicit error clause and the missing one is written as 0.
type Coordinate2D struct {
	X, Y   float64
	ErrorX *float64
	ErrorY *float64
}

// Coord returns a coordinate without error values.
func Coord(x, y float64) Coordinate2D {
	return Coordinate2D{X: x, Y: y}
}

// WithXError returns a copy of c with an x error.
func (c Coordinate2D) WithXError(e float64) Coordinate2D {
	c.ErrorX = &e
	return c
}

// WithYError returns a copy of c with a y error.
func (c Coordinate2D) WithYError(e float64) Coordinate2D {
	c.ErrorY = &e
	return c
}

// HasError reports whether any error value is set.
func (c Coordinate2D) HasError() bool {
	return c.ErrorX != nil || c.ErrorY != nil
}

// String renders "(x,y)" or "(x,y) +- (ex,ey)".
func (c Coordinate2D) String() string {
	var b strings.Builder
	c.write(&b)
	return b.String()
}

func (c Coordinate2D) write(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(formatFloat(c.X))
	b.WriteByte(',')
	b.WriteString(formatFloat(c.Y))
	b.WriteByte(')')
	if !c.HasError() {
		return
	}
	b.WriteString(" +- (")
	b.WriteString(formatFloat(deref(c.ErrorX)))
	b.WriteByte(',')
	b.WriteString(formatFloat(deref(c.ErrorY)))
	b.WriteByte(')')
}

// Series is the ordered data of one plot. Order, duplicates and count are
// rendered exactly as given.
type Series []Coordinate2D

// SeriesFrom builds a series by pairing xs with f(x).
func SeriesFrom(xs []float64, f func(float64) float64) Series {
	s := make(Series, len(xs))
	for i, x := range xs {
		s[i] = Coord(x, f(x))
	}
	return s
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// formatFloat writes the shortest decimal representation that round-trips,
// without an exponent: 1, 0.5, -2.25, 1000000.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
