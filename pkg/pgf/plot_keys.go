package pgf

import "fmt"

// Plot key groups.
const (
	GroupType2D          Group = "type"
	GroupXError          Group = "error bars/x"
	GroupYError          Group = "error bars/y"
	GroupXErrorDirection Group = "error bars/x dir"
	GroupYErrorDirection Group = "error bars/y dir"
	GroupMark            Group = "mark"
	GroupColor           Group = "color"
)

// Type2D selects how a two-dimensional plot is drawn. Bar charts with an
// explicit width use [XBar] and [YBar], which share the same group.
type Type2D int

const (
	SharpPlot Type2D = iota
	SmoothPlot
	ConstLeft
	ConstRight
	ConstMid
	JumpLeft
	JumpRight
	JumpMid
	XComb
	YComb
	OnlyMarks
	XBarInterval
	YBarInterval
)

var type2DNames = map[Type2D]string{
	SharpPlot:    "sharp plot",
	SmoothPlot:   "smooth",
	ConstLeft:    "const plot mark left",
	ConstRight:   "const plot mark right",
	ConstMid:     "const plot mark mid",
	JumpLeft:     "jump mark left",
	JumpRight:    "jump mark right",
	JumpMid:      "jump mark mid",
	XComb:        "xcomb",
	YComb:        "ycomb",
	OnlyMarks:    "only marks",
	XBarInterval: "xbar interval",
	YBarInterval: "ybar interval",
}

// ParseType2D converts a PGFPlots plot type name such as "only marks" into a Type2D.
func ParseType2D(s string) (Type2D, bool) {
	for k, v := range type2DNames {
		if v == s {
			return k, true
		}
	}
	return SharpPlot, false
}

func (Type2D) Group() Group { return GroupType2D }
func (Type2D) plotKey()     {}

// String returns the PGFPlots name. Values outside the named constants render
// as "Type2D(n)" so they stand out in the generated source.
func (t Type2D) String() string {
	if name, ok := type2DNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type2D(%d)", int(t))
}

// XBar draws horizontal bars. Width and Shift are in points.
type XBar struct {
	Width float64
	Shift float64
}

func (XBar) Group() Group { return GroupType2D }
func (b XBar) String() string {
	return fmt.Sprintf("xbar, bar width=%s, bar shift=%s", formatFloat(b.Width), formatFloat(b.Shift))
}
func (XBar) plotKey() {}

// YBar draws vertical bars. Width and Shift are in points.
type YBar struct {
	Width float64
	Shift float64
}

func (YBar) Group() Group { return GroupType2D }
func (b YBar) String() string {
	return fmt.Sprintf("ybar, bar width=%s, bar shift=%s", formatFloat(b.Width), formatFloat(b.Shift))
}
func (YBar) plotKey() {}

// ErrorCharacter states how error values in coordinates are interpreted.
type ErrorCharacter int

const (
	// ErrorAbsolute treats error values as absolute offsets.
	ErrorAbsolute ErrorCharacter = iota
	// ErrorRelative treats error values as fractions of the coordinate.
	ErrorRelative
)

func (c ErrorCharacter) String() string {
	switch c {
	case ErrorAbsolute:
		return "explicit"
	case ErrorRelative:
		return "explicit relative"
	default:
		return fmt.Sprintf("ErrorCharacter(%d)", int(c))
	}
}

// ErrorDirection selects which side of a coordinate error bars extend to.
type ErrorDirection int

const (
	ErrorBoth ErrorDirection = iota
	ErrorPlus
	ErrorMinus
)

func (d ErrorDirection) String() string {
	switch d {
	case ErrorPlus:
		return "plus"
	case ErrorMinus:
		return "minus"
	case ErrorBoth:
		return "both"
	default:
		return fmt.Sprintf("ErrorDirection(%d)", int(d))
	}
}

// XError enables error bars along x using the coordinates' x errors.
type XError ErrorCharacter

func (XError) Group() Group     { return GroupXError }
func (e XError) String() string { return "error bars/x " + ErrorCharacter(e).String() }
func (XError) plotKey()         {}

// YError enables error bars along y using the coordinates' y errors.
type YError ErrorCharacter

func (YError) Group() Group     { return GroupYError }
func (e YError) String() string { return "error bars/y " + ErrorCharacter(e).String() }
func (YError) plotKey()         {}

// XErrorDirection sets the direction of x error bars.
type XErrorDirection ErrorDirection

func (XErrorDirection) Group() Group     { return GroupXErrorDirection }
func (d XErrorDirection) String() string { return "error bars/x dir=" + ErrorDirection(d).String() }
func (XErrorDirection) plotKey()         {}

// YErrorDirection sets the direction of y error bars.
type YErrorDirection ErrorDirection

func (YErrorDirection) Group() Group     { return GroupYErrorDirection }
func (d YErrorDirection) String() string { return "error bars/y dir=" + ErrorDirection(d).String() }
func (YErrorDirection) plotKey()         {}

// Mark sets the marker symbol, e.g. "*", "o" or "square*".
type Mark string

func (Mark) Group() Group     { return GroupMark }
func (m Mark) String() string { return "mark=" + string(m) }
func (Mark) plotKey()         {}

// Color sets the draw color using xcolor syntax, e.g. "blue!60".
type Color string

func (Color) Group() Group     { return GroupColor }
func (c Color) String() string { return "color=" + string(c) }
func (Color) plotKey()         {}
