package pgf

import "fmt"

// Axis key groups.
const (
	GroupTitle     Group = "title"
	GroupXLabel    Group = "xlabel"
	GroupYLabel    Group = "ylabel"
	GroupXMode     Group = "xmode"
	GroupYMode     Group = "ymode"
	GroupXMin      Group = "xmin"
	GroupXMax      Group = "xmax"
	GroupYMin      Group = "ymin"
	GroupYMax      Group = "ymax"
	GroupWidth     Group = "width"
	GroupHeight    Group = "height"
	GroupAxisLines Group = "axis lines"
	GroupLegendPos Group = "legend pos"
)

// Title sets the axis title. The text is wrapped in braces but not escaped.
type Title string

func (Title) Group() Group     { return GroupTitle }
func (t Title) String() string { return fmt.Sprintf("title={%s}", string(t)) }
func (Title) axisKey()         {}

// XLabel sets the label of the x axis.
type XLabel string

func (XLabel) Group() Group     { return GroupXLabel }
func (l XLabel) String() string { return fmt.Sprintf("xlabel={%s}", string(l)) }
func (XLabel) axisKey()         {}

// YLabel sets the label of the y axis.
type YLabel string

func (YLabel) Group() Group     { return GroupYLabel }
func (l YLabel) String() string { return fmt.Sprintf("ylabel={%s}", string(l)) }
func (YLabel) axisKey()         {}

// Scale is the scaling of an axis.
type Scale int

const (
	// ScaleNormal is a linear axis.
	ScaleNormal Scale = iota
	// ScaleLog is a logarithmic axis.
	ScaleLog
)

func (s Scale) String() string {
	switch s {
	case ScaleLog:
		return "log"
	default:
		return "normal"
	}
}

// ParseScale converts "normal" or "log" into a Scale.
func ParseScale(s string) (Scale, bool) {
	switch s {
	case "normal", "linear":
		return ScaleNormal, true
	case "log":
		return ScaleLog, true
	}
	return ScaleNormal, false
}

// XMode sets the scaling of the x axis.
type XMode Scale

func (XMode) Group() Group     { return GroupXMode }
func (m XMode) String() string { return "xmode=" + Scale(m).String() }
func (XMode) axisKey()         {}

// YMode sets the scaling of the y axis.
type YMode Scale

func (YMode) Group() Group     { return GroupYMode }
func (m YMode) String() string { return "ymode=" + Scale(m).String() }
func (YMode) axisKey()         {}

// XMin sets the lower limit of the x axis.
type XMin float64

func (XMin) Group() Group     { return GroupXMin }
func (v XMin) String() string { return "xmin=" + formatFloat(float64(v)) }
func (XMin) axisKey()         {}

// XMax sets the upper limit of the x axis.
type XMax float64

func (XMax) Group() Group     { return GroupXMax }
func (v XMax) String() string { return "xmax=" + formatFloat(float64(v)) }
func (XMax) axisKey()         {}

// YMin sets the lower limit of the y axis.
type YMin float64

func (YMin) Group() Group     { return GroupYMin }
func (v YMin) String() string { return "ymin=" + formatFloat(float64(v)) }
func (YMin) axisKey()         {}

// YMax sets the upper limit of the y axis.
type YMax float64

func (YMax) Group() Group     { return GroupYMax }
func (v YMax) String() string { return "ymax=" + formatFloat(float64(v)) }
func (YMax) axisKey()         {}

// Width sets the axis width as a TeX dimension such as "8cm".
type Width string

func (Width) Group() Group     { return GroupWidth }
func (w Width) String() string { return "width=" + string(w) }
func (Width) axisKey()         {}

// Height sets the axis height as a TeX dimension such as "6cm".
type Height string

func (Height) Group() Group     { return GroupHeight }
func (h Height) String() string { return "height=" + string(h) }
func (Height) axisKey()         {}

// AxisLines controls where the axis lines are drawn.
type AxisLines int

const (
	AxisLinesBox AxisLines = iota
	AxisLinesLeft
	AxisLinesMiddle
	AxisLinesRight
	AxisLinesNone
)

var axisLinesNames = map[AxisLines]string{
	AxisLinesBox:    "box",
	AxisLinesLeft:   "left",
	AxisLinesMiddle: "middle",
	AxisLinesRight:  "right",
	AxisLinesNone:   "none",
}

// ParseAxisLines converts a PGFPlots axis lines name into an AxisLines.
func ParseAxisLines(s string) (AxisLines, bool) {
	for k, v := range axisLinesNames {
		if v == s {
			return k, true
		}
	}
	return AxisLinesBox, false
}

func (AxisLines) Group() Group { return GroupAxisLines }
func (AxisLines) axisKey()     {}

func (a AxisLines) String() string {
	if name, ok := axisLinesNames[a]; ok {
		return "axis lines=" + name
	}
	return fmt.Sprintf("axis lines=AxisLines(%d)", int(a))
}

// LegendPos places the legend, e.g. "north west" or "outer north east".
type LegendPos string

func (LegendPos) Group() Group     { return GroupLegendPos }
func (p LegendPos) String() string { return "legend pos=" + string(p) }
func (LegendPos) axisKey()         {}
