package figure

import (
	"fmt"
	"path/filepath"

	"github.com/matzehuels/pgfplots/pkg/errors"
	"github.com/matzehuels/pgfplots/pkg/pgf"
)

// Build converts f into a picture. dir resolves relative data files.
func (f *Figure) Build(dir string) (*pgf.Picture, error) {
	pic := pgf.NewPicture()
	if f.Scale != nil {
		pic.AddKey(pgf.PictureScale(*f.Scale))
	}
	for _, k := range f.Keys {
		pic.AddKey(pgf.Custom(k))
	}
	for i := range f.Axes {
		axis, err := f.Axes[i].build(dir)
		if err != nil {
			return nil, fmt.Errorf("axes[%d]: %w", i, err)
		}
		pic.Axes = append(pic.Axes, *axis)
	}
	return pic, nil
}

func (a *Axis) build(dir string) (*pgf.Axis, error) {
	axis := pgf.NewAxis()
	if a.Title != "" {
		axis.SetTitle(a.Title)
	}
	if a.XLabel != "" {
		axis.SetXLabel(a.XLabel)
	}
	if a.YLabel != "" {
		axis.SetYLabel(a.YLabel)
	}
	if a.XMode != "" {
		s, ok := pgf.ParseScale(a.XMode)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "unknown xmode: %s", a.XMode)
		}
		axis.AddKey(pgf.XMode(s))
	}
	if a.YMode != "" {
		s, ok := pgf.ParseScale(a.YMode)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "unknown ymode: %s", a.YMode)
		}
		axis.AddKey(pgf.YMode(s))
	}
	if a.XMin != nil {
		axis.AddKey(pgf.XMin(*a.XMin))
	}
	if a.XMax != nil {
		axis.AddKey(pgf.XMax(*a.XMax))
	}
	if a.YMin != nil {
		axis.AddKey(pgf.YMin(*a.YMin))
	}
	if a.YMax != nil {
		axis.AddKey(pgf.YMax(*a.YMax))
	}
	if a.Width != "" {
		axis.AddKey(pgf.Width(a.Width))
	}
	if a.Height != "" {
		axis.AddKey(pgf.Height(a.Height))
	}
	if a.AxisLines != "" {
		l, ok := pgf.ParseAxisLines(a.AxisLines)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "unknown axis_lines: %s", a.AxisLines)
		}
		axis.AddKey(l)
	}
	if a.LegendPos != "" {
		axis.AddKey(pgf.LegendPos(a.LegendPos))
	}
	for _, k := range a.Keys {
		axis.AddKey(pgf.Custom(k))
	}

	for i := range a.Plots {
		plot, err := a.Plots[i].build(dir)
		if err != nil {
			return nil, fmt.Errorf("plots[%d]: %w", i, err)
		}
		axis.Plots = append(axis.Plots, *plot)
	}
	for _, entry := range a.Legend {
		axis.AddLegendEntry(entry)
	}
	return axis, nil
}

func (p *Plot) build(dir string) (*pgf.Plot2D, error) {
	plot := pgf.NewPlot2D()

	switch p.Type {
	case "":
	case "xbar":
		plot.AddKey(pgf.XBar{Width: p.BarWidth, Shift: p.BarShift})
	case "ybar":
		plot.AddKey(pgf.YBar{Width: p.BarWidth, Shift: p.BarShift})
	default:
		t, ok := pgf.ParseType2D(p.Type)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "unknown plot type: %s", p.Type)
		}
		plot.AddKey(t)
	}

	if p.XError != "" {
		c, err := parseErrorCharacter(p.XError)
		if err != nil {
			return nil, err
		}
		plot.AddKey(pgf.XError(c))
	}
	if p.YError != "" {
		c, err := parseErrorCharacter(p.YError)
		if err != nil {
			return nil, err
		}
		plot.AddKey(pgf.YError(c))
	}
	if p.XErrorDir != "" {
		d, err := parseErrorDirection(p.XErrorDir)
		if err != nil {
			return nil, err
		}
		plot.AddKey(pgf.XErrorDirection(d))
	}
	if p.YErrorDir != "" {
		d, err := parseErrorDirection(p.YErrorDir)
		if err != nil {
			return nil, err
		}
		plot.AddKey(pgf.YErrorDirection(d))
	}
	if p.Mark != "" {
		plot.AddKey(pgf.Mark(p.Mark))
	}
	if p.Color != "" {
		plot.AddKey(pgf.Color(p.Color))
	}
	for _, k := range p.Keys {
		plot.AddKey(pgf.Custom(k))
	}

	switch {
	case p.Data != nil && len(p.Coordinates) > 0:
		return nil, errors.New(errors.ErrCodeInvalidInput, "coordinates and data are mutually exclusive")
	case p.Data != nil:
		series, err := p.Data.Read(dir)
		if err != nil {
			return nil, err
		}
		plot.Coordinates = series
	default:
		series, err := coordinates(p.Coordinates)
		if err != nil {
			return nil, err
		}
		plot.Coordinates = series
	}
	return plot, nil
}

func coordinates(points [][]float64) (pgf.Series, error) {
	series := make(pgf.Series, 0, len(points))
	for i, pt := range points {
		switch len(pt) {
		case 2:
			series = append(series, pgf.Coord(pt[0], pt[1]))
		case 4:
			series = append(series, pgf.Coord(pt[0], pt[1]).WithXError(pt[2]).WithYError(pt[3]))
		default:
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"coordinates[%d]: want [x, y] or [x, y, error_x, error_y], got %d values", i, len(pt))
		}
	}
	return series, nil
}

func parseErrorCharacter(s string) (pgf.ErrorCharacter, error) {
	switch s {
	case "explicit", "absolute":
		return pgf.ErrorAbsolute, nil
	case "explicit relative", "relative":
		return pgf.ErrorRelative, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown error bar kind: %s", s)
}

func parseErrorDirection(s string) (pgf.ErrorDirection, error) {
	switch s {
	case "both":
		return pgf.ErrorBoth, nil
	case "plus":
		return pgf.ErrorPlus, nil
	case "minus":
		return pgf.ErrorMinus, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown error bar direction: %s", s)
}

// LoadPicture loads a figure file and builds it, resolving data files
// relative to the figure.
func LoadPicture(path string) (*pgf.Picture, error) {
	fig, err := Load(path)
	if err != nil {
		return nil, err
	}
	return fig.Build(filepath.Dir(path))
}
