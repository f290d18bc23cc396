// Package figure decodes declarative figure descriptions and builds them into
// pgf pictures.
//
// A figure file is JSON, YAML or TOML with the same structure:
//
//	keys: [baseline]
//	axes:
//	  - title: Rectangle Integration
//	    xlabel: $x$
//	    axis_lines: middle
//	    legend: [area]
//	    plots:
//	      - type: ybar
//	        bar_width: 19.5
//	        keys: ["fill=gray!20"]
//	        coordinates: [[0, 0], [10, 100]]
//	      - data: {file: squares.xlsx, sheet: Sheet1, x: A, y: B}
//
// Unknown fields are rejected. Relative data files are resolved against the
// directory of the figure file.
package figure

import "github.com/matzehuels/pgfplots/pkg/dataset"

// Figure describes one picture.
type Figure struct {
	Scale *float64 `json:"scale,omitempty" yaml:"scale,omitempty" toml:"scale,omitempty"`
	Keys  []string `json:"keys,omitempty" yaml:"keys,omitempty" toml:"keys,omitempty"`
	Axes  []Axis   `json:"axes" yaml:"axes" toml:"axes"`
}

// Axis describes one axis environment. Keys are appended after the named
// fields, so a custom key can refine but never replace them.
type Axis struct {
	Title     string   `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	XLabel    string   `json:"xlabel,omitempty" yaml:"xlabel,omitempty" toml:"xlabel,omitempty"`
	YLabel    string   `json:"ylabel,omitempty" yaml:"ylabel,omitempty" toml:"ylabel,omitempty"`
	XMode     string   `json:"xmode,omitempty" yaml:"xmode,omitempty" toml:"xmode,omitempty"`
	YMode     string   `json:"ymode,omitempty" yaml:"ymode,omitempty" toml:"ymode,omitempty"`
	XMin      *float64 `json:"xmin,omitempty" yaml:"xmin,omitempty" toml:"xmin,omitempty"`
	XMax      *float64 `json:"xmax,omitempty" yaml:"xmax,omitempty" toml:"xmax,omitempty"`
	YMin      *float64 `json:"ymin,omitempty" yaml:"ymin,omitempty" toml:"ymin,omitempty"`
	YMax      *float64 `json:"ymax,omitempty" yaml:"ymax,omitempty" toml:"ymax,omitempty"`
	Width     string   `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	Height    string   `json:"height,omitempty" yaml:"height,omitempty" toml:"height,omitempty"`
	AxisLines string   `json:"axis_lines,omitempty" yaml:"axis_lines,omitempty" toml:"axis_lines,omitempty"`
	LegendPos string   `json:"legend_pos,omitempty" yaml:"legend_pos,omitempty" toml:"legend_pos,omitempty"`
	Keys      []string `json:"keys,omitempty" yaml:"keys,omitempty" toml:"keys,omitempty"`
	Legend    []string `json:"legend,omitempty" yaml:"legend,omitempty" toml:"legend,omitempty"`
	Plots     []Plot   `json:"plots" yaml:"plots" toml:"plots"`
}

// Plot describes one \addplot. Coordinates and Data are mutually exclusive.
type Plot struct {
	// Type is a PGFPlots plot type such as "smooth" or "only marks", or
	// "xbar"/"ybar" together with BarWidth and BarShift.
	Type     string  `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	BarWidth float64 `json:"bar_width,omitempty" yaml:"bar_width,omitempty" toml:"bar_width,omitempty"`
	BarShift float64 `json:"bar_shift,omitempty" yaml:"bar_shift,omitempty" toml:"bar_shift,omitempty"`

	// XError and YError are "explicit" or "explicit relative".
	XError    string `json:"x_error,omitempty" yaml:"x_error,omitempty" toml:"x_error,omitempty"`
	YError    string `json:"y_error,omitempty" yaml:"y_error,omitempty" toml:"y_error,omitempty"`
	XErrorDir string `json:"x_error_dir,omitempty" yaml:"x_error_dir,omitempty" toml:"x_error_dir,omitempty"`
	YErrorDir string `json:"y_error_dir,omitempty" yaml:"y_error_dir,omitempty" toml:"y_error_dir,omitempty"`

	Mark  string   `json:"mark,omitempty" yaml:"mark,omitempty" toml:"mark,omitempty"`
	Color string   `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
	Keys  []string `json:"keys,omitempty" yaml:"keys,omitempty" toml:"keys,omitempty"`

	// Coordinates are [x, y] or [x, y, error_x, error_y].
	Coordinates [][]float64     `json:"coordinates,omitempty" yaml:"coordinates,omitempty" toml:"coordinates,omitempty"`
	Data        *dataset.Source `json:"data,omitempty" yaml:"data,omitempty" toml:"data,omitempty"`
}
