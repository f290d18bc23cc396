package figure

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/pgfplots/pkg/errors"
)

const yamlFigure = `
scale: 2
axes:
  - title: Squares
    xlabel: $x$
    xmin: 0
    axis_lines: middle
    keys: ["grid=major"]
    legend: [area]
    plots:
      - type: ybar
        bar_width: 19.5
        keys: ["fill=gray!20"]
        coordinates: [[0, 0], [10, 100]]
`

const jsonFigure = `{
  "scale": 2,
  "axes": [{
    "title": "Squares",
    "xlabel": "$x$",
    "xmin": 0,
    "axis_lines": "middle",
    "keys": ["grid=major"],
    "legend": ["area"],
    "plots": [{
      "type": "ybar",
      "bar_width": 19.5,
      "keys": ["fill=gray!20"],
      "coordinates": [[0, 0], [10, 100]]
    }]
  }]
}`

const tomlFigure = `
scale = 2

[[axes]]
title = "Squares"
xlabel = "$x$"
xmin = 0
axis_lines = "middle"
keys = ["grid=major"]
legend = ["area"]

[[axes.plots]]
type = "ybar"
bar_width = 19.5
keys = ["fill=gray!20"]
coordinates = [[0, 0], [10, 100]]
`

const squaresTeX = "\\begin{tikzpicture}[\n" +
	"\tscale=2,\n" +
	"]\n" +
	"\t\\begin{axis}[\n" +
	"\t\ttitle={Squares},\n" +
	"\t\txlabel={$x$},\n" +
	"\t\txmin=0,\n" +
	"\t\taxis lines=middle,\n" +
	"\t\tgrid=major,\n" +
	"\t]\n" +
	"\t\t\\addplot[\n" +
	"\t\t\tybar, bar width=19.5, bar shift=0,\n" +
	"\t\t\tfill=gray!20,\n" +
	"\t\t] coordinates {\n" +
	"\t\t\t(0,0)\n" +
	"\t\t\t(10,100)\n" +
	"\t\t};\n" +
	"\t\t\\addlegendentry{area}\n" +
	"\t\\end{axis}\n" +
	"\\end{tikzpicture}"

func TestDecodeFormatsAgree(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{FormatYAML, yamlFigure},
		{FormatJSON, jsonFigure},
		{FormatTOML, tomlFigure},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			fig, err := Decode([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			pic, err := fig.Build(t.TempDir())
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if diff := cmp.Diff(squaresTeX, pic.String()); diff != "" {
				t.Errorf("render mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{FormatYAML, "axes: []\ncolour: red\n"},
		{FormatJSON, `{"axes": [], "colour": "red"}`},
		{FormatTOML, "axes = []\ncolour = \"red\"\n"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidFormat)
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		fig  Figure
		want string
	}{
		{
			name: "plot type",
			fig:  Figure{Axes: []Axis{{Plots: []Plot{{Type: "wiggly"}}}}},
			want: "plots[0]: INVALID_INPUT: unknown plot type: wiggly",
		},
		{
			name: "xmode",
			fig:  Figure{Axes: []Axis{{XMode: "cubic"}}},
			want: "axes[0]: INVALID_INPUT: unknown xmode: cubic",
		},
		{
			name: "coordinate arity",
			fig:  Figure{Axes: []Axis{{Plots: []Plot{{Coordinates: [][]float64{{1, 2, 3}}}}}}},
			want: "coordinates[0]",
		},
		{
			name: "error kind",
			fig:  Figure{Axes: []Axis{{Plots: []Plot{{YError: "fuzzy"}}}}},
			want: "unknown error bar kind",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fig.Build("")
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Fatalf("error = %v, want %s", err, errors.ErrCodeInvalidInput)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestBuildErrorBars(t *testing.T) {
	fig := Figure{Axes: []Axis{{Plots: []Plot{{
		Type:        "only marks",
		YError:      "explicit",
		YErrorDir:   "plus",
		Coordinates: [][]float64{{1, 2, 0, 0.5}},
	}}}}}
	pic, err := fig.Build("")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := pic.Axes[0].Plots[0].String()
	want := "\t\t\\addplot[\n" +
		"\t\t\tonly marks,\n" +
		"\t\t\terror bars/y explicit,\n" +
		"\t\t\terror bars/y dir=plus,\n" +
		"\t\t] coordinates {\n" +
		"\t\t\t(1,2) +- (0,0.5)\n" +
		"\t\t};"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("plot mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPictureWithDataFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "squares.csv"), []byte("x,y\n1,1\n2,4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	fig := "axes:\n  - plots:\n      - data: {file: squares.csv, x: x, y: y}\n"
	path := filepath.Join(dir, "fig.yaml")
	if err := os.WriteFile(path, []byte(fig), 0o644); err != nil {
		t.Fatal(err)
	}

	pic, err := LoadPicture(path)
	if err != nil {
		t.Fatalf("LoadPicture: %v", err)
	}
	got := pic.Axes[0].Plots[0].Coordinates
	if len(got) != 2 || got[1].String() != "(2,4)" {
		t.Errorf("coordinates = %v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "fig.ini")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("extension error = %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestExamplesBuild(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.*"))
	if err != nil {
		t.Fatal(err)
	}
	built := 0
	for _, path := range paths {
		if _, err := FormatFromPath(path); err != nil {
			continue
		}
		t.Run(filepath.Base(path), func(t *testing.T) {
			pic, err := LoadPicture(path)
			if err != nil {
				t.Fatalf("LoadPicture: %v", err)
			}
			if len(pic.Axes) == 0 {
				t.Error("example has no axes")
			}
		})
		built++
	}
	if built == 0 {
		t.Skip("no example figures found")
	}
}
