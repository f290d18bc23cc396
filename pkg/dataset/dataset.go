// Package dataset reads plot coordinates from tabular files.
//
// Columns are selected by header name ("time"), spreadsheet letter ("B") or
// 1-based index ("2"). A header row is detected when the first non-empty row
// does not parse as numbers in the selected x and y columns. Blank rows are
// skipped. Every other cell in a selected column must be a number.
package dataset

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/pgfplots/pkg/errors"
	"github.com/matzehuels/pgfplots/pkg/pgf"
)

// Columns selects the data columns. Empty X and Y default to the first and
// second column. Empty error columns are not read.
type Columns struct {
	X      string `json:"x,omitempty" yaml:"x,omitempty" toml:"x,omitempty"`
	Y      string `json:"y,omitempty" yaml:"y,omitempty" toml:"y,omitempty"`
	ErrorX string `json:"error_x,omitempty" yaml:"error_x,omitempty" toml:"error_x,omitempty"`
	ErrorY string `json:"error_y,omitempty" yaml:"error_y,omitempty" toml:"error_y,omitempty"`
}

func (c Columns) withDefaults() Columns {
	if c.X == "" {
		c.X = "1"
	}
	if c.Y == "" {
		c.Y = "2"
	}
	return c
}

// FromRows converts rows of cells into a series.
func FromRows(rows [][]string, cols Columns) (pgf.Series, error) {
	cols = cols.withDefaults()

	first := -1
	for i, row := range rows {
		if !blank(row) {
			first = i
			break
		}
	}
	if first < 0 {
		return pgf.Series{}, nil
	}

	var header []string
	if isHeader(rows[first], cols) {
		header = rows[first]
		first++
	}

	x, err := resolve(cols.X, header)
	if err != nil {
		return nil, err
	}
	y, err := resolve(cols.Y, header)
	if err != nil {
		return nil, err
	}
	ex, ey := -1, -1
	if cols.ErrorX != "" {
		if ex, err = resolve(cols.ErrorX, header); err != nil {
			return nil, err
		}
	}
	if cols.ErrorY != "" {
		if ey, err = resolve(cols.ErrorY, header); err != nil {
			return nil, err
		}
	}

	series := make(pgf.Series, 0, len(rows)-first)
	for i := first; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		line := i + 1
		xv, err := number(row, x, line)
		if err != nil {
			return nil, err
		}
		yv, err := number(row, y, line)
		if err != nil {
			return nil, err
		}
		c := pgf.Coord(xv, yv)
		if ex >= 0 {
			v, err := number(row, ex, line)
			if err != nil {
				return nil, err
			}
			c = c.WithXError(v)
		}
		if ey >= 0 {
			v, err := number(row, ey, line)
			if err != nil {
				return nil, err
			}
			c = c.WithYError(v)
		}
		series = append(series, c)
	}
	return series, nil
}

// resolve returns the 0-based index of a column reference.
func resolve(ref string, header []string) (int, error) {
	for i, name := range header {
		if strings.TrimSpace(name) == ref {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 {
			return 0, errors.New(errors.ErrCodeInvalidInput, "column index must be >= 1: %s", ref)
		}
		return n - 1, nil
	}
	if isLetters(ref) {
		n, err := excelize.ColumnNameToNumber(ref)
		if err != nil {
			return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid column %s", ref)
		}
		return n - 1, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown column: %s", ref)
}

// isHeader reports whether row holds column names rather than data.
func isHeader(row []string, cols Columns) bool {
	for _, ref := range []string{cols.X, cols.Y} {
		i, err := resolve(ref, nil)
		if err != nil {
			// A name that is neither index nor letter can only match a header.
			return true
		}
		if i >= len(row) {
			continue
		}
		if _, err := parseFloat(row[i]); err != nil {
			return true
		}
	}
	return false
}

func number(row []string, col, line int) (float64, error) {
	if col >= len(row) {
		return 0, errors.New(errors.ErrCodeInvalidFormat, "row %d: missing column %d", line, col+1)
	}
	v, err := parseFloat(row[col])
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidFormat, "row %d, column %d: not a number: %q", line, col+1, row[col])
	}
	return v, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func isLetters(s string) bool {
	if s == "" || len(s) > 3 {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
