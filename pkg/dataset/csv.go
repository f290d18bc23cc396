package dataset

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/matzehuels/pgfplots/pkg/errors"
	"github.com/matzehuels/pgfplots/pkg/pgf"
)

// ReadCSV reads comma separated values from r.
func ReadCSV(r io.Reader, cols Columns) (pgf.Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse csv")
	}
	return FromRows(rows, cols)
}

// ReadCSVFile reads a CSV file.
func ReadCSVFile(path string, cols Columns) (pgf.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return ReadCSV(f, cols)
}
