package dataset

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/pgfplots/pkg/errors"
	"github.com/matzehuels/pgfplots/pkg/pgf"
)

// Source locates a data file.
type Source struct {
	File  string `json:"file" yaml:"file" toml:"file"`
	Sheet string `json:"sheet,omitempty" yaml:"sheet,omitempty" toml:"sheet,omitempty"`
	Columns `yaml:",inline"`
}

// Read loads the source, choosing the reader by file extension. A relative
// File is resolved against dir.
func (s Source) Read(dir string) (pgf.Series, error) {
	if s.File == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "data source has no file")
	}
	path := s.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return ReadCSVFile(path, s.Columns)
	case ".xlsx", ".xlsm":
		return ReadXLSX(path, s.Sheet, s.Columns)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported data file: %s (use .csv or .xlsx)", s.File)
}
