package dataset

import (
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/pgfplots/pkg/errors"
	"github.com/matzehuels/pgfplots/pkg/pgf"
)

// ReadXLSX reads a worksheet of an Excel workbook. An empty sheet selects the
// first sheet.
func ReadXLSX(path, sheet string, cols Columns) (pgf.Series, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "open workbook %s", path)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read sheet %s", sheet)
	}
	return FromRows(rows, cols)
}
