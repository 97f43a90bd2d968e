package sheet

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// Config holds the shape of the generated workbook.
type Config struct {
	// Dir is the output directory. Relative paths are resolved against the
	// working directory; the directory is created when missing.
	// Defaults to "../../data/excel".
	Dir string

	// SheetName names the single worksheet. Defaults to "DummyData".
	SheetName string

	// MinRows and MaxRows bound the number of data rows (inclusive); the
	// header row is not counted. Defaults to 150 and 249.
	MinRows int
	MaxRows int

	// Columns is the number of columns per row. Defaults to 30.
	Columns int

	// MinCellLength and MaxCellLength bound the length of each cell's text
	// (inclusive). Defaults to 50 and 2049.
	MinCellLength int
	MaxCellLength int

	// Seed seeds the random source. Zero picks a random seed.
	Seed uint64

	// Now supplies the timestamp used in the file name. Defaults to time.Now.
	Now func() time.Time
}

// DefaultConfig returns a [Config] populated with the default workbook shape.
func DefaultConfig() Config {
	return Config{
		Dir:           "../../data/excel",
		SheetName:     "DummyData",
		MinRows:       150,
		MaxRows:       249,
		Columns:       30,
		MinCellLength: 50,
		MaxCellLength: 2049,
		Now:           time.Now,
	}
}

// Validate reports the first field that is out of range, wrapped in
// [ErrInvalidConfig].
func (c Config) Validate() error {
	switch {
	case c.Dir == "":
		return fmt.Errorf("%w: directory must not be empty", ErrInvalidConfig)
	case c.SheetName == "":
		return fmt.Errorf("%w: sheet name must not be empty", ErrInvalidConfig)
	case c.MinRows < 0 || c.MaxRows < c.MinRows:
		return fmt.Errorf("%w: row range [%d, %d]", ErrInvalidConfig, c.MinRows, c.MaxRows)
	case c.MaxRows >= excelize.TotalRows:
		return fmt.Errorf("%w: at most %d rows", ErrInvalidConfig, excelize.TotalRows-1)
	case c.Columns < 1 || c.Columns > excelize.MaxColumns:
		return fmt.Errorf("%w: columns must be in [1, %d], got %d", ErrInvalidConfig, excelize.MaxColumns, c.Columns)
	case c.MinCellLength < 0 || c.MaxCellLength < c.MinCellLength:
		return fmt.Errorf("%w: cell length range [%d, %d]", ErrInvalidConfig, c.MinCellLength, c.MaxCellLength)
	case c.MaxCellLength > excelize.TotalCellChars:
		return fmt.Errorf("%w: cell length must not exceed %d", ErrInvalidConfig, excelize.TotalCellChars)
	}
	return nil
}
