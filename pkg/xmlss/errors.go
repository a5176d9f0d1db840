package xmlss

import (
	"errors"
	"fmt"
)

// ErrMalformedAttributes indicates cell attribute text that is not valid XML attribute syntax.
var ErrMalformedAttributes = errors.New("malformed cell attributes")

// ErrInvalidName indicates a property, style or element name that is not a valid XML name.
var ErrInvalidName = errors.New("invalid XML name")

// ErrUnsupportedInput indicates a dynamic row value that cannot be used as a row.
var ErrUnsupportedInput = errors.New("unsupported row input")

// CellError represents an error resolving a single cell.
type CellError struct {
	Row    int // 1-based row index within the table
	Column int // 1-based column index within the row
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell error at row %d, column %d: %v", e.Row, e.Column, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// NewCellError creates a new CellError.
func NewCellError(row, column int, err error) *CellError {
	return &CellError{
		Row:    row,
		Column: column,
		Err:    err,
	}
}
