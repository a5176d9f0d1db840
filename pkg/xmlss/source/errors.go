package source

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates an input file extension with no reader.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ErrUnknownEncoding indicates a CSV encoding label that is not recognized.
var ErrUnknownEncoding = errors.New("unknown encoding")

// ErrSheetNotFound indicates the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ExtractionError represents an error while reading one sheet.
type ExtractionError struct {
	SheetName string
	Component string // "cells", "tables", "print_areas"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
