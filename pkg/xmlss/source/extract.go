package source

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/xmlss-go/pkg/xmlss"
	"github.com/ukaji3/xmlss-go/pkg/xmlss/models"
	"github.com/xuri/excelize/v2"
)

// Options configures reading an input file.
type Options struct {
	// Sheet is the workbook sheet to read. Defaults to the active sheet.
	Sheet string
	// Range restricts reading to a cell range such as "A1:D10".
	Range string
	// UsePrintArea restricts reading to the first print area of the sheet.
	UsePrintArea bool
	// DetectTable restricts reading to the detected table region.
	DetectTable bool
	// IncludeLinks keeps cell hyperlinks as ss:HRef attributes.
	IncludeLinks bool
	// CSV configures .csv and .tsv input.
	CSV CSVOptions
	// Logger receives warnings for skipped steps. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Table is the data read from one input sheet.
type Table struct {
	// Name is the input file name (no path), with the sheet for workbooks.
	Name string
	// Area is the range that was read, if restricted.
	Area *models.Area
	// Rows are the rows ready for the writer.
	Rows [][]xmlss.CellInput
}

// Extract reads tabular data from an .xlsx/.xlsm workbook or a .csv/.tsv file.
func Extract(path string, opts Options) (*Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return extractWorkbook(path, opts, logger)
	case ".csv", ".tsv":
		csvOpts := opts.CSV
		if ext == ".tsv" && csvOpts.Delimiter == 0 {
			csvOpts.Delimiter = '\t'
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		rows, err := ReadCSV(f, csvOpts)
		if err != nil {
			return nil, err
		}
		return &Table{Name: filepath.Base(path), Rows: rows}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func extractWorkbook(path string, opts Options, logger *slog.Logger) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName := opts.Sheet
	if sheetName == "" {
		sheetName = f.GetSheetName(f.GetActiveSheetIndex())
	}
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	area, err := selectArea(f, sheetName, opts, logger)
	if err != nil {
		return nil, err
	}

	rows, err := ExtractRows(f, sheetName, RowOptions{
		Area:         area,
		IncludeLinks: opts.IncludeLinks,
	})
	if err != nil {
		return nil, NewExtractionError(sheetName, "cells", err)
	}

	return &Table{
		Name: filepath.Base(path) + "#" + sheetName,
		Area: area,
		Rows: rows,
	}, nil
}

// selectArea resolves the range to read. An explicit range wins over the
// print area, which wins over table detection.
func selectArea(f *excelize.File, sheetName string, opts Options, logger *slog.Logger) (*models.Area, error) {
	if opts.Range != "" {
		area := ParseArea(opts.Range)
		if area == nil {
			return nil, fmt.Errorf("invalid range: %s", opts.Range)
		}
		return area, nil
	}

	if opts.UsePrintArea {
		if areas := ExtractPrintAreas(f)[sheetName]; len(areas) > 0 {
			return &areas[0], nil
		}
		logger.Warn("no print area defined, reading used range", "sheet", sheetName)
	}

	if opts.DetectTable {
		area, err := DetectTable(f, sheetName, DefaultTableParams())
		if err != nil {
			// Log warning and continue with the used range
			logger.Warn("table detection failed", "sheet", sheetName, "error", NewExtractionError(sheetName, "tables", err))
			return nil, nil
		}
		if area != nil {
			logger.Debug("table detected", "sheet", sheetName, "range", FormatArea(*area))
			return area, nil
		}
		logger.Warn("no table detected, reading used range", "sheet", sheetName)
	}

	return nil, nil
}
