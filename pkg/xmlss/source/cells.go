// Package source reads tabular input for the XML Spreadsheet writer.
package source

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/xmlss-go/pkg/xmlss"
	"github.com/ukaji3/xmlss-go/pkg/xmlss/models"
	"github.com/xuri/excelize/v2"
)

// RowOptions controls how worksheet cells become rows.
type RowOptions struct {
	// Area restricts extraction to a cell range. If nil, the used range is read.
	Area *models.Area
	// IncludeLinks adds ss:HRef attributes for cells carrying a hyperlink.
	IncludeLinks bool
}

// ExtractRows reads the raw cell values of a sheet as writer rows.
// Numeric text becomes int64 or float64 so it is written as a Number.
// Column positions are kept: empty cells before the last value of a row
// become empty String cells.
func ExtractRows(f *excelize.File, sheetName string, opts RowOptions) ([][]xmlss.CellInput, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	firstRow, lastRow, firstCol := 1, len(rows), 1
	lastCol := -1 // read each row up to its last value
	if opts.Area != nil {
		firstRow, lastRow = opts.Area.R1, opts.Area.R2
		firstCol, lastCol = opts.Area.C1, opts.Area.C2
	}

	var result [][]xmlss.CellInput
	for rowNum := firstRow; rowNum <= lastRow; rowNum++ {
		var row []string
		if rowNum-1 < len(rows) {
			row = rows[rowNum-1]
		}

		end := lastCol
		if end < 0 {
			end = len(row)
		}

		cells := make([]xmlss.CellInput, 0, max(0, end-firstCol+1))
		for colNum := firstCol; colNum <= end; colNum++ {
			var cellValue string
			if colNum-1 < len(row) {
				cellValue = row[colNum-1]
			}
			value := parseValue(cellValue)

			if opts.IncludeLinks && cellValue != "" {
				cellName, _ := excelize.CoordinatesToCellName(colNum, rowNum)
				hasLink, target, err := f.GetCellHyperLink(sheetName, cellName)
				if err == nil && hasLink && target != "" {
					cells = append(cells, xmlss.Explicit{
						Value:      value,
						Attributes: xmlss.Attr("ss:HRef", target),
					})
					continue
				}
			}
			cells = append(cells, xmlss.Scalar{Value: value})
		}
		result = append(result, cells)
	}

	return result, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
// Text with a leading zero, such as "007", and NaN or Inf spellings stay text.
func parseValue(s string) interface{} {
	if hasLeadingZero(s) {
		return s
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	// Return as string
	return s
}

func hasLeadingZero(s string) bool {
	s = strings.TrimPrefix(s, "-")
	return len(s) > 1 && s[0] == '0' && s[1] != '.'
}
