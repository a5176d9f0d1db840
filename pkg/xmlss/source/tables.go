package source

import (
	"fmt"

	"github.com/ukaji3/xmlss-go/pkg/xmlss/models"
	"github.com/xuri/excelize/v2"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// DetectTable finds the table-like region of a sheet: the bounding box of its
// non-empty cells, if dense enough. Returns nil when no region qualifies.
func DetectTable(f *excelize.File, sheetName string, params TableDetectionParams) (*models.Area, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return detectArea(rows, params), nil
}

func detectArea(rows [][]string, params TableDetectionParams) *models.Area {
	if len(rows) == 0 {
		return nil
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)

	if nonEmptyCells < params.MinNonemptyCells {
		return nil
	}

	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return nil
	}

	return &models.Area{
		R1: minRow + 1,
		C1: minCol + 1,
		R2: maxRow + 1,
		C2: maxCol + 1,
	}
}

// FormatArea converts an area to Excel range notation, e.g. "A1:D10".
func FormatArea(a models.Area) string {
	startCell, _ := excelize.CoordinatesToCellName(a.C1, a.R1)
	endCell, _ := excelize.CoordinatesToCellName(a.C2, a.R2)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
