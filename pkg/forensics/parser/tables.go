package parser

import (
	"time"

	"github.com/syntheticcfo/financial-forensics-audit-suite/pkg/forensics/models"
)

// findDataBounds finds the bounding box of non-empty cells.
// All bounds are -1 when the sheet holds no data.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// inferColumnType picks the narrowest storage type that holds every non-nil value of a column.
func inferColumnType(rows [][]any, col int) models.ColumnType {
	allInt, allNum, allTime, seen := true, true, true, false
	for _, row := range rows {
		switch row[col].(type) {
		case nil:
			continue
		case int64:
			allTime = false
		case float64:
			allInt, allTime = false, false
		case time.Time:
			allInt, allNum = false, false
		default:
			allInt, allNum, allTime = false, false, false
		}
		seen = true
	}

	switch {
	case !seen:
		return models.TypeText
	case allInt:
		return models.TypeInteger
	case allNum:
		return models.TypeReal
	case allTime:
		return models.TypeTimestamp
	default:
		return models.TypeText
	}
}
