package dataprocessing

import (
	"strings"

	"finboard/pkg/contracts/domain"
)

// revenueFloor is the minimum row-label value for a row to count as a
// revenue candidate; smaller values are ratios, per-share figures or noise.
const revenueFloor = 100

// headerRowLabels are "Release" cell values that mark a row as a layout or
// metadata row. Such rows may carry large-looking numbers in the label
// column but must never be selected as the revenue row.
var headerRowLabels = map[string]struct{}{
	"Quarter": {},
	"Episode": {},
	"Period":  {},
	"Metric":  {},
}

// FindRevenueRow scans all rows and heuristically identifies the one holding
// top-line revenue. Sheets have inconsistent layouts, but the largest
// numeric value in the label column of a row that also has dated columns
// reliably points at total revenue. Ties keep the first row seen. The second
// return value is false when no row qualifies.
func FindRevenueRow(rows []domain.Row) (domain.Row, bool) {
	var best domain.Row
	var bestValue float64

	for _, row := range rows {
		value, ok := ParseNumeric(row.Cell(domain.RowLabelColumn))
		if !ok || value <= revenueFloor {
			continue
		}
		if !hasPeriodColumn(row) {
			continue
		}
		if best != nil && value <= bestValue {
			continue
		}
		if isHeaderRow(row) {
			continue
		}
		best = row
		bestValue = value
	}

	return best, best != nil
}

func hasPeriodColumn(row domain.Row) bool {
	for header := range row {
		if IsPeriodColumn(header) {
			return true
		}
	}
	return false
}

func isHeaderRow(row domain.Row) bool {
	release := row.Cell(domain.ReleaseColumn)
	if release.Kind != domain.CellString {
		return false
	}
	_, disqualified := headerRowLabels[strings.TrimSpace(release.Str)]
	return disqualified
}
