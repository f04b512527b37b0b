package dataprocessing

import (
	"strings"

	"finboard/pkg/contracts/domain"
)

// skippedMetricNames are row labels that never describe a real metric.
var skippedMetricNames = map[string]struct{}{
	"":        {},
	"Quarter": {},
	"Episode": {},
}

// ExtractHistorical builds the full per-metric time series across all rows.
// orderedPeriods is sorted latest-first; the emitted series run oldest to
// newest. Cells that fail numeric parsing contribute nothing, and rows whose
// series end up empty are omitted entirely. Two rows sharing a metric name
// collide; the later row wins.
func ExtractHistorical(rows []domain.Row, orderedPeriods []string) domain.HistoricalSeries {
	series := make(domain.HistoricalSeries)

	for _, row := range rows {
		name := metricName(row)
		if _, skip := skippedMetricNames[name]; skip {
			continue
		}

		points := make([]domain.HistoricalPoint, 0, len(orderedPeriods))
		for i := len(orderedPeriods) - 1; i >= 0; i-- {
			period := orderedPeriods[i]
			value, ok := ParseNumeric(row.Cell(period))
			if !ok {
				continue
			}
			points = append(points, domain.HistoricalPoint{Period: period, Value: value})
		}

		if len(points) > 0 {
			series[name] = points
		}
	}

	return series
}

func metricName(row domain.Row) string {
	if name := strings.TrimSpace(row.Cell(domain.RowLabelColumn).Text()); name != "" {
		return name
	}
	return strings.TrimSpace(row.Cell(domain.ReleaseColumn).Text())
}
