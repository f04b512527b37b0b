package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finboard/pkg/contracts/domain"
)

func TestExtractHistorical(t *testing.T) {
	periods := []string{"2024-04-01", "2024-01-01", "2023-10-01"}

	rows := []domain.Row{
		{
			domain.RowLabelColumn: domain.StringCell("Revenue"),
			"2024-04-01":          domain.StringCell("1,500"),
			"2024-01-01":          domain.StringCell("1,000"),
			"2023-10-01":          domain.StringCell("900"),
		},
		{
			domain.RowLabelColumn: domain.StringCell("  Net Income "),
			"2024-04-01":          domain.NumberCell(120),
			"2024-01-01":          domain.StringCell("pending"),
			"2023-10-01":          domain.NumberCell(95),
		},
		{
			// Metric name falls back to the Release column.
			domain.ReleaseColumn: domain.StringCell("EBITDA"),
			"2024-04-01":         domain.NumberCell(300),
		},
		{
			// Layout row, skipped by name.
			domain.RowLabelColumn: domain.StringCell("Quarter"),
			"2024-04-01":          domain.NumberCell(1),
		},
		{
			// Nothing parseable: omitted entirely.
			domain.RowLabelColumn: domain.StringCell("Guidance"),
			"2024-04-01":          domain.StringCell("strong"),
		},
	}

	series := ExtractHistorical(rows, periods)

	require.Len(t, series, 3)

	revenue := series["Revenue"]
	require.Len(t, revenue, 3)
	assert.Equal(t, domain.HistoricalPoint{Period: "2023-10-01", Value: 900}, revenue[0])
	assert.Equal(t, domain.HistoricalPoint{Period: "2024-01-01", Value: 1000}, revenue[1])
	assert.Equal(t, domain.HistoricalPoint{Period: "2024-04-01", Value: 1500}, revenue[2])

	// Unparseable cells are dropped without leaving a gap marker.
	netIncome := series["Net Income"]
	require.Len(t, netIncome, 2)
	assert.Equal(t, "2023-10-01", netIncome[0].Period)
	assert.Equal(t, "2024-04-01", netIncome[1].Period)

	assert.Len(t, series["EBITDA"], 1)
}

func TestExtractHistorical_NameCollisionLastWins(t *testing.T) {
	periods := []string{"2024-01-01"}
	rows := []domain.Row{
		{
			domain.RowLabelColumn: domain.StringCell("Revenue"),
			"2024-01-01":          domain.NumberCell(1),
		},
		{
			domain.RowLabelColumn: domain.StringCell("Revenue"),
			"2024-01-01":          domain.NumberCell(2),
		},
	}

	series := ExtractHistorical(rows, periods)

	require.Len(t, series, 1)
	assert.Equal(t, float64(2), series["Revenue"][0].Value)
}

func TestExtractHistorical_EmptyInputs(t *testing.T) {
	assert.Empty(t, ExtractHistorical(nil, nil))
	assert.Empty(t, ExtractHistorical([]domain.Row{{}}, []string{"2024-01-01"}))
}
