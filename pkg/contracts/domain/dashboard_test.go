package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardData_MarshalJSON(t *testing.T) {
	half := 0.5
	posInf := math.Inf(1)
	negInf := math.Inf(-1)

	tests := []struct {
		name     string
		card     CardData
		wantJSON string
	}{
		{
			name: "finite change",
			card: CardData{
				Revenue:                 "150",
				Change:                  "50",
				PercentageChange:        "50,00%",
				NumericPercentageChange: &half,
				RevenueLabel:            "Q2 2024",
			},
			wantJSON: `{"revenue":"150","change":"50","percentage_change":"50,00%","numeric_percentage_change":0.5,"revenue_label":"Q2 2024"}`,
		},
		{
			name:     "unavailable",
			card:     UnavailableCardData(),
			wantJSON: `{"revenue":"N/A","change":"N/A","percentage_change":"N/A","numeric_percentage_change":null,"revenue_label":""}`,
		},
		{
			name: "positive infinity as string",
			card: CardData{
				Revenue:                 "100",
				Change:                  "100",
				PercentageChange:        "Inf%",
				NumericPercentageChange: &posInf,
				RevenueLabel:            "Q1 2024",
			},
			wantJSON: `{"revenue":"100","change":"100","percentage_change":"Inf%","numeric_percentage_change":"Inf","revenue_label":"Q1 2024"}`,
		},
		{
			name: "negative infinity as string",
			card: CardData{
				Revenue:                 "0",
				Change:                  "0",
				PercentageChange:        "-Inf%",
				NumericPercentageChange: &negInf,
				RevenueLabel:            "Q1 2024",
			},
			wantJSON: `{"revenue":"0","change":"0","percentage_change":"-Inf%","numeric_percentage_change":"-Inf","revenue_label":"Q1 2024"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.card)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantJSON, string(data))

			var back CardData
			require.NoError(t, json.Unmarshal(data, &back))
			if tt.card.NumericPercentageChange == nil {
				assert.Nil(t, back.NumericPercentageChange)
			} else {
				require.NotNil(t, back.NumericPercentageChange)
				assert.Equal(t, *tt.card.NumericPercentageChange, *back.NumericPercentageChange)
			}
			assert.Equal(t, tt.card.Revenue, back.Revenue)
			assert.Equal(t, tt.card.PercentageChange, back.PercentageChange)
		})
	}
}

func TestDegradedDashboardData(t *testing.T) {
	data := DegradedDashboardData()

	assert.Equal(t, UnavailableCardData(), data.CardData)
	assert.NotNil(t, data.HistoricalData)
	assert.Empty(t, data.HistoricalData)
	assert.NotNil(t, data.AllRows)
	assert.Empty(t, data.AllRows)

	// The degraded payload must serialize with empty containers, not nulls.
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"card_data":{"revenue":"N/A","change":"N/A","percentage_change":"N/A","numeric_percentage_change":null,"revenue_label":""},"historical_data":{},"all_rows":[]}`,
		string(raw))
}
