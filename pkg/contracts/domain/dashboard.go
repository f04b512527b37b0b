package domain

import (
	"encoding/json"
	"math"
)

// NotAvailable is the placeholder shown on a card when a value could not be
// derived from the sheet.
const NotAvailable = "N/A"

// CardData is the compact per-company summary rendered on a dashboard card.
// Invariant: NumericPercentageChange is nil if and only if PercentageChange
// is NotAvailable; it may be ±Inf when the prior period is zero.
type CardData struct {
	Revenue                 string
	Change                  string
	PercentageChange        string
	NumericPercentageChange *float64
	RevenueLabel            string
}

// UnavailableCardData returns a card with every field in its degraded
// placeholder state.
func UnavailableCardData() CardData {
	return CardData{
		Revenue:          NotAvailable,
		Change:           NotAvailable,
		PercentageChange: NotAvailable,
	}
}

type cardDataWire struct {
	Revenue                 string          `json:"revenue"`
	Change                  string          `json:"change"`
	PercentageChange        string          `json:"percentage_change"`
	NumericPercentageChange json.RawMessage `json:"numeric_percentage_change"`
	RevenueLabel            string          `json:"revenue_label"`
}

// MarshalJSON encodes the card for the API. encoding/json rejects IEEE
// infinities, so ±Inf travel as the strings "Inf" and "-Inf"; a missing
// value travels as null.
func (c CardData) MarshalJSON() ([]byte, error) {
	wire := cardDataWire{
		Revenue:                 c.Revenue,
		Change:                  c.Change,
		PercentageChange:        c.PercentageChange,
		NumericPercentageChange: json.RawMessage("null"),
		RevenueLabel:            c.RevenueLabel,
	}
	if c.NumericPercentageChange != nil {
		v := *c.NumericPercentageChange
		switch {
		case math.IsInf(v, 1):
			wire.NumericPercentageChange = json.RawMessage(`"Inf"`)
		case math.IsInf(v, -1):
			wire.NumericPercentageChange = json.RawMessage(`"-Inf"`)
		default:
			num, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			wire.NumericPercentageChange = num
		}
	}
	return json.Marshal(wire)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (c *CardData) UnmarshalJSON(data []byte) error {
	var wire cardDataWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	c.Revenue = wire.Revenue
	c.Change = wire.Change
	c.PercentageChange = wire.PercentageChange
	c.RevenueLabel = wire.RevenueLabel
	c.NumericPercentageChange = nil

	switch string(wire.NumericPercentageChange) {
	case "", "null":
		return nil
	case `"Inf"`:
		v := math.Inf(1)
		c.NumericPercentageChange = &v
		return nil
	case `"-Inf"`:
		v := math.Inf(-1)
		c.NumericPercentageChange = &v
		return nil
	default:
		var v float64
		if err := json.Unmarshal(wire.NumericPercentageChange, &v); err != nil {
			return err
		}
		c.NumericPercentageChange = &v
		return nil
	}
}

// HistoricalPoint is one observation of a metric in one reporting period.
type HistoricalPoint struct {
	Period string  `json:"period"`
	Value  float64 `json:"value"`
}

// HistoricalSeries maps a metric name to its chronological value sequence,
// ordered oldest to newest.
type HistoricalSeries map[string][]HistoricalPoint

// DashboardData is everything the dashboard needs for one company.
type DashboardData struct {
	CardData       CardData         `json:"card_data"`
	HistoricalData HistoricalSeries `json:"historical_data"`
	AllRows        []Row            `json:"all_rows"`
}

// DegradedDashboardData is the terminal placeholder cached when the upstream
// fetch fails or returns no rows.
func DegradedDashboardData() DashboardData {
	return DashboardData{
		CardData:       UnavailableCardData(),
		HistoricalData: HistoricalSeries{},
		AllRows:        []Row{},
	}
}
