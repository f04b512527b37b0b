package domain

// Company is one tracked public company. Ticker carries the upstream "$"
// prefix because the sheet tabs are named that way.
type Company struct {
	Name   string `json:"name" yaml:"name" validate:"required,min=1,max=100"`
	Ticker string `json:"ticker" yaml:"ticker" validate:"required,min=2,max=11"`
}

// DefaultCompanies returns the seven companies the dashboard tracks when no
// list is configured.
func DefaultCompanies() []Company {
	return []Company{
		{Name: "Apple", Ticker: "$AAPL"},
		{Name: "Microsoft", Ticker: "$MSFT"},
		{Name: "Alphabet", Ticker: "$GOOGL"},
		{Name: "Amazon", Ticker: "$AMZN"},
		{Name: "Meta", Ticker: "$META"},
		{Name: "Tesla", Ticker: "$TSLA"},
		{Name: "NVIDIA", Ticker: "$NVDA"},
	}
}
