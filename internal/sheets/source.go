// Package sheets provides the upstream row sources the dashboard fetches
// company data from. Every source yields the same shape: a JSON-array-like
// sequence of loosely-typed rows keyed by column header, with the row-label
// column under the empty header.
package sheets

import (
	"context"

	"finboard/pkg/contracts/domain"
)

// RowSource fetches the raw rows of one sheet tab. Tabs are named after the
// company ticker, "$" prefix included. Implementations return a transport
// error or an empty slice on failure; callers treat both as degraded data,
// never as fatal.
type RowSource interface {
	FetchRows(ctx context.Context, sheet string) ([]domain.Row, error)
}

// Source kinds selectable in configuration.
const (
	KindHTTP     = "http"
	KindAPI      = "sheets_api"
	KindWorkbook = "workbook"
)
