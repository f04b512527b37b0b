package sheets

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"finboard/pkg/contracts/domain"
)

// APISource reads rows straight from the Google Sheets v4 API. The first row
// of a tab is the header row; the label column conventionally has an empty
// header cell.
type APISource struct {
	service       *sheets.Service
	spreadsheetID string
	logger        *slog.Logger
}

// NewAPISource creates a Sheets API row source authenticated by API key
// (the dashboard only reads public sheets).
func NewAPISource(ctx context.Context, apiKey, spreadsheetID string, logger *slog.Logger) (*APISource, error) {
	service, err := sheets.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &APISource{
		service:       service,
		spreadsheetID: spreadsheetID,
		logger:        logger.With(slog.String("component", "sheets_api_source")),
	}, nil
}

// FetchRows implements RowSource.
func (s *APISource) FetchRows(ctx context.Context, sheet string) ([]domain.Row, error) {
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, sheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetch sheet %s: %w", sheet, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	headers := make([]string, len(resp.Values[0]))
	for i, h := range resp.Values[0] {
		headers[i] = fmt.Sprint(h)
	}

	rows := make([]domain.Row, 0, len(resp.Values)-1)
	for _, values := range resp.Values[1:] {
		row := make(domain.Row, len(headers))
		for i, header := range headers {
			if i >= len(values) {
				break
			}
			row[header] = valueCell(values[i])
		}
		rows = append(rows, row)
	}

	s.logger.DebugContext(ctx, "fetched sheet rows",
		slog.String("sheet", sheet),
		slog.Int("row_count", len(rows)))

	return rows, nil
}

// valueCell maps a Sheets API cell (interface{}) onto the domain union.
func valueCell(v interface{}) domain.Cell {
	switch value := v.(type) {
	case nil:
		return domain.Cell{}
	case float64:
		return domain.NumberCell(value)
	case string:
		return domain.StringCell(value)
	default:
		return domain.StringCell(fmt.Sprint(value))
	}
}
