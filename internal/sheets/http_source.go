package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"finboard/pkg/contracts/domain"
)

// HTTPSource reads rows from a JSON endpoint that exposes one spreadsheet
// tab per path segment: GET <base>/<spreadsheetID>/<sheet> returns a JSON
// array of row objects.
type HTTPSource struct {
	client        *http.Client
	baseURL       string
	spreadsheetID string
	logger        *slog.Logger
}

// NewHTTPSource creates an HTTP row source. A nil client falls back to
// http.DefaultClient; the caller owns any timeout policy on the client.
func NewHTTPSource(client *http.Client, baseURL, spreadsheetID string, logger *slog.Logger) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPSource{
		client:        client,
		baseURL:       baseURL,
		spreadsheetID: spreadsheetID,
		logger:        logger.With(slog.String("component", "http_source")),
	}
}

// FetchRows implements RowSource.
func (s *HTTPSource) FetchRows(ctx context.Context, sheet string) ([]domain.Row, error) {
	endpoint := fmt.Sprintf("%s/%s/%s",
		s.baseURL, url.PathEscape(s.spreadsheetID), url.PathEscape(sheet))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build sheet request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet %s: %w", sheet, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch sheet %s: unexpected status %d", sheet, resp.StatusCode)
	}

	var rows []domain.Row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode sheet %s: %w", sheet, err)
	}

	s.logger.DebugContext(ctx, "fetched sheet rows",
		slog.String("sheet", sheet),
		slog.Int("row_count", len(rows)))

	return rows, nil
}
