package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finboard/pkg/contracts/domain"
)

func TestHTTPSource_FetchRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sheet-id/$AAPL", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"": "Revenue", "Release": null, "2024-01-01": "1,500", "2023-10-01": 1000},
			{"": "", "Release": "Quarter", "2024-01-01": "Q1"}
		]`))
	}))
	defer server.Close()

	source := NewHTTPSource(server.Client(), server.URL, "sheet-id", nil)
	rows, err := source.FetchRows(context.Background(), "$AAPL")

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.StringCell("Revenue"), rows[0].Cell(domain.RowLabelColumn))
	assert.True(t, rows[0].Cell(domain.ReleaseColumn).IsEmpty())
	assert.Equal(t, domain.StringCell("1,500"), rows[0].Cell("2024-01-01"))
	assert.Equal(t, domain.NumberCell(1000), rows[0].Cell("2023-10-01"))
	assert.Equal(t, domain.StringCell("Quarter"), rows[1].Cell(domain.ReleaseColumn))
}

func TestHTTPSource_FetchRowsErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>not json</html>`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			source := NewHTTPSource(server.Client(), server.URL, "sheet-id", nil)
			_, err := source.FetchRows(context.Background(), "$AAPL")
			assert.Error(t, err)
		})
	}
}

func TestHTTPSource_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	source := NewHTTPSource(server.Client(), server.URL, "sheet-id", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.FetchRows(ctx, "$AAPL")
	assert.Error(t, err)
}
