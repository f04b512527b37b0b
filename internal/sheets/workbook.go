package sheets

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"finboard/pkg/contracts/domain"
)

// WorkbookSource reads rows from a local .xlsx workbook with one sheet per
// ticker. It exists for offline operation and fixtures; cells arrive as
// strings because that is what the workbook formatter yields.
type WorkbookSource struct {
	path   string
	logger *slog.Logger
}

// NewWorkbookSource creates a workbook row source for the given file path.
func NewWorkbookSource(path string, logger *slog.Logger) *WorkbookSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookSource{
		path:   path,
		logger: logger.With(slog.String("component", "workbook_source")),
	}
}

// FetchRows implements RowSource. The first row of the sheet is the header
// row; the label column has an empty header cell.
func (s *WorkbookSource) FetchRows(ctx context.Context, sheet string) ([]domain.Row, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", s.path, err)
	}
	defer f.Close()

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(cells) == 0 {
		return nil, nil
	}

	headers := cells[0]
	rows := make([]domain.Row, 0, len(cells)-1)
	for _, line := range cells[1:] {
		row := make(domain.Row, len(headers))
		for i, header := range headers {
			if i >= len(line) {
				break
			}
			if line[i] == "" {
				continue
			}
			row[header] = domain.StringCell(line[i])
		}
		rows = append(rows, row)
	}

	s.logger.DebugContext(ctx, "read workbook rows",
		slog.String("sheet", sheet),
		slog.Int("row_count", len(rows)))

	return rows, nil
}
