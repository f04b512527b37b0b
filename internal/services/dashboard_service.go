package services

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"finboard/internal/dataprocessing"
	"finboard/internal/infrastructure"
	"finboard/internal/sheets"
	"finboard/pkg/contracts/domain"
)

// DashboardService assembles per-company dashboard data from the upstream
// row source, caching results for the process lifetime.
//
// Upstream failures never surface as errors: a failed or empty fetch is
// converted into a degraded all-"N/A" result and cached as terminal, so the
// UI only ever branches on placeholder values.
type DashboardService struct {
	source    sheets.RowSource
	companies []domain.Company
	cache     *DashboardCache
	logger    *slog.Logger
	metrics   *infrastructure.Metrics
}

// NewDashboardService creates a dashboard service. metrics may be nil.
func NewDashboardService(source sheets.RowSource, companies []domain.Company, logger *slog.Logger, metrics *infrastructure.Metrics) *DashboardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{
		source:    source,
		companies: companies,
		cache:     NewDashboardCache(),
		logger:    logger.With(slog.String("component", "dashboard_service")),
		metrics:   metrics,
	}
}

// Companies returns the configured company list.
func (s *DashboardService) Companies() []domain.Company {
	return s.companies
}

// ClearCache drops all cached dashboards. Test hook.
func (s *DashboardService) ClearCache() {
	s.cache.Clear()
}

// CompanyDashboard returns the dashboard data for one ticker key (with "$"
// prefix). Cached results are returned as-is without revalidation.
func (s *DashboardService) CompanyDashboard(ctx context.Context, ticker string) domain.DashboardData {
	if data, ok := s.cache.Get(ticker); ok {
		if s.metrics != nil {
			s.metrics.RecordCacheHit(ctx)
		}
		return data
	}
	if s.metrics != nil {
		s.metrics.RecordCacheMiss(ctx)
	}

	start := time.Now()
	data := s.buildDashboard(ctx, ticker)
	if s.metrics != nil {
		s.metrics.RecordBuildDuration(ctx, time.Since(start).Seconds())
	}

	s.cache.Put(ticker, data)
	return data
}

func (s *DashboardService) buildDashboard(ctx context.Context, ticker string) domain.DashboardData {
	rows, err := s.source.FetchRows(ctx, ticker)
	if err != nil {
		s.logger.WarnContext(ctx, "upstream fetch failed, caching degraded dashboard",
			slog.String("ticker", ticker),
			slog.String("error", err.Error()))
		if s.metrics != nil {
			s.metrics.RecordFetch(ctx, ticker, "error")
		}
		return domain.DegradedDashboardData()
	}
	if len(rows) == 0 {
		s.logger.WarnContext(ctx, "upstream returned no rows, caching degraded dashboard",
			slog.String("ticker", ticker))
		if s.metrics != nil {
			s.metrics.RecordFetch(ctx, ticker, "empty")
		}
		return domain.DegradedDashboardData()
	}
	if s.metrics != nil {
		s.metrics.RecordFetch(ctx, ticker, "ok")
	}

	data := assembleDashboard(rows)

	s.logger.InfoContext(ctx, "assembled dashboard",
		slog.String("ticker", ticker),
		slog.Int("row_count", len(data.AllRows)),
		slog.Int("metric_count", len(data.HistoricalData)),
		slog.String("revenue_label", data.CardData.RevenueLabel))

	return data
}

// assembleDashboard runs the normalization pipeline over raw rows. The
// period columns come from the first row's headers; sheets repeat the same
// headers on every row.
func assembleDashboard(rows []domain.Row) domain.DashboardData {
	periods := make([]string, 0, len(rows[0]))
	for header := range rows[0] {
		if dataprocessing.IsPeriodColumn(header) {
			periods = append(periods, header)
		}
	}
	dataprocessing.SortPeriodsDescending(periods)

	data := domain.DegradedDashboardData()

	revenueRow, found := dataprocessing.FindRevenueRow(rows)
	if found && len(periods) > 0 {
		data.CardData = dataprocessing.SummarizeCard(revenueRow, periods)
		data.HistoricalData = dataprocessing.ExtractHistorical(rows, periods)
	}

	for _, row := range rows {
		if row.HasContent() {
			data.AllRows = append(data.AllRows, row)
		}
	}

	return data
}

// LoadAll fetches every configured company concurrently and returns the
// results keyed by ticker. Individual failures are already absorbed into
// degraded placeholders, so the returned error only reflects a failure of
// the join machinery itself.
func (s *DashboardService) LoadAll(ctx context.Context) (map[string]domain.DashboardData, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]domain.DashboardData, len(s.companies))

	for i, company := range s.companies {
		g.Go(func() error {
			results[i] = s.CompanyDashboard(ctx, company.Ticker)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	dashboards := make(map[string]domain.DashboardData, len(s.companies))
	for i, company := range s.companies {
		dashboards[company.Ticker] = results[i]
	}
	return dashboards, nil
}
