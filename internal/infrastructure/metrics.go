package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.28.0"
)

const (
	// ServiceName identifies this service in telemetry.
	ServiceName = "finboard"
	// MeterName is the instrumentation scope for dashboard metrics.
	MeterName = "finboard"
)

// Metrics bundles the OpenTelemetry meter provider, the dashboard
// instruments, and the Prometheus exposition handler.
type Metrics struct {
	provider *sdkmetric.MeterProvider
	handler  http.Handler
	logger   *slog.Logger

	fetchTotal    metric.Int64Counter
	cacheHits     metric.Int64Counter
	cacheMisses   metric.Int64Counter
	buildDuration metric.Float64Histogram
}

// NewMetrics initializes the meter provider with a Prometheus exporter and
// creates the dashboard instruments.
func NewMetrics(version string, logger *slog.Logger) (*Metrics, error) {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(ServiceName),
		semconv.ServiceVersion(version),
	)

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(MeterName)

	m := &Metrics{
		provider: provider,
		handler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		logger:   logger.With(slog.String("component", "metrics")),
	}

	if m.fetchTotal, err = meter.Int64Counter("finboard_upstream_fetches_total",
		metric.WithDescription("Upstream sheet fetches by outcome")); err != nil {
		return nil, err
	}
	if m.cacheHits, err = meter.Int64Counter("finboard_cache_hits_total",
		metric.WithDescription("Dashboard cache hits")); err != nil {
		return nil, err
	}
	if m.cacheMisses, err = meter.Int64Counter("finboard_cache_misses_total",
		metric.WithDescription("Dashboard cache misses")); err != nil {
		return nil, err
	}
	if m.buildDuration, err = meter.Float64Histogram("finboard_dashboard_build_seconds",
		metric.WithDescription("Time to fetch and assemble one company dashboard"),
		metric.WithUnit("s")); err != nil {
		return nil, err
	}

	return m, nil
}

// Handler returns the Prometheus exposition handler for /metrics.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

// RecordFetch counts one upstream fetch. outcome is "ok", "error" or "empty".
func (m *Metrics) RecordFetch(ctx context.Context, ticker, outcome string) {
	m.fetchTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("ticker", ticker),
		attribute.String("outcome", outcome),
	))
}

// RecordCacheHit counts one cache hit.
func (m *Metrics) RecordCacheHit(ctx context.Context) {
	m.cacheHits.Add(ctx, 1)
}

// RecordCacheMiss counts one cache miss.
func (m *Metrics) RecordCacheMiss(ctx context.Context) {
	m.cacheMisses.Add(ctx, 1)
}

// RecordBuildDuration records one dashboard assembly duration in seconds.
func (m *Metrics) RecordBuildDuration(ctx context.Context, seconds float64) {
	m.buildDuration.Record(ctx, seconds)
}

// Shutdown flushes and stops the meter provider.
func (m *Metrics) Shutdown(ctx context.Context) error {
	if m.provider == nil {
		return nil
	}
	return m.provider.Shutdown(ctx)
}
