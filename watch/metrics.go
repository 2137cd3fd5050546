package watch

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the daemon's operational metrics
type Metrics struct {
	scans         metric.Int64Counter
	scanDuration  metric.Float64Histogram
	taggedTotal   metric.Int64Gauge
	resourceTotal metric.Int64Gauge
}

// NewMetrics creates daemon metrics following OTEL naming conventions
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter("louhi.watch")

	scans, err := meter.Int64Counter(
		"louhi.watch.scans",
		metric.WithDescription("Number of inventory scans run"),
		metric.WithUnit("{scan}"),
	)
	if err != nil {
		return nil, err
	}

	scanDuration, err := meter.Float64Histogram(
		"louhi.watch.scan.duration",
		metric.WithDescription("Duration of inventory scans"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	taggedTotal, err := meter.Int64Gauge(
		"louhi.resources.tagged",
		metric.WithDescription("Tagged resources found in the last scan"),
		metric.WithUnit("{resource}"),
	)
	if err != nil {
		return nil, err
	}

	resourceTotal, err := meter.Int64Gauge(
		"louhi.resources.discovered",
		metric.WithDescription("Resources discovered by enumeration in the last scan"),
		metric.WithUnit("{resource}"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		scans:         scans,
		scanDuration:  scanDuration,
		taggedTotal:   taggedTotal,
		resourceTotal: resourceTotal,
	}, nil
}

// RecordScan records one completed scan
func (m *Metrics) RecordScan(ctx context.Context, status string, seconds float64, tagged, discovered int) {
	attrs := metric.WithAttributes(attribute.String("status", status))
	m.scans.Add(ctx, 1, attrs)
	m.scanDuration.Record(ctx, seconds, attrs)
	m.taggedTotal.Record(ctx, int64(tagged))
	m.resourceTotal.Record(ctx, int64(discovered))
}
