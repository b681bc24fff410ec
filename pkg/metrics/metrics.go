// Package metrics wires OpenTelemetry instruments to the Prometheus registry
// served on the metrics endpoint, and defines the instruments the ledger
// records settlements with.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// transferBuckets bucket the number of payments a settlement needs.
var transferBuckets = []float64{0, 1, 2, 3, 5, 8, 13, 21, 34} //nolint: gochecknoglobals

// NewMeterProvider creates an SDK meter provider whose readings are exported
// through the given Prometheus registerer.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Settlements records every run of the settlement engine.
type Settlements struct {
	computed  metric.Int64Counter
	transfers metric.Int64Histogram
	duration  metric.Float64Histogram
}

// NewSettlements creates the settlement instruments on the given meter provider.
func NewSettlements(mp metric.MeterProvider) (*Settlements, error) {
	meter := mp.Meter("settleup/ledger")

	computed, err := meter.Int64Counter("settleup.settlements.computed",
		metric.WithDescription("Number of settlements computed"))
	if err != nil {
		return nil, fmt.Errorf("could not create computed counter: %w", err)
	}

	transfers, err := meter.Int64Histogram("settleup.settlements.transfers",
		metric.WithDescription("Number of transfers per settlement"),
		metric.WithExplicitBucketBoundaries(transferBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create transfers histogram: %w", err)
	}

	duration, err := meter.Float64Histogram("settleup.settlements.duration",
		metric.WithDescription("Time spent computing a settlement"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Settlements{
		computed:  computed,
		transfers: transfers,
		duration:  duration,
	}, nil
}

// Record registers one settlement run. A nil receiver records nothing.
func (s *Settlements) Record(ctx context.Context, balanced bool, transfers int, took time.Duration) {
	if s == nil {
		return
	}

	attrs := metric.WithAttributes(attribute.Bool("balanced", balanced))
	s.computed.Add(ctx, 1, attrs)
	s.transfers.Record(ctx, int64(transfers), attrs)
	s.duration.Record(ctx, took.Seconds(), attrs)
}
