// Package metrics records calculator and advisory-channel metrics through the
// OpenTelemetry metric API and exposes them to Prometheus.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60} //nolint: gochecknoglobals

const meterName = "taxsim"

// Calculation kinds used as the "kind" attribute.
const (
	KindIncome       = "income"
	KindInheritance  = "inheritance"
	KindCapitalGains = "capital_gains"
)

// NewPrometheusMeterProvider returns a MeterProvider whose instruments are
// collected by the given Prometheus registerer.
func NewPrometheusMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Recorder holds the application instruments. A nil *Recorder is valid and
// records nothing, so callers that do not care about metrics can pass nil.
type Recorder struct {
	calculations    metric.Int64Counter
	clampedInputs   metric.Int64Counter
	advisorDuration metric.Float64Histogram
	advisorFailures metric.Int64Counter
}

// NewRecorder creates the instruments on a meter obtained from mp.
func NewRecorder(mp metric.MeterProvider) (*Recorder, error) {
	meter := mp.Meter(meterName)

	calculations, err := meter.Int64Counter("taxsim.calculations",
		metric.WithDescription("Number of completed tax calculations"))
	if err != nil {
		return nil, fmt.Errorf("could not create calculations counter: %w", err)
	}

	clamped, err := meter.Int64Counter("taxsim.inputs.clamped",
		metric.WithDescription("Number of negative inputs floored to zero"))
	if err != nil {
		return nil, fmt.Errorf("could not create clamped inputs counter: %w", err)
	}

	duration, err := meter.Float64Histogram("taxsim.advisor.duration",
		metric.WithDescription("Latency of advisory completion requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create advisor duration histogram: %w", err)
	}

	failures, err := meter.Int64Counter("taxsim.advisor.failures",
		metric.WithDescription("Number of failed advisory requests"))
	if err != nil {
		return nil, fmt.Errorf("could not create advisor failures counter: %w", err)
	}

	return &Recorder{
		calculations:    calculations,
		clampedInputs:   clamped,
		advisorDuration: duration,
		advisorFailures: failures,
	}, nil
}

// Calculation counts one completed calculation of the given kind.
func (r *Recorder) Calculation(ctx context.Context, kind string) {
	if r == nil {
		return
	}
	r.calculations.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// InputClamped counts one negative input that was floored to zero.
func (r *Recorder) InputClamped(ctx context.Context, kind, field string) {
	if r == nil {
		return
	}
	r.clampedInputs.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("field", field)))
}

// AdvisorCall records the latency of one advisory request and, when reason is
// non-empty, counts it as a failure with that reason.
func (r *Recorder) AdvisorCall(ctx context.Context, took time.Duration, reason string) {
	if r == nil {
		return
	}
	r.advisorDuration.Record(ctx, took.Seconds())
	if reason != "" {
		r.advisorFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
	}
}
