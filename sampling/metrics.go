package sampling

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("lvbayes.sampling")
	meter  = otel.Meter("lvbayes.sampling")
)

var (
	estimateLatency metric.Float64Histogram
	samplesTotal    metric.Int64Counter
	rejectedTotal   metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		estimateLatency, err = meter.Float64Histogram(
			"sampling_estimate_duration_seconds",
			metric.WithDescription("Duration of sampling-based marginal estimates"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		samplesTotal, err = meter.Int64Counter(
			"sampling_samples_total",
			metric.WithDescription("Samples drawn (forward samples or Gibbs sweeps)"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		rejectedTotal, err = meter.Int64Counter(
			"sampling_rejected_total",
			metric.WithDescription("Forward samples discarded by rejection sampling"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordEstimate records one finished marginal estimate.
func recordEstimate(ctx context.Context, method string, drawn, rejected int, duration time.Duration, success bool) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.Bool("success", success),
	)
	estimateLatency.Record(ctx, duration.Seconds(), attrs)
	samplesTotal.Add(ctx, int64(drawn), attrs)
	if rejected > 0 {
		rejectedTotal.Add(ctx, int64(rejected), attrs)
	}
}

func startEstimateSpan(ctx context.Context, method, variable string, samples int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "sampling."+method,
		trace.WithAttributes(
			attribute.String("sampling.variable", variable),
			attribute.Int("sampling.samples", samples),
		),
	)
}

func endEstimateSpan(span trace.Span, drawn int, err error) {
	span.SetAttributes(attribute.Int("sampling.drawn", drawn))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
