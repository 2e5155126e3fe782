package infer

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

// Package-level tracer and meter for inference operations.
var (
	tracer = otel.Tracer("lvbayes.infer")
	meter  = otel.Meter("lvbayes.infer")
)

var (
	queryLatency     metric.Float64Histogram
	queryTotal       metric.Int64Counter
	eliminationSteps metric.Int64Counter
	factorEntries    metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		queryLatency, err = meter.Float64Histogram(
			"infer_query_duration_seconds",
			metric.WithDescription("Duration of exact inference queries"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		queryTotal, err = meter.Int64Counter(
			"infer_query_total",
			metric.WithDescription("Total number of exact inference queries"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		eliminationSteps, err = meter.Int64Counter(
			"infer_elimination_steps_total",
			metric.WithDescription("Variables eliminated across all queries"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		factorEntries, err = meter.Int64Histogram(
			"infer_combined_factor_entries",
			metric.WithDescription("Table size of the product formed at each elimination step"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordQueryMetrics records one finished query.
func recordQueryMetrics(ctx context.Context, kind string, duration time.Duration, success bool) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("query_type", kind),
		attribute.Bool("success", success),
	)
	queryLatency.Record(ctx, duration.Seconds(), attrs)
	queryTotal.Add(ctx, 1, attrs)
}

// recordStep records one elimination step.
func recordStep(ctx context.Context, kind string, entries int) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("query_type", kind))
	eliminationSteps.Add(ctx, 1, attrs)
	factorEntries.Record(ctx, int64(entries), attrs)
}

// startQuerySpan opens the span for one query.
func startQuerySpan(ctx context.Context, name string, variables, evidence int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "infer."+name,
		trace.WithAttributes(
			attribute.Int("infer.variables", variables),
			attribute.Int("infer.evidence", evidence),
		),
	)
}

// endQuerySpan closes span, marking failures.
func endQuerySpan(span trace.Span, order []string, err error) {
	span.SetAttributes(attribute.StringSlice("infer.order", order))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
