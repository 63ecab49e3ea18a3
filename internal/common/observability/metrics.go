package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Observability struct {
	meterProvider *metric.MeterProvider
	meter         otelmetric.Meter
	pageCounter   otelmetric.Int64Counter
	chatCounter   otelmetric.Int64Counter
	chatDuration  otelmetric.Float64Histogram
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	pageCounter, _ := meter.Int64Counter(
		"pages.served",
		otelmetric.WithDescription("Number of programmatic pages served"),
	)

	chatCounter, _ := meter.Int64Counter(
		"chat.turns",
		otelmetric.WithDescription("Number of chat turns handled"),
	)

	chatDuration, _ := meter.Float64Histogram(
		"chat.duration",
		otelmetric.WithDescription("Chat completion duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider: provider,
		meter:         meter,
		pageCounter:   pageCounter,
		chatCounter:   chatCounter,
		chatDuration:  chatDuration,
	}
}

func (o *Observability) RecordPageServed(ctx context.Context, pageKind string) {
	if o.pageCounter != nil {
		o.pageCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("page_kind", pageKind),
		))
	}
}

func (o *Observability) RecordChatTurn(ctx context.Context, status string, elapsed time.Duration) {
	if o.chatCounter != nil {
		o.chatCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("status", status),
		))
	}
	if o.chatDuration != nil {
		o.chatDuration.Record(ctx, float64(elapsed.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("status", status),
		))
	}
}

func (o *Observability) Shutdown(ctx context.Context) error {
	if o.meterProvider == nil {
		return nil
	}
	return o.meterProvider.Shutdown(ctx)
}
