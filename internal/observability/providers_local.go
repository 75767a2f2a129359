//go:build !gcloud

package observability

import (
	"context"
	"os"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// initProviders builds OTLP/HTTP-backed providers. Without an endpoint
// configured the providers still exist (so instrumented code works) but
// nothing is exported.
func initProviders(ctx context.Context, _ Config, res *resource.Resource, samplingRate float64) (*sdktrace.TracerProvider, *sdkmetric.MeterProvider, error) {
	sampler := sdktrace.ParentBased(sdktrace.TraceIDRatioBased(samplingRate))

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		tracerProvider := sdktrace.NewTracerProvider(
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sampler),
		)
		meterProvider := sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
		)
		return tracerProvider, meterProvider, nil
	}

	traceExporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, nil, err
	}

	metricExporter, err := otlpmetrichttp.New(ctx)
	if err != nil {
		return nil, nil, err
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
		sdktrace.WithBatcher(traceExporter),
	)
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter,
			sdkmetric.WithInterval(30*time.Second),
		)),
	)

	return tracerProvider, meterProvider, nil
}
