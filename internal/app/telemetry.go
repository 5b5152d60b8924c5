package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const (
	serviceName = "cinema-kiosk"

	telemetryShutdownTimeout = 5 * time.Second
)

// providers are the three signal pipelines, flushed together on shutdown.
type providers struct {
	tracer *trace.TracerProvider
	meter  *metric.MeterProvider
	logger *log.LoggerProvider
}

// InitTelemetry exports traces, metrics and logs to the configured collector.
// Without a collector it returns a no-op shutdown and the logger unchanged.
// Otherwise the returned logger writes to both the given handler and the
// collector.
func InitTelemetry(cfg Config, logger *slog.Logger) (func(context.Context), *slog.Logger, error) {
	tc := cfg.Telemetry
	if tc.CollectorURL == "" {
		logger.Info("telemetry disabled, no collector configured")

		return func(context.Context) {}, logger, nil
	}

	ctx := context.Background()

	res, err := kioskResource(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to describe kiosk resource: %w", err)
	}

	var p providers

	p.tracer, err = newTracerProvider(ctx, tc, res)
	if err != nil {
		return nil, nil, err
	}

	p.meter, err = newMeterProvider(ctx, tc, res)
	if err != nil {
		p.shutdown(ctx)
		return nil, nil, err
	}

	p.logger, err = newLoggerProvider(ctx, tc, res)
	if err != nil {
		p.shutdown(ctx)
		return nil, nil, err
	}

	otel.SetTracerProvider(p.tracer)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	otel.SetMeterProvider(p.meter)
	global.SetLoggerProvider(p.logger)

	logger.Info("telemetry enabled", "collector", tc.CollectorURL, "export_interval", tc.ExportInterval)

	shutdown := func(ctx context.Context) {
		if err := p.shutdown(ctx); err != nil {
			logger.Error("failed to flush telemetry", "error", err)
		}
	}

	exported := otelslog.NewHandler(serviceName, otelslog.WithLoggerProvider(p.logger))

	return shutdown, slog.New(fanoutHandler{logger.Handler(), exported}), nil
}

// kioskResource identifies this kiosk to the collector. Several kiosks share
// a service name, so the host and the configured devices tell them apart.
func kioskResource(ctx context.Context, cfg Config) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithHost(),
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
			semconv.DeploymentEnvironment(cfg.Env),
			attribute.String("kiosk.input", cfg.Input),
			attribute.String("kiosk.display", cfg.Display),
			attribute.String("kiosk.journal", cfg.Journal),
		),
	)
}

func newTracerProvider(ctx context.Context, tc TelemetryConfig, res *resource.Resource) (*trace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(tc.CollectorURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	return trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.AlwaysSample())),
		trace.WithResource(res),
		trace.WithBatcher(exporter),
	), nil
}

func newMeterProvider(ctx context.Context, tc TelemetryConfig, res *resource.Resource) (*metric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithInsecure(),
		otlpmetricgrpc.WithEndpoint(tc.CollectorURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	reader := metric.NewPeriodicReader(exporter, metric.WithInterval(tc.ExportInterval))

	return metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(reader),
	), nil
}

func newLoggerProvider(ctx context.Context, tc TelemetryConfig, res *resource.Resource) (*log.LoggerProvider, error) {
	exporter, err := otlploggrpc.New(ctx,
		otlploggrpc.WithInsecure(),
		otlploggrpc.WithEndpoint(tc.CollectorURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create log exporter: %w", err)
	}

	return log.NewLoggerProvider(
		log.WithResource(res),
		log.WithProcessor(log.NewBatchProcessor(exporter, log.WithExportInterval(tc.ExportInterval))),
	), nil
}

// shutdown flushes whatever providers were created.
func (p providers) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, telemetryShutdownTimeout)
	defer cancel()

	var errs []error
	if p.tracer != nil {
		errs = append(errs, p.tracer.Shutdown(ctx))
	}
	if p.meter != nil {
		errs = append(errs, p.meter.Shutdown(ctx))
	}
	if p.logger != nil {
		errs = append(errs, p.logger.Shutdown(ctx))
	}

	return errors.Join(errs...)
}

// fanoutHandler writes each record to every handler enabled for its level.
type fanoutHandler []slog.Handler

func (h fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle gives every handler its own copy of the record and reports the
// errors of all of them.
func (h fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, handler := range h {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		errs = append(errs, handler.Handle(ctx, record.Clone()))
	}
	return errors.Join(errs...)
}

func (h fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.each(func(handler slog.Handler) slog.Handler {
		return handler.WithAttrs(attrs)
	})
}

func (h fanoutHandler) WithGroup(name string) slog.Handler {
	return h.each(func(handler slog.Handler) slog.Handler {
		return handler.WithGroup(name)
	})
}

func (h fanoutHandler) each(fn func(slog.Handler) slog.Handler) fanoutHandler {
	out := make(fanoutHandler, len(h))
	for i, handler := range h {
		out[i] = fn(handler)
	}
	return out
}
