package observe

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/jonwraymond/pulse/observe/exporters"
)

// Config holds all configuration for an Observer.
type Config struct {
	ServiceName string
	Version     string
	Metrics     MetricsConfig
	Tracing     TracingConfig
	Logging     LoggingConfig
}

// MetricsConfig configures the metrics subsystem.
type MetricsConfig struct {
	Enabled  bool
	Exporter string // otlp|prometheus|stdout|none
}

// TracingConfig configures the tracing subsystem.
type TracingConfig struct {
	Enabled   bool
	Exporter  string  // otlp|stdout|none
	SamplePct float64 // 0.0-1.0
}

// LoggingConfig configures the logging subsystem.
type LoggingConfig struct {
	Enabled bool
	Level   string // debug|info|warn|error
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.ServiceName == "" {
		return ErrMissingServiceName
	}

	if c.Metrics.Enabled {
		switch c.Metrics.Exporter {
		case "otlp", "prometheus", "stdout", "none", "":
		default:
			return fmt.Errorf("%w: %q", ErrInvalidMetricsExporter, c.Metrics.Exporter)
		}
	}

	if c.Tracing.Enabled {
		switch c.Tracing.Exporter {
		case "otlp", "stdout", "none", "":
		default:
			return fmt.Errorf("%w: %q", ErrInvalidTracingExporter, c.Tracing.Exporter)
		}
		if c.Tracing.SamplePct < 0 || c.Tracing.SamplePct > 1.0 {
			return fmt.Errorf("%w: got %f", ErrInvalidSamplePct, c.Tracing.SamplePct)
		}
	}

	if c.Logging.Enabled {
		switch c.Logging.Level {
		case "debug", "info", "warn", "error", "":
		default:
			return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
		}
	}

	return nil
}

// Observer bundles the configured telemetry primitives. Disabled subsystems
// are backed by no-op providers, so holders never need nil checks.
type Observer struct {
	meter  metric.Meter
	tracer trace.Tracer
	logger Logger

	meterProvider  *sdkmetric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
}

// New creates an Observer from the given configuration.
func New(ctx context.Context, cfg Config) (*Observer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.Version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	obs := &Observer{}

	if cfg.Metrics.Enabled {
		reader, err := exporters.NewMetricsReader(ctx, cfg.Metrics.Exporter)
		if err != nil {
			return nil, fmt.Errorf("failed to setup metrics: %w", err)
		}
		opts := []sdkmetric.Option{sdkmetric.WithResource(res)}
		if reader != nil {
			opts = append(opts, sdkmetric.WithReader(reader))
		}
		obs.meterProvider = sdkmetric.NewMeterProvider(opts...)
		otel.SetMeterProvider(obs.meterProvider)
		obs.meter = obs.meterProvider.Meter(cfg.ServiceName)
	} else {
		obs.meter = metricnoop.NewMeterProvider().Meter("noop")
	}

	if cfg.Tracing.Enabled {
		exporter, err := exporters.NewTracingExporter(ctx, cfg.Tracing.Exporter)
		if err != nil {
			return nil, fmt.Errorf("failed to setup tracing: %w", err)
		}

		var sampler sdktrace.Sampler
		switch {
		case cfg.Tracing.SamplePct >= 1.0:
			sampler = sdktrace.AlwaysSample()
		case cfg.Tracing.SamplePct <= 0:
			sampler = sdktrace.NeverSample()
		default:
			sampler = sdktrace.TraceIDRatioBased(cfg.Tracing.SamplePct)
		}

		opts := []sdktrace.TracerProviderOption{
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sampler),
		}
		if exporter != nil {
			opts = append(opts, sdktrace.WithBatcher(exporter))
		}
		obs.tracerProvider = sdktrace.NewTracerProvider(opts...)
		otel.SetTracerProvider(obs.tracerProvider)
		obs.tracer = obs.tracerProvider.Tracer(cfg.ServiceName)
	} else {
		obs.tracer = tracenoop.NewTracerProvider().Tracer("noop")
	}

	if cfg.Logging.Enabled {
		obs.logger = NewLogger(cfg.Logging.Level)
	} else {
		obs.logger = Nop()
	}

	return obs, nil
}

// Meter returns the configured meter.
func (o *Observer) Meter() metric.Meter {
	return o.meter
}

// Tracer returns the configured tracer.
func (o *Observer) Tracer() trace.Tracer {
	return o.tracer
}

// Logger returns the configured logger.
func (o *Observer) Logger() Logger {
	return o.logger
}

// Shutdown gracefully shuts down the telemetry providers, returning any
// errors joined.
func (o *Observer) Shutdown(ctx context.Context) error {
	var errs []error

	if o.tracerProvider != nil {
		if err := o.tracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}

	if o.meterProvider != nil {
		if err := o.meterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}

	return errors.Join(errs...)
}
