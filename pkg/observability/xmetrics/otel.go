package xmetrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	defaultInstrumentationName = "github.com/omeyang/xtee/xmetrics"

	metricInputBytes    = "xtee.input.bytes"
	metricSinkBytes     = "xtee.sink.bytes"
	metricSinkRotations = "xtee.sink.rotations"
	metricSinkFailures  = "xtee.sink.failures"

	attrSink   = "sink"
	attrAction = "action"
	attrPipe   = "pipe"
)

type otelConfig struct {
	instrumentationName string
	meterProvider       metric.MeterProvider
}

// Option 定义 OTel Recorder 的配置选项。
type Option func(*otelConfig)

// WithInstrumentationName 设置 OTel instrumentation 名称。
func WithInstrumentationName(name string) Option {
	return func(cfg *otelConfig) {
		if name != "" {
			cfg.instrumentationName = name
		}
	}
}

// WithMeterProvider 设置 MeterProvider，nil 时使用全局 Provider。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(cfg *otelConfig) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

type otelRecorder struct {
	input     metric.Int64Counter
	bytes     metric.Int64Counter
	rotations metric.Int64Counter
	failures  metric.Int64Counter
}

// NewOTelRecorder 创建基于 OpenTelemetry 的 Recorder。
func NewOTelRecorder(opts ...Option) (Recorder, error) {
	cfg := &otelConfig{
		instrumentationName: defaultInstrumentationName,
		meterProvider:       otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	meter := cfg.meterProvider.Meter(cfg.instrumentationName)
	r := &otelRecorder{}

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
		unit string
	}{
		{&r.input, metricInputBytes, "bytes read from input", "By"},
		{&r.bytes, metricSinkBytes, "bytes written to sink", "By"},
		{&r.rotations, metricSinkRotations, "sink rotations", "1"},
		{&r.failures, metricSinkFailures, "sink write or flush failures", "1"},
	}
	for _, c := range counters {
		counter, err := meter.Int64Counter(c.name,
			metric.WithDescription(c.desc),
			metric.WithUnit(c.unit),
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrCreateCounter, c.name, err)
		}
		*c.dst = counter
	}
	return r, nil
}

func (r *otelRecorder) RecordRead(ctx context.Context, n int) {
	if n <= 0 {
		return
	}
	r.input.Add(normalize(ctx), int64(n))
}

func (r *otelRecorder) RecordWrite(ctx context.Context, sink string, n int) {
	if n <= 0 {
		return
	}
	r.bytes.Add(normalize(ctx), int64(n), metric.WithAttributes(attribute.String(attrSink, sink)))
}

func (r *otelRecorder) RecordRotation(ctx context.Context, sink string) {
	r.rotations.Add(normalize(ctx), 1, metric.WithAttributes(attribute.String(attrSink, sink)))
}

func (r *otelRecorder) RecordFailure(ctx context.Context, sink, action string, pipe bool) {
	r.failures.Add(normalize(ctx), 1, metric.WithAttributes(
		attribute.String(attrSink, sink),
		attribute.String(attrAction, action),
		attribute.Bool(attrPipe, pipe),
	))
}

func normalize(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
