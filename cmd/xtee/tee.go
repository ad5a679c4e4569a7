package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/omeyang/xtee/pkg/observability/xlog"
	"github.com/omeyang/xtee/pkg/observability/xmetrics"
	"github.com/omeyang/xtee/pkg/storage/xrotate"
	"github.com/omeyang/xtee/pkg/stream/xfanout"
	"github.com/omeyang/xtee/pkg/stream/xsink"
)

// tee 打开输出端，复制输入直到 EOF 或失败，最后刷新并关闭。
//
// 所有失败都已写入诊断通道，返回 nil 或 errReported。
func (a *app) tee(ctx context.Context, s settings) error {
	logger, cleanup, err := a.buildLogger(s.Log)
	if err != nil {
		fmt.Fprintf(a.stderr, "xtee: log: %v\n", err)
		return errReported
	}
	defer func() { _ = cleanup() }()

	var (
		recorder xmetrics.Recorder = xmetrics.NoopRecorder{}
		reader   *sdkmetric.ManualReader
	)
	if s.StatsFile != "" {
		reader = sdkmetric.NewManualReader()
		mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		defer func() { _ = mp.Shutdown(context.WithoutCancel(ctx)) }()
		if recorder, err = xmetrics.NewOTelRecorder(xmetrics.WithMeterProvider(mp)); err != nil {
			return a.fail(ctx, logger, err)
		}
	}

	sinks, err := a.openSinks(ctx, s, logger, recorder)
	if err != nil {
		return a.fail(ctx, logger, err)
	}

	b := xfanout.New(sinks,
		xfanout.WithMode(s.mode),
		xfanout.WithReporter(xfanout.NewWriterReporter(a.stderr)),
		xfanout.WithRecorder(recorder),
		xfanout.WithLogger(logger),
		xfanout.WithContext(ctx),
	)
	logger.Debug(ctx, "tee started",
		slog.String("mode", s.mode.String()), xlog.Count(int64(b.Len())), xlog.Bytes(int64(s.BufferSize.Bytes())))

	n, copyErr := xfanout.Copy(ctx, b, a.stdin, int(s.BufferSize.Bytes()))
	flushErr := b.Flush()
	if err := b.Close(); err != nil {
		logger.Warn(ctx, "close sinks failed", xlog.Err(err))
	}

	logger.Debug(ctx, "tee finished",
		xlog.Bytes(n), xlog.Count(int64(b.Suppressed())), xlog.Err(errors.Join(copyErr, flushErr)))

	failed := copyErr != nil || flushErr != nil
	if copyErr != nil && !reported(copyErr) {
		// ctx 取消等未经诊断通道的错误
		fmt.Fprintf(a.stderr, "xtee: %v\n", copyErr)
	}

	if reader != nil {
		if err := writeStats(ctx, reader, s.StatsFile); err != nil {
			fmt.Fprintf(a.stderr, "xtee: %v\n", err)
			failed = true
		}
	}

	if failed {
		return errReported
	}
	return nil
}

// openSinks 按顺序创建标准输出直通端和文件输出端，任一失败时关闭已打开的文件。
func (a *app) openSinks(ctx context.Context, s settings, logger xlog.Logger, recorder xmetrics.Recorder) ([]xsink.Sink, error) {
	sinks := make([]xsink.Sink, 0, len(s.Files)+1)
	sinks = append(sinks, xsink.NewPassThrough(xsink.StdoutName, a.stdout))

	onRotate := func(ev xrotate.RotateEvent) {
		recorder.RecordRotation(ctx, ev.Base)
		logger.Info(ctx, "sink rotated", xlog.Sink(ev.Base), xlog.Index(ev.Index), xlog.Path(ev.Path))
		if ev.Removed != "" {
			logger.Debug(ctx, "generation removed", xlog.Sink(ev.Base), xlog.Path(ev.Removed))
		}
	}

	for _, name := range s.Files {
		opts := []xrotate.GenerationOption{
			xrotate.WithAppend(s.Append),
			xrotate.WithMaxFiles(s.MaxFiles),
			xrotate.WithSync(s.Fsync),
			xrotate.WithOnRotate(onRotate),
		}
		if s.Rotate {
			opts = append(opts, xrotate.WithRotation(int64(s.MaxSize.Bytes())))
		}

		sink, err := xsink.OpenRotating(name, opts...)
		if err != nil {
			for _, opened := range sinks {
				_ = opened.Close()
			}
			return nil, err
		}
		gen := sink.Generation()
		logger.Debug(ctx, "sink opened",
			xlog.Sink(name), xlog.Path(gen.Path()), xlog.Index(gen.Index()), xlog.Bytes(gen.Size()))
		sinks = append(sinks, sink)
	}
	return sinks, nil
}

func (a *app) buildLogger(ls logSettings) (xlog.LoggerWithLevel, func() error, error) {
	b := xlog.New().
		SetOutput(a.stderr).
		SetLevelString(ls.Level).
		SetFormat(ls.Format)
	if ls.File != "" {
		var opts []xrotate.LumberjackOption
		if ls.MaxSizeMB > 0 {
			opts = append(opts, xrotate.WithMaxSize(ls.MaxSizeMB))
		}
		if ls.MaxBackups > 0 {
			opts = append(opts, xrotate.WithMaxBackups(ls.MaxBackups))
		}
		b = b.SetRotation(ls.File, opts...)
	}
	return b.Build()
}

// fail 输出启动阶段的错误并返回 errReported
func (a *app) fail(ctx context.Context, logger xlog.Logger, err error) error {
	logger.Debug(ctx, "startup failed", xlog.Err(err))
	fmt.Fprintf(a.stderr, "xtee: %v\n", err)
	return errReported
}

// reported 报告 err 是否已经由广播器或 Copy 写入诊断通道
func reported(err error) bool {
	var se *xfanout.SinkError
	return errors.As(err, &se) || errors.Is(err, xfanout.ErrRead)
}
