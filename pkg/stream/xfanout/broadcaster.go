package xfanout

import (
	"errors"
	"log/slog"

	retry "github.com/avast/retry-go/v5"

	"github.com/omeyang/xtee/pkg/observability/xlog"
	"github.com/omeyang/xtee/pkg/stream/xpolicy"
	"github.com/omeyang/xtee/pkg/stream/xsink"
)

const (
	opWrite = "write"
	opFlush = "flush"
)

// Broadcaster 持有活跃输出端的有序集合。
//
// 集合只会因失败而缩小，被移除的输出端立即关闭且不会再加入。
type Broadcaster struct {
	opts       options
	sinks      []xsink.Sink
	retrier    *retry.Retrier
	suppressed uint64
}

// New 创建广播器，sinks 的顺序即写入顺序，nil 元素被忽略。
func New(sinks []xsink.Sink, opts ...Option) *Broadcaster {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	active := make([]xsink.Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			active = append(active, s)
		}
	}

	return &Broadcaster{
		opts:    o,
		sinks:   active,
		retrier: newRetrier(o.retryAttempts, o.retryDelay),
	}
}

// Write 把 p 完整地交给每个活跃输出端。
//
// 成功时返回 len(p)。有输出端判定为 Abort 时，剩余输出端仍会收到 p，
// 之后返回 0 和第一个 [*SinkError]；活跃集合为空时返回 [ErrNoDestinations]。
func (b *Broadcaster) Write(p []byte) (int, error) {
	err := b.broadcast(opWrite, func(s xsink.Sink) error {
		n, err := writeAll(s, p, b.retrier)
		b.opts.recorder.RecordWrite(b.opts.ctx, s.Name(), n)
		return err
	})
	if err != nil {
		return 0, err
	}
	if len(b.sinks) == 0 {
		return 0, ErrNoDestinations
	}
	return len(p), nil
}

// Flush 刷新每个活跃输出端，失败处理与 Write 相同。
//
// 活跃集合为空时返回 nil。
func (b *Broadcaster) Flush() error {
	return b.broadcast(opFlush, func(s xsink.Sink) error {
		return s.Flush()
	})
}

// Close 关闭所有仍然活跃的输出端并清空集合。
func (b *Broadcaster) Close() error {
	var errs []error
	for _, s := range b.sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, &SinkError{Sink: s.Name(), Op: "close", Err: err})
		}
	}
	b.sinks = nil
	return errors.Join(errs...)
}

// Len 返回活跃输出端数量
func (b *Broadcaster) Len() int {
	return len(b.sinks)
}

// Active 返回活跃输出端的诊断标识，顺序与写入顺序一致
func (b *Broadcaster) Active() []string {
	names := make([]string, len(b.sinks))
	for i, s := range b.sinks {
		names[i] = s.Name()
	}
	return names
}

// Suppressed 返回被判定为 Suppress 的失败次数
func (b *Broadcaster) Suppressed() uint64 {
	return b.suppressed
}

// Mode 返回失败模式
func (b *Broadcaster) Mode() xpolicy.Mode {
	return b.opts.mode
}

// broadcast 对每个活跃输出端执行 fn，并按判定结果重建活跃集合。
//
// 没有失败时不分配新切片。
func (b *Broadcaster) broadcast(op string, fn func(xsink.Sink) error) error {
	if op == opWrite && len(b.sinks) == 0 {
		return ErrNoDestinations
	}

	var (
		kept    []xsink.Sink
		aborted error
	)
	for i, s := range b.sinks {
		err := fn(s)
		if err == nil {
			if kept != nil {
				kept = append(kept, s)
			}
			continue
		}
		if kept == nil {
			kept = make([]xsink.Sink, i, len(b.sinks))
			copy(kept, b.sinks[:i])
		}
		if b.fail(op, s, err) && aborted == nil {
			aborted = &SinkError{Sink: s.Name(), Op: op, Err: err}
		}
	}
	if kept != nil {
		b.sinks = kept
	}
	return aborted
}

// fail 处理单个输出端的失败，返回是否中止。
func (b *Broadcaster) fail(op string, s xsink.Sink, err error) bool {
	ctx := b.opts.ctx
	name := s.Name()
	verdict := xpolicy.Decide(b.opts.mode, err)

	if verdict.Report {
		b.opts.reporter.Report(name, err)
	}
	if verdict.Action == xpolicy.Suppress {
		b.suppressed++
	}
	b.opts.recorder.RecordFailure(ctx, name, verdict.Action.String(), xpolicy.IsBrokenPipe(err))

	b.opts.logger.Debug(ctx, "sink removed",
		xlog.Sink(name),
		slog.String("op", op),
		slog.String("action", verdict.Action.String()),
		xlog.Err(err),
	)
	if cerr := s.Close(); cerr != nil {
		b.opts.logger.Debug(ctx, "close removed sink failed", xlog.Sink(name), xlog.Err(cerr))
	}
	return verdict.Action == xpolicy.Abort
}
