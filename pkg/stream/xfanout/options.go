package xfanout

import (
	"context"
	"os"
	"time"

	"github.com/omeyang/xtee/pkg/observability/xlog"
	"github.com/omeyang/xtee/pkg/observability/xmetrics"
	"github.com/omeyang/xtee/pkg/stream/xpolicy"
)

const (
	// DefaultRetryAttempts 单次 write-all 遇到中断类错误时的最大尝试次数
	DefaultRetryAttempts uint = 5
	// DefaultRetryDelay 中断类错误的重试间隔
	DefaultRetryDelay = time.Millisecond
)

type options struct {
	ctx           context.Context
	mode          xpolicy.Mode
	reporter      Reporter
	recorder      xmetrics.Recorder
	logger        xlog.Logger
	retryAttempts uint
	retryDelay    time.Duration
}

func defaultOptions() options {
	return options{
		ctx:           context.Background(),
		mode:          xpolicy.DefaultMode,
		reporter:      NewWriterReporter(os.Stderr),
		recorder:      xmetrics.NoopRecorder{},
		logger:        xlog.Nop(),
		retryAttempts: DefaultRetryAttempts,
		retryDelay:    DefaultRetryDelay,
	}
}

// Option 配置 Broadcaster
type Option func(*options)

// WithMode 设置失败模式，无效值被忽略
func WithMode(mode xpolicy.Mode) Option {
	return func(o *options) {
		if mode.IsValid() {
			o.mode = mode
		}
	}
}

// WithReporter 设置诊断通道，默认写到标准错误
func WithReporter(r Reporter) Option {
	return func(o *options) {
		if r != nil {
			o.reporter = r
		}
	}
}

// WithRecorder 设置指标记录器
func WithRecorder(r xmetrics.Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithLogger 设置生命周期日志
func WithLogger(l xlog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithContext 设置日志和指标使用的 context
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithRetry 设置中断类写错误的重试次数和间隔，attempts 为 0 时忽略
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(o *options) {
		if attempts > 0 {
			o.retryAttempts = attempts
		}
		if delay >= 0 {
			o.retryDelay = delay
		}
	}
}
