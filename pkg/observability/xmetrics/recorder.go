package xmetrics

import "context"

// 失败处置，与 xpolicy.Action 的字符串形式一致
const (
	ActionSuppress = "suppress"
	ActionAbort    = "abort"
)

// Recorder 记录 tee 运行事件。
//
// 实现必须允许 nil ctx。
type Recorder interface {
	// RecordRead 记录从输入读取的字节数
	RecordRead(ctx context.Context, n int)
	// RecordWrite 记录写入某个输出端的字节数
	RecordWrite(ctx context.Context, sink string, n int)
	// RecordRotation 记录一次轮转
	RecordRotation(ctx context.Context, sink string)
	// RecordFailure 记录一次失败及其处置
	RecordFailure(ctx context.Context, sink, action string, pipe bool)
}

// NoopRecorder 是空实现。
type NoopRecorder struct{}

var _ Recorder = NoopRecorder{}

// RecordRead 空实现
func (NoopRecorder) RecordRead(context.Context, int) {}

// RecordWrite 空实现
func (NoopRecorder) RecordWrite(context.Context, string, int) {}

// RecordRotation 空实现
func (NoopRecorder) RecordRotation(context.Context, string) {}

// RecordFailure 空实现
func (NoopRecorder) RecordFailure(context.Context, string, string, bool) {}
