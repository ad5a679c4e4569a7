package xfanout

import (
	"fmt"
	"io"
	"sync"
)

// Reporter 诊断通道，接收需要告知用户的失败
type Reporter interface {
	Report(name string, err error)
}

// ReporterFunc 函数适配器
type ReporterFunc func(name string, err error)

// Report 调用 f
func (f ReporterFunc) Report(name string, err error) {
	f(name, err)
}

// WriterReporter 把诊断写为 "{name}: {error}" 行
type WriterReporter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterReporter 创建写入 w 的诊断通道
func NewWriterReporter(w io.Writer) *WriterReporter {
	return &WriterReporter{w: w}
}

// Report 输出一行诊断，写入失败被忽略
func (r *WriterReporter) Report(name string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintf(r.w, "%s: %v\n", name, err)
}

type discardReporter struct{}

func (discardReporter) Report(string, error) {}

// DiscardReporter 丢弃所有诊断
var DiscardReporter Reporter = discardReporter{}
