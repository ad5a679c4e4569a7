package xfanout

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/omeyang/xtee/pkg/stream/xsink"
)

// memSink 内存输出端，可注入写入/刷新错误和短写
type memSink struct {
	name     string
	buf      bytes.Buffer
	writeErr error
	flushErr error
	closeErr error
	chunk    int // >0 时每次最多写入 chunk 字节
	writes   int
	flushes  int
	closes   int
}

func newMemSink(name string) *memSink {
	return &memSink{name: name}
}

func (m *memSink) Name() string     { return m.name }
func (m *memSink) Kind() xsink.Kind { return xsink.KindPassThrough }

func (m *memSink) Write(p []byte) (int, error) {
	m.writes++
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	if m.chunk > 0 && len(p) > m.chunk {
		p = p[:m.chunk]
	}
	return m.buf.Write(p)
}

func (m *memSink) Flush() error {
	m.flushes++
	return m.flushErr
}

func (m *memSink) Close() error {
	m.closes++
	return m.closeErr
}

// lineReporter 记录诊断行
type lineReporter struct {
	mu    sync.Mutex
	lines []string
}

func (r *lineReporter) Report(name string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, fmt.Sprintf("%s: %v", name, err))
}

func (r *lineReporter) String() string {
	return strings.Join(r.lines, "\n")
}

func pathErr(path string, errno error) error {
	return &fs.PathError{Op: "write", Path: path, Err: errno}
}
