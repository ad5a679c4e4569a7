package xsink

import "io"

// StdoutName 标准输出直通端的诊断标识
const StdoutName = "stdout"

var _ Sink = (*PassThrough)(nil)

// PassThrough 直通输出端，Write/Flush 直接委托给目标。
type PassThrough struct {
	name string
	w    io.Writer
}

// NewPassThrough 创建直通输出端。name 为空时使用 [StdoutName]。
func NewPassThrough(name string, w io.Writer) *PassThrough {
	if name == "" {
		name = StdoutName
	}
	return &PassThrough{name: name, w: w}
}

// Name 返回诊断标识
func (p *PassThrough) Name() string { return p.name }

// Kind 返回 [KindPassThrough]
func (p *PassThrough) Kind() Kind { return KindPassThrough }

// Write 委托给目标
func (p *PassThrough) Write(b []byte) (int, error) {
	return p.w.Write(b)
}

// Flush 目标实现 Flush() error 时委托，否则为空操作。
//
// 不对 *os.File 调用 Sync：标准输出通常是管道或终端，fsync 会返回 EINVAL。
func (p *PassThrough) Flush() error {
	if f, ok := p.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Close 不关闭目标，目标的生命周期归创建者所有。
func (p *PassThrough) Close() error {
	return nil
}
