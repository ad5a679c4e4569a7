package xsink

import (
	"io"
	"strconv"
)

// Kind 输出端类型标签
type Kind int

const (
	// KindPassThrough 直通输出端
	KindPassThrough Kind = iota
	// KindRotatingFile 轮转文件输出端
	KindRotatingFile
)

// String 返回类型名称
func (k Kind) String() string {
	switch k {
	case KindPassThrough:
		return "pass-through"
	case KindRotatingFile:
		return "rotating-file"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Sink 可写输出端
type Sink interface {
	io.Writer

	// Name 返回诊断用标识（文件路径或固定标签）
	Name() string

	// Kind 返回输出端类型
	Kind() Kind

	// Flush 把已写入的数据推送到底层存储
	Flush() error

	// Close 释放输出端持有的资源
	Close() error
}

// flusher 可选的刷新能力（bufio.Writer 等）
type flusher interface {
	Flush() error
}
