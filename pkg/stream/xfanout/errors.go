package xfanout

import "errors"

var (
	// ErrNoDestinations 所有输出端都已被移除
	ErrNoDestinations = errors.New("xfanout: no destinations remain")

	// ErrRead 读取输入失败
	ErrRead = errors.New("xfanout: read input")
)

// SinkError 导致本次广播中止的输出端失败
type SinkError struct {
	// Sink 输出端诊断标识
	Sink string
	// Op 失败的操作（"write" 或 "flush"）
	Op string
	// Err 原始错误
	Err error
}

func (e *SinkError) Error() string {
	return e.Sink + ": " + e.Err.Error()
}

func (e *SinkError) Unwrap() error {
	return e.Err
}
