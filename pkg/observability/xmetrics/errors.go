package xmetrics

import "errors"

var (
	// ErrCreateCounter 表示创建 OTel Counter 失败。
	ErrCreateCounter = errors.New("xmetrics: create counter failed")
	// ErrCollect 表示从 Reader 收集指标失败。
	ErrCollect = errors.New("xmetrics: collect failed")
)
