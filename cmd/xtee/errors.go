package main

import "errors"

// usageError 参数错误，退出码 2
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// errReported 运行失败且诊断已经输出，退出码 1
var errReported = errors.New("xtee: failure already reported")
