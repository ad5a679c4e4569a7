package xpolicy

import "errors"

// ErrUnknownMode 表示无法识别的模式名称。
var ErrUnknownMode = errors.New("xpolicy: unknown output error mode")
