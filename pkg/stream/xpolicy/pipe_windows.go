//go:build windows

package xpolicy

import (
	"errors"

	"golang.org/x/sys/windows"
)

// IsBrokenPipe 报告 err 链中是否包含管道已关闭类错误。
// Windows 上写入已关闭的匿名管道返回 ERROR_NO_DATA 或 ERROR_BROKEN_PIPE。
func IsBrokenPipe(err error) bool {
	return errors.Is(err, windows.ERROR_BROKEN_PIPE) || errors.Is(err, windows.ERROR_NO_DATA)
}

// IsTransient Windows 上没有需要重试的中断类写错误。
func IsTransient(error) bool {
	return false
}
