//go:build unix

package xpolicy

import (
	"errors"

	"golang.org/x/sys/unix"
)

// IsBrokenPipe 报告 err 链中是否包含 EPIPE。
func IsBrokenPipe(err error) bool {
	return errors.Is(err, unix.EPIPE)
}

// IsTransient 报告 err 是否为可立即重试的中断类错误（EINTR / EAGAIN）。
// 非阻塞的标准输出在管道满时返回 EAGAIN。
func IsTransient(err error) bool {
	return errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN)
}
