//go:build !unix && !windows

package xpolicy

// IsBrokenPipe 在其他平台上始终返回 false，所有错误按"其他错误"处理。
func IsBrokenPipe(error) bool {
	return false
}

// IsTransient 在其他平台上始终返回 false。
func IsTransient(error) bool {
	return false
}
