package xlog

import "log/slog"

// 常用属性 Key
const (
	KeyError     = "error"
	KeySink      = "sink"
	KeyPath      = "path"
	KeyIndex     = "index"
	KeyCount     = "count"
	KeyBytes     = "bytes"
	KeyComponent = "component"
)

// Err 创建错误属性，err 为 nil 时返回空属性（会被 slog 忽略）
//
// 示例：
//
//	if err != nil {
//	    logger.Error(ctx, "rotate failed", xlog.Sink(name), xlog.Err(err))
//	}
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Sink 创建输出端标识属性
func Sink(name string) slog.Attr {
	return slog.String(KeySink, name)
}

// Path 创建文件路径属性
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Index 创建代际编号属性
func Index(i int) slog.Attr {
	return slog.Int(KeyIndex, i)
}

// Count 创建计数属性
func Count(n int64) slog.Attr {
	return slog.Int64(KeyCount, n)
}

// Bytes 创建字节数属性
func Bytes(n int64) slog.Attr {
	return slog.Int64(KeyBytes, n)
}

// Component 创建组件名属性
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}
