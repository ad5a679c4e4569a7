// Package xlog 基于 log/slog 的结构化日志。
//
// # 创建 Logger
//
// 使用 Builder 模式（first-error-wins：遇到第一个配置错误后，Build 返回该错误）：
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		SetRotation("/var/log/xtee.log", xrotate.WithMaxSize(50)).
//		Build()
//	defer cleanup()
//
// SetRotation 通过 xrotate.NewLumberjack 按大小轮转日志文件；cleanup 负责关闭它。
//
// # 与诊断输出的关系
//
// xlog 只记录生命周期事件（输出端打开、轮转、移除）。用户可见的
// "{sink}: {error}" 诊断行不经过 xlog。
//
// # 日志级别
//
// LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)。
// Level 实现 encoding.TextMarshaler/TextUnmarshaler，可直接用于配置文件。
//
// # 便捷属性
//
// [Err]、[Sink]、[Path]、[Index]、[Count]、[Bytes]、[Component]。
//
// 不需要日志时使用 [Nop]。
package xlog
