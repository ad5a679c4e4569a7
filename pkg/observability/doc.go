// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展，支持写入轮转文件
//   - xmetrics: 输入字节、输出端字节、轮转与失败处置的 OpenTelemetry 计数器
package observability
