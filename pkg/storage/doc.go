// Package storage 提供数据存储相关的子包。
//
// 子包列表：
//   - xrotate: 编号代际文件轮转（FILE.0、FILE.1 …）与基于 lumberjack 的日志轮转
package storage
