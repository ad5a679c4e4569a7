// Package stream 提供字节流分发相关的子包。
//
// 子包列表：
//   - xpolicy: 输出错误处理模式与失败判定
//   - xsink: 输出端抽象，标准输出直通端和轮转文件端
//   - xfanout: 把输入广播到多个输出端，按失败策略移除出错的输出端
package stream
