// Package xsink 定义 xtee 的输出端。
//
// 输出端是封闭的两种变体：
//
//   - [PassThrough]: 直通输出端，包装一个始终打开的目标（通常是标准输出），
//     不轮转，Close 不关闭目标。
//   - [Rotating]: 文件输出端，独占一个 [xrotate.Generation]，按阈值轮转到
//     "{base}.{index}"。
//
// [Sink] 接口是 xfanout 广播器唯一依赖的能力集合；Name 只用于诊断信息，
// 不参与相等性判断。
package xsink
