// Package xfanout 把一个输入流广播到多个输出端。
//
// # 广播语义
//
// [Broadcaster.Write] 按顺序把完整缓冲区交给每个活跃输出端（write-all：
// 短写会在内部续写，EINTR/EAGAIN 有限次重试），失败的输出端交给
// [xpolicy.Decide] 判定：
//
//   - Suppress: 输出端被移除，不再接收写入和刷新，本次调用继续。
//   - Abort: 输出端同样被移除，但剩余输出端仍会在本次调用中收到数据，
//     全部处理完后整个调用返回第一个中止错误（[*SinkError]）。
//
// 没有中止但活跃集合已空时返回 [ErrNoDestinations]，[Copy] 把它当作
// 正常的提前结束信号。
//
// 广播不是事务：不保证"全部成功或全部失败"。
//
// # 诊断输出
//
// 需要报告的失败通过注入的 [Reporter] 输出一行 "{sink}: {error}"，
// 与结构化日志（xlog）相互独立。
//
// # 并发
//
// Broadcaster 不是并发安全的，只能在单个 goroutine 中使用。
package xfanout
