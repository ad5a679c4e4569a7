// Package xpolicy 定义输出端写入失败时的处理策略。
//
// 策略是纯函数：给定 [Mode] 和具体错误，[Decide] 返回 [Verdict]，
// 决定该输出端是被静默移除（Suppress）还是让整次广播失败（Abort），
// 以及是否需要输出一行诊断信息。
//
// # 四种模式
//
//	模式            broken pipe               其他错误
//	warn            移除，打印诊断            移除，打印诊断
//	warn-nopipe     移除，静默（默认）        移除，打印诊断
//	exit            中止，打印诊断            中止，打印诊断
//	exit-nopipe     移除，静默                中止，打印诊断
//
// "broken pipe" 指下游读端已关闭（EPIPE）。其余 I/O 错误（磁盘满、
// 权限不足、设备错误）一律视为其他错误。
package xpolicy
