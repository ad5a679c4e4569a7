package xpolicy

// Action 对失败输出端采取的动作
type Action int

const (
	// Suppress 移除该输出端，继续向其余输出端写入
	Suppress Action = iota
	// Abort 本次广播完成后整体失败
	Abort
)

// String 返回动作名称
func (a Action) String() string {
	switch a {
	case Suppress:
		return "suppress"
	case Abort:
		return "abort"
	default:
		return "unknown"
	}
}

// Verdict 策略判定结果
type Verdict struct {
	Action Action
	// Report 为 true 时需要向诊断通道输出 "{sink}: {error}"
	Report bool
}

// Decide 根据模式和错误给出判定。
//
// 无论判定为何，失败的输出端都不会再收到后续写入；Action 只决定
// 调用方是否把本次失败当作整体失败。err 为 nil 时返回零值判定。
func Decide(mode Mode, err error) Verdict {
	if err == nil {
		return Verdict{}
	}
	pipe := IsBrokenPipe(err)

	switch mode {
	case Warn:
		return Verdict{Action: Suppress, Report: true}
	case Exit:
		return Verdict{Action: Abort, Report: true}
	case ExitNoPipe:
		if pipe {
			return Verdict{Action: Suppress}
		}
		return Verdict{Action: Abort, Report: true}
	default:
		// WarnNoPipe 以及未知值：按默认模式处理
		return Verdict{Action: Suppress, Report: !pipe}
	}
}
