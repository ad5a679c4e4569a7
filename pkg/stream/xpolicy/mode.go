package xpolicy

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode 输出错误处理模式
type Mode int

// 模式常量。零值为 [WarnNoPipe]，与未指定时的默认行为一致。
const (
	// WarnNoPipe 所有错误都移除输出端；broken pipe 不打印诊断
	WarnNoPipe Mode = iota
	// Warn 所有错误都移除输出端并打印诊断
	Warn
	// Exit 任何错误都中止，包括 broken pipe
	Exit
	// ExitNoPipe broken pipe 静默移除，其他错误中止
	ExitNoPipe
)

// DefaultMode 未指定 --output-error 时使用的模式
const DefaultMode = WarnNoPipe

// BareMode 指定了 --output-error 但未给出值时使用的模式
const BareMode = Warn

var modeNames = [...]string{
	WarnNoPipe: "warn-nopipe",
	Warn:       "warn",
	Exit:       "exit",
	ExitNoPipe: "exit-nopipe",
}

// Modes 返回全部模式，按命令行帮助中的展示顺序排列。
func Modes() []Mode {
	return []Mode{Warn, WarnNoPipe, Exit, ExitNoPipe}
}

// String 返回模式的命令行名称
func (m Mode) String() string {
	if m.IsValid() {
		return modeNames[m]
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// IsValid 报告 m 是否为已定义的模式
func (m Mode) IsValid() bool {
	return m >= WarnNoPipe && m <= ExitNoPipe
}

// MarshalText 实现 encoding.TextMarshaler
func (m Mode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler，支持配置文件直接反序列化。
func (m *Mode) UnmarshalText(data []byte) error {
	parsed, err := ParseMode(string(data))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMode 解析模式名称（大小写不敏感，自动 TrimSpace）。
// 空字符串返回 [BareMode]，对应 "--output-error" 不带值的写法。
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return BareMode, nil
	}
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	return DefaultMode, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
