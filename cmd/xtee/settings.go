package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/urfave/cli/v3"

	"github.com/omeyang/xtee/pkg/config/xconf"
	"github.com/omeyang/xtee/pkg/observability/xlog"
	"github.com/omeyang/xtee/pkg/stream/xfanout"
	"github.com/omeyang/xtee/pkg/stream/xpolicy"
)

// 命令行参数名
const (
	flagAppend           = "append"
	flagRotate           = "rotate"
	flagMaxSize          = "max-size-bytes"
	flagMaxFiles         = "max-files"
	flagOutputError      = "output-error"
	flagWarnNoPipe       = "p"
	flagIgnoreInterrupts = "ignore-interrupts"
	flagFsync            = "fsync"
	flagBufferSize       = "buffer-size"
	flagConfig           = "config"
	flagStatsFile        = "stats-file"
	flagLogLevel         = "log-level"
	flagLogFormat        = "log-format"
	flagLogFile          = "log-file"
)

const (
	defaultMaxSize  = 1000 * datasize.B
	defaultLogLevel = "warn"
)

type logSettings struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
}

// settings 合并后的运行参数：命令行 > 配置文件 > 默认值
type settings struct {
	Append           bool              `koanf:"append"`
	Rotate           bool              `koanf:"rotate"`
	MaxSize          datasize.ByteSize `koanf:"max_size"`
	MaxFiles         int               `koanf:"max_files"`
	OutputError      string            `koanf:"output_error"`
	IgnoreInterrupts bool              `koanf:"ignore_interrupts"`
	Fsync            bool              `koanf:"fsync"`
	BufferSize       datasize.ByteSize `koanf:"buffer_size"`
	Files            []string          `koanf:"files"`
	StatsFile        string            `koanf:"stats_file"`
	Log              logSettings       `koanf:"log"`

	mode xpolicy.Mode
}

func defaultSettings() settings {
	return settings{
		MaxSize:    defaultMaxSize,
		BufferSize: datasize.ByteSize(xfanout.DefaultBufferSize),
		Log: logSettings{
			Level:  defaultLogLevel,
			Format: "text",
		},
		mode: xpolicy.DefaultMode,
	}
}

// loadSettings 读取配置文件并用显式给出的命令行参数覆盖。
func loadSettings(cmd *cli.Command) (settings, error) {
	s := defaultSettings()

	if path := cmd.String(flagConfig); path != "" {
		cfg, err := xconf.New(path, xconf.WithStrict(true))
		if err != nil {
			return s, &usageError{msg: fmt.Sprintf("config %s: %v", path, err)}
		}
		if err := cfg.Unmarshal("", &s); err != nil {
			return s, &usageError{msg: fmt.Sprintf("config %s: %v", path, err)}
		}
	}

	if cmd.IsSet(flagAppend) {
		s.Append = cmd.Bool(flagAppend)
	}
	if cmd.IsSet(flagRotate) {
		s.Rotate = cmd.Bool(flagRotate)
	}
	if cmd.IsSet(flagMaxSize) {
		v, err := parseSize(flagMaxSize, cmd.String(flagMaxSize))
		if err != nil {
			return s, err
		}
		s.MaxSize = v
	}
	if cmd.IsSet(flagMaxFiles) {
		s.MaxFiles = cmd.Int(flagMaxFiles)
	}
	if cmd.IsSet(flagIgnoreInterrupts) {
		s.IgnoreInterrupts = cmd.Bool(flagIgnoreInterrupts)
	}
	if cmd.IsSet(flagFsync) {
		s.Fsync = cmd.Bool(flagFsync)
	}
	if cmd.IsSet(flagBufferSize) {
		v, err := parseSize(flagBufferSize, cmd.String(flagBufferSize))
		if err != nil {
			return s, err
		}
		s.BufferSize = v
	}
	if cmd.IsSet(flagStatsFile) {
		s.StatsFile = cmd.String(flagStatsFile)
	}
	if cmd.IsSet(flagLogLevel) {
		s.Log.Level = cmd.String(flagLogLevel)
	}
	if cmd.IsSet(flagLogFormat) {
		s.Log.Format = cmd.String(flagLogFormat)
	}
	if cmd.IsSet(flagLogFile) {
		s.Log.File = cmd.String(flagLogFile)
	}

	switch {
	case cmd.IsSet(flagOutputError):
		s.OutputError = cmd.String(flagOutputError)
	case cmd.Bool(flagWarnNoPipe):
		s.OutputError = xpolicy.WarnNoPipe.String()
	}

	s.Files = append(s.Files, cmd.Args().Slice()...)

	return s, s.validate()
}

// validate 检查取值范围并解析失败模式。
func (s *settings) validate() error {
	s.mode = xpolicy.DefaultMode
	if s.OutputError != "" {
		mode, err := xpolicy.ParseMode(s.OutputError)
		if err != nil {
			return &usageError{msg: fmt.Sprintf("invalid --%s %q (want one of %s)",
				flagOutputError, s.OutputError, modeNames())}
		}
		s.mode = mode
	}

	if s.MaxFiles < 0 {
		return &usageError{msg: fmt.Sprintf("invalid --%s %d: must not be negative", flagMaxFiles, s.MaxFiles)}
	}
	if s.MaxSize.Bytes() > math.MaxInt64 {
		return &usageError{msg: fmt.Sprintf("invalid --%s: %s is too large", flagMaxSize, s.MaxSize.HR())}
	}
	if s.BufferSize == 0 {
		s.BufferSize = datasize.ByteSize(xfanout.DefaultBufferSize)
	}
	if s.BufferSize.Bytes() > math.MaxInt32 {
		return &usageError{msg: fmt.Sprintf("invalid --%s: %s is too large", flagBufferSize, s.BufferSize.HR())}
	}
	if _, err := xlog.ParseLevel(s.Log.Level); s.Log.Level != "" && err != nil {
		return &usageError{msg: fmt.Sprintf("invalid --%s %q", flagLogLevel, s.Log.Level)}
	}
	switch strings.ToLower(strings.TrimSpace(s.Log.Format)) {
	case "", "text", "json":
	default:
		return &usageError{msg: fmt.Sprintf("invalid --%s %q (want text or json)", flagLogFormat, s.Log.Format)}
	}
	for _, f := range s.Files {
		if f == "" {
			return &usageError{msg: "empty FILE argument"}
		}
	}
	return nil
}

func parseSize(flag, value string) (datasize.ByteSize, error) {
	var v datasize.ByteSize
	if err := v.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return 0, &usageError{msg: fmt.Sprintf("invalid --%s %q: %v", flag, value, err)}
	}
	return v, nil
}

func modeNames() string {
	modes := xpolicy.Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}

// normalizeArgs 把不带值的 --output-error 改写为显式的 warn。
//
// --output-error 的值只能用 "=" 给出，后一个参数总是 FILE。
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if arg == "--"+flagOutputError || arg == "-"+flagOutputError {
			arg = "--" + flagOutputError + "=" + xpolicy.BareMode.String()
		}
		out = append(out, arg)
	}
	return out
}
