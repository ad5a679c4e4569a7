package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
)

// app 持有进程级的输入输出，便于测试注入
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// ignoreInterrupts 处理 -i，测试中替换为记录调用
	ignoreInterrupts func()
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:            stdin,
		stdout:           stdout,
		stderr:           stderr,
		ignoreInterrupts: ignoreInterrupts,
	}
}

// createCommand 创建 CLI 命令。
func (a *app) createCommand() *cli.Command {
	return &cli.Command{
		Name:                   "xtee",
		Usage:                  "复制标准输入到标准输出和文件，文件可按大小轮转",
		ArgsUsage:              "[FILE]...",
		Version:                fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		UseShortOptionHandling: true,
		Reader:                 a.stdin,
		Writer:                 a.stdout,
		ErrWriter:              a.stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagAppend,
				Aliases: []string{"a"},
				Usage:   "追加写入，不截断已有文件",
			},
			&cli.BoolFlag{
				Name:    flagRotate,
				Aliases: []string{"r"},
				Usage:   "按 --max-size-bytes 轮转文件",
			},
			&cli.StringFlag{
				Name:    flagMaxSize,
				Aliases: []string{"s"},
				Usage:   "轮转阈值（字节，或 10KB/1MB）",
				Value:   defaultMaxSize.String(),
			},
			&cli.IntFlag{
				Name:    flagMaxFiles,
				Aliases: []string{"n"},
				Usage:   "每个文件最多保留的代际文件数，0 不限制",
			},
			&cli.StringFlag{
				Name:  flagOutputError,
				Usage: "输出错误处理: " + modeNames() + "（不带值时为 warn）",
			},
			&cli.BoolFlag{
				Name:  flagWarnNoPipe,
				Usage: "等价于 --output-error=warn-nopipe",
			},
			&cli.BoolFlag{
				Name:    flagIgnoreInterrupts,
				Aliases: []string{"i"},
				Usage:   "忽略 SIGINT",
			},
			&cli.BoolFlag{
				Name:  flagFsync,
				Usage: "刷新时对文件执行 fsync",
			},
			&cli.StringFlag{
				Name:  flagBufferSize,
				Usage: "读缓冲大小",
				Value: "32KB",
			},
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "YAML/JSON 配置文件",
			},
			&cli.StringFlag{
				Name:  flagStatsFile,
				Usage: "退出时写入 JSON 指标快照",
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Usage: "生命周期日志级别: debug, info, warn, error",
				Value: defaultLogLevel,
			},
			&cli.StringFlag{
				Name:  flagLogFormat,
				Usage: "生命周期日志格式: text, json",
				Value: "text",
			},
			&cli.StringFlag{
				Name:  flagLogFile,
				Usage: "生命周期日志文件（按大小轮转）",
			},
		},
		Action: a.action,
		// 参数错误统一包装为 usageError，由 run() 映射到退出码 2
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return &usageError{msg: err.Error()}
		},
		// 禁止 urfave/cli 直接调用 os.Exit，由 run() 统一处理退出码
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

func (a *app) action(ctx context.Context, cmd *cli.Command) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if s.IgnoreInterrupts {
		a.ignoreInterrupts()
	}
	return a.tee(ctx, s)
}

// run 执行命令并返回退出码。
func (a *app) run(ctx context.Context, args []string) int {
	err := a.createCommand().Run(ctx, normalizeArgs(args))
	if err == nil {
		return 0
	}

	if errors.Is(err, errReported) {
		return 1
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(a.stderr, "xtee: %v\n", usageErr)
		fmt.Fprintln(a.stderr, "Try 'xtee --help' for more information.")
		return 2
	}
	// 未经 Action 的错误来自参数解析
	fmt.Fprintf(a.stderr, "xtee: %v\n", err)
	return 2
}
