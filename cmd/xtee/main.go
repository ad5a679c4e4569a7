// xtee 把标准输入复制到标准输出和若干文件，文件可按大小轮转。
//
// 用法:
//
//	xtee [选项] [FILE]...
//
// 选项:
//
//	-a, --append              追加写入，不截断已有文件
//	-r, --rotate              按 --max-size-bytes 轮转到 FILE.1、FILE.2 …
//	-s, --max-size-bytes SIZE 轮转阈值（默认 1000 字节，支持 10KB/1MB）
//	-n, --max-files N         每个 FILE 最多保留的代际文件数（0 不限制）
//	    --output-error[=MODE] 输出错误处理: warn, warn-nopipe, exit, exit-nopipe
//	-p                        等价于 --output-error=warn-nopipe
//	-i, --ignore-interrupts   忽略 SIGINT
//	    --fsync               刷新时对文件执行 fsync
//	    --buffer-size SIZE    读缓冲大小（默认 32KB）
//	-c, --config FILE         YAML/JSON 配置文件
//	    --stats-file FILE     退出时写入 JSON 指标快照
//	    --log-level LEVEL     生命周期日志级别（默认 warn）
//	    --log-format FORMAT   text 或 json
//	    --log-file FILE       生命周期日志写入按大小轮转的文件
//
// 未指定 --output-error 时使用 warn-nopipe；只写 --output-error 不带值时使用 warn。
// 文件 FILE 从 FILE.0 开始编号，启动时续写编号最大的已有文件。
//
// 退出码:
//
//	0: 成功
//	1: 运行失败（输出端中止、读取失败、最终刷新失败、文件无法打开）
//	2: 参数错误
//
// 示例:
//
//	make 2>&1 | xtee -r -s 10MB -n 5 build.log
//	xtee --output-error=exit -a audit.log < events
package main

import (
	"context"
	"os"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	// 关闭的标准输出以 EPIPE 写错误的形式交给失败策略处理，而不是直接终止进程
	ignoreBrokenPipe()

	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	os.Exit(a.run(context.Background(), os.Args))
}
