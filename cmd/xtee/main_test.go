package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// --log-file 经 lumberjack 写入后启动的 mill goroutine
		goleak.IgnoreTopFunction("gopkg.in/natefinch/lumberjack%2ev2.(*Logger).millRun"),
	)
}

// result 一次运行的退出码和输出
type result struct {
	code   int
	stdout string
	stderr string
}

// runWith 用给定的标准输出运行 xtee，-i 不会修改测试进程的信号处理
func runWith(t *testing.T, stdin io.Reader, stdout io.Writer, args ...string) (result, *bool) {
	t.Helper()
	var errBuf bytes.Buffer
	a := newApp(stdin, stdout, &errBuf)
	ignored := new(bool)
	a.ignoreInterrupts = func() { *ignored = true }

	code := a.run(context.Background(), append([]string{"xtee"}, args...))
	res := result{code: code, stderr: errBuf.String()}
	if buf, ok := stdout.(*bytes.Buffer); ok {
		res.stdout = buf.String()
	}
	return res, ignored
}

func runXtee(t *testing.T, input string, args ...string) result {
	t.Helper()
	res, _ := runWith(t, bytes.NewBufferString(input), new(bytes.Buffer), args...)
	return res
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
