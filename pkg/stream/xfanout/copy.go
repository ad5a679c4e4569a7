package xfanout

import (
	"context"
	"errors"
	"fmt"
	"io"
)

const (
	// DefaultBufferSize Copy 默认读缓冲大小
	DefaultBufferSize = 32 * 1024

	// InputName 输入读取失败时的诊断标识
	InputName = "stdin"
)

// Copy 从 src 读取直到 EOF，每块数据广播到 b。
//
// 返回读取的总字节数。[ErrNoDestinations] 视为正常结束；读取失败先以
// "stdin: {error}" 报告，再返回包装了 [ErrRead] 的错误；输出端中止返回
// [*SinkError]，诊断已在广播时输出。ctx 取消时在下一次读取前返回 ctx.Err()。
//
// Copy 不刷新 b，调用方负责最终的 Flush。
func Copy(ctx context.Context, b *Broadcaster, src io.Reader, bufSize int) (int64, error) {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	buf := make([]byte, bufSize)

	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		n, rerr := src.Read(buf)
		if n > 0 {
			total += int64(n)
			b.opts.recorder.RecordRead(ctx, n)
			if _, werr := b.Write(buf[:n]); werr != nil {
				if errors.Is(werr, ErrNoDestinations) {
					return total, nil
				}
				return total, werr
			}
		}

		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				return total, nil
			}
			b.opts.reporter.Report(InputName, rerr)
			return total, fmt.Errorf("%w: %w", ErrRead, rerr)
		}
	}
}
