package xfanout

import (
	"io"
	"time"

	retry "github.com/avast/retry-go/v5"

	"github.com/omeyang/xtee/pkg/stream/xpolicy"
)

func newRetrier(attempts uint, delay time.Duration) *retry.Retrier {
	return retry.New(
		retry.Attempts(attempts),
		retry.Delay(delay),
		retry.DelayType(retry.FixedDelay),
		retry.RetryIf(xpolicy.IsTransient),
		retry.LastErrorOnly(true),
	)
}

// writeAll 把 p 完整写入 w。
//
// 短写从已写位置续写；EINTR/EAGAIN 由 retrier 有限次重试，其余错误立即返回。
// 返回值为实际写入的字节数。
func writeAll(w io.Writer, p []byte, retrier *retry.Retrier) (int, error) {
	written := 0
	err := retrier.Do(func() error {
		for written < len(p) {
			n, err := w.Write(p[written:])
			if n > 0 {
				written += n
			}
			if err != nil {
				return err
			}
			if n == 0 {
				return io.ErrShortWrite
			}
		}
		return nil
	})
	return written, err
}
