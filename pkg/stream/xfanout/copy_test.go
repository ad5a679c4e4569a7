//go:build unix

package xfanout

import (
	"context"
	"errors"
	"strings"
	"syscall"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xtee/pkg/stream/xpolicy"
)

// endlessReader 无限产生数据并计数
type endlessReader struct{ reads int }

func (r *endlessReader) Read(p []byte) (int, error) {
	r.reads++
	for i := range p {
		p[i] = 'z'
	}
	return len(p), nil
}

func TestCopy(t *testing.T) {
	a, b := newMemSink("a"), newMemSink("b")
	bc := New(sinks(a, b), WithReporter(DiscardReporter))

	input := strings.Repeat("line of input\n", 100)
	n, err := Copy(context.Background(), bc, iotest.HalfReader(strings.NewReader(input)), 64)
	require.NoError(t, err)
	assert.Equal(t, int64(len(input)), n)
	assert.Equal(t, input, a.buf.String())
	assert.Equal(t, input, b.buf.String())
}

func TestCopyDefaultBufferSize(t *testing.T) {
	m := newMemSink("m")
	bc := New(sinks(m), WithReporter(DiscardReporter))

	input := strings.Repeat("x", DefaultBufferSize+1)
	n, err := Copy(context.Background(), bc, strings.NewReader(input), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(len(input)), n)
	assert.Equal(t, 2, m.writes)
}

func TestCopyDataWithEOF(t *testing.T) {
	m := newMemSink("m")
	bc := New(sinks(m), WithReporter(DiscardReporter))

	_, err := Copy(context.Background(), bc, iotest.DataErrReader(strings.NewReader("tail")), 16)
	require.NoError(t, err)
	assert.Equal(t, "tail", m.buf.String())
}

func TestCopyReadError(t *testing.T) {
	m := newMemSink("m")
	rep := &lineReporter{}
	bc := New(sinks(m), WithReporter(rep))

	boom := errors.New("boom")
	_, err := Copy(context.Background(), bc, iotest.ErrReader(boom), 16)
	assert.ErrorIs(t, err, ErrRead)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "stdin: boom", rep.String())
}

func TestCopyStopsWhenNoDestinationsRemain(t *testing.T) {
	m := newMemSink("stdout")
	m.writeErr = pathErr("/dev/stdout", syscall.EPIPE)
	bc := New(sinks(m), WithReporter(DiscardReporter))

	src := &endlessReader{}
	n, err := Copy(context.Background(), bc, src, 8)
	require.NoError(t, err, "没有输出端不是致命错误")
	assert.Equal(t, int64(8), n)
	assert.Equal(t, 1, src.reads)
}

func TestCopyAbort(t *testing.T) {
	bad := newMemSink("bad")
	bad.writeErr = pathErr("bad", syscall.ENOSPC)
	good := newMemSink("good")
	bc := New(sinks(good, bad), WithMode(xpolicy.Exit), WithReporter(DiscardReporter))

	src := &endlessReader{}
	_, err := Copy(context.Background(), bc, src, 4)
	var se *SinkError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "bad", se.Sink)
	assert.Equal(t, "zzzz", good.buf.String())
	assert.Equal(t, 1, src.reads)
}

func TestCopyContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := newMemSink("m")
	bc := New(sinks(m), WithReporter(DiscardReporter))
	_, err := Copy(ctx, bc, &endlessReader{}, 4)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, m.writes)
}
