//go:build unix

package xpolicy

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errPipe  = &fs.PathError{Op: "write", Path: "/dev/stdout", Err: syscall.EPIPE}
	errOther = &fs.PathError{Op: "write", Path: "out.log", Err: syscall.ENOSPC}
)

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(errPipe))
	assert.True(t, IsBrokenPipe(fmt.Errorf("wrapped: %w", errPipe)))
	assert.False(t, IsBrokenPipe(errOther))
	assert.False(t, IsBrokenPipe(errors.New("broken pipe")), "只认错误链，不做字符串匹配")
	assert.False(t, IsBrokenPipe(nil))
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(&fs.PathError{Op: "write", Path: "/dev/stdout", Err: syscall.EAGAIN}))
	assert.True(t, IsTransient(fmt.Errorf("wrapped: %w", syscall.EINTR)))
	assert.False(t, IsTransient(errPipe))
	assert.False(t, IsTransient(nil))
}

func TestDecide(t *testing.T) {
	tests := []struct {
		mode Mode
		err  error
		want Verdict
	}{
		{Warn, errPipe, Verdict{Action: Suppress, Report: true}},
		{Warn, errOther, Verdict{Action: Suppress, Report: true}},
		{WarnNoPipe, errPipe, Verdict{Action: Suppress, Report: false}},
		{WarnNoPipe, errOther, Verdict{Action: Suppress, Report: true}},
		{Exit, errPipe, Verdict{Action: Abort, Report: true}},
		{Exit, errOther, Verdict{Action: Abort, Report: true}},
		{ExitNoPipe, errPipe, Verdict{Action: Suppress, Report: false}},
		{ExitNoPipe, errOther, Verdict{Action: Abort, Report: true}},
	}

	for _, tt := range tests {
		name := tt.mode.String() + "/other"
		if tt.err == errPipe {
			name = tt.mode.String() + "/pipe"
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.mode, tt.err))
		})
	}
}

func TestDecideNilError(t *testing.T) {
	for _, m := range Modes() {
		assert.Equal(t, Verdict{}, Decide(m, nil), m.String())
	}
}

func TestDecideUnknownModeFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Decide(DefaultMode, errPipe), Decide(Mode(42), errPipe))
	assert.Equal(t, Decide(DefaultMode, errOther), Decide(Mode(42), errOther))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"warn", Warn, false},
		{"warn-nopipe", WarnNoPipe, false},
		{"exit", Exit, false},
		{"exit-nopipe", ExitNoPipe, false},
		{"  EXIT ", Exit, false},
		{"", BareMode, false},
		{"abort", DefaultMode, true},
		{"warn_nopipe", DefaultMode, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownMode)
				assert.Contains(t, err.Error(), tt.in)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeText(t *testing.T) {
	for _, m := range Modes() {
		text, err := m.MarshalText()
		require.NoError(t, err)

		var back Mode
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, m, back)
	}

	_, err := Mode(-1).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownMode)
	assert.Equal(t, "Mode(-1)", Mode(-1).String())

	var m Mode
	assert.ErrorIs(t, m.UnmarshalText([]byte("bogus")), ErrUnknownMode)
}

func TestDefaults(t *testing.T) {
	var zero Mode
	assert.Equal(t, DefaultMode, zero, "零值即默认模式")
	assert.NotEqual(t, DefaultMode, BareMode)
	assert.Equal(t, "suppress", Suppress.String())
	assert.Equal(t, "abort", Abort.String())
	assert.Equal(t, "unknown", Action(9).String())
}
