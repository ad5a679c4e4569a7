package xlog

import (
	"context"
	"log/slog"
)

type nopLogger struct{}

var _ Logger = nopLogger{}

// Nop 返回丢弃所有日志的 Logger
func Nop() Logger {
	return nopLogger{}
}

func (nopLogger) Debug(context.Context, string, ...slog.Attr) {}
func (nopLogger) Info(context.Context, string, ...slog.Attr)  {}
func (nopLogger) Warn(context.Context, string, ...slog.Attr)  {}
func (nopLogger) Error(context.Context, string, ...slog.Attr) {}
func (n nopLogger) With(...slog.Attr) Logger                  { return n }
