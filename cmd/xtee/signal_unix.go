//go:build unix

package main

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

func ignoreBrokenPipe() {
	signal.Ignore(unix.SIGPIPE)
}

func ignoreInterrupts() {
	signal.Ignore(os.Interrupt)
}
