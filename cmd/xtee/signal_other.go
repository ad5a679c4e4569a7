//go:build !unix

package main

import (
	"os"
	"os/signal"
)

func ignoreBrokenPipe() {}

func ignoreInterrupts() {
	signal.Ignore(os.Interrupt)
}
