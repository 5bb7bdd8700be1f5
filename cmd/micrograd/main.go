// Package main provides the micrograd CLI.
//
// With no arguments it trains the compiled-in toy network and prints one
// line per iteration: the loss followed by the network outputs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "v0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
