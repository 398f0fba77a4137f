// ./main.go
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/xkilldash9x/storeforge/cmd"
)

// main is the entry point for the storeforge CLI application.
func main() {
	// A signal-aware context lets Ctrl-C interrupt long navigations cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Execute(ctx)
}
