// Command tableview displays CSV and XLSX files as tables in the terminal.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	if err := NewApp().Execute(ctx, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
