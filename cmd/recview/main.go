// Package main is the recview command.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/recview/internal/cli"
	"github.com/rshade/recview/pkg/version"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run executes the root command; cobra has already printed any error.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	return root.ExecuteContext(ctx)
}
