package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/alawein/labsync/internal/client/cli"
)

// Version задается через ldflags при сборке
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(Version)
	cli.Execute(ctx)
}
