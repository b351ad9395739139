package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/superfly/vislog/internal/cli"
	"github.com/superfly/vislog/iostreams"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Run(ctx, iostreams.System(), os.Args[1:]...)
	cancel()

	os.Exit(code)
}
