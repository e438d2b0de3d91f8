// Command tackle plans fishing expeditions and keeps a durable catch log.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/roach88/tackle/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cli.Execute(ctx, cli.NewRootCommand())
	stop()
	os.Exit(cli.GetExitCode(err))
}
