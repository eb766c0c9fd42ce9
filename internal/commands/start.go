package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/photoprism/emojify/internal/server"
)

// StartCommand registers the start cli command.
var StartCommand = cli.Command{
	Name:   "start",
	Usage:  "Starts the web server",
	Action: startAction,
}

func startAction(ctx *cli.Context) error {
	conf, err := initConfig(ctx)

	if err != nil {
		return err
	}

	cctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return server.Start(cctx, conf)
}
