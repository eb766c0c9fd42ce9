/*
Package commands provides the emojify command-line interface.
*/
package commands

import (
	"github.com/urfave/cli"

	"github.com/photoprism/emojify/internal/config"
	"github.com/photoprism/emojify/internal/event"
)

var log = event.Log

// Commands lists all available commands.
var Commands = []cli.Command{
	ProcessCommand,
	ClassifyCommand,
	EmojisCommand,
	StartCommand,
	ConfigCommand,
}

// initConfig returns an initialized configuration for the command context.
func initConfig(ctx *cli.Context) (*config.Config, error) {
	conf := config.NewConfig(ctx)

	if err := conf.Init(); err != nil {
		return conf, err
	}

	return conf, nil
}
