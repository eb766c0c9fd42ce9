/*
Emojify covers the faces in photos with emojis that match their expression.

Run "emojify help" for a list of commands.
*/
package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/photoprism/emojify/internal/commands"
	"github.com/photoprism/emojify/internal/config"
	"github.com/photoprism/emojify/internal/event"
)

var version = "development"
var log = event.Log

func main() {
	app := cli.NewApp()
	app.Name = "Emojify"
	app.HelpName = "emojify"
	app.Usage = "Overlays expression-matched emojis on faces"
	app.Version = version
	app.EnableBashCompletion = true
	app.Flags = config.GlobalFlags
	app.Commands = commands.Commands

	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
