package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli"

	"github.com/photoprism/emojify/internal/config"
)

// ConfigCommand registers the config cli command.
var ConfigCommand = cli.Command{
	Name:   "config",
	Usage:  "Displays the effective configuration",
	Action: configAction,
}

func configAction(ctx *cli.Context) error {
	conf := config.NewConfig(ctx)

	w := tabwriter.NewWriter(ctx.App.Writer, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "NAME\tVALUE")

	for _, row := range conf.Report() {
		fmt.Fprintf(w, "%s\t%s\n", row[0], row[1])
	}

	return w.Flush()
}
