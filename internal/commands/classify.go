package commands

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/photoprism/emojify/internal/emoji"
)

// ClassifyCommand registers the classify cli command.
var ClassifyCommand = cli.Command{
	Name:      "classify",
	Usage:     "Shows the emoji category for expression probabilities",
	ArgsUsage: "SMILING LEFT_EYE_OPEN RIGHT_EYE_OPEN",
	Action:    classifyAction,
}

func classifyAction(ctx *cli.Context) error {
	if ctx.NArg() != 3 {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}

	var p [3]float32

	for i := range p {
		v, err := strconv.ParseFloat(ctx.Args().Get(i), 32)

		if err != nil {
			return fmt.Errorf("classify: invalid probability %q", ctx.Args().Get(i))
		}

		p[i] = float32(v)
	}

	c := emoji.Classify(p[0], p[1], p[2])

	fmt.Fprintln(ctx.App.Writer, c.Name())

	return nil
}
