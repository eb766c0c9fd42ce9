package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize/english"
	"github.com/urfave/cli"

	"github.com/photoprism/emojify/internal/emoji"
	"github.com/photoprism/emojify/internal/photo"
	"github.com/photoprism/emojify/pkg/sanitize"
)

// EmojisCommand registers the emojis cli command.
var EmojisCommand = cli.Command{
	Name:  "emojis",
	Usage: "Saves the emoji images as PNG files",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "output, o",
			Usage: "output `PATH`, defaults to the assets path",
		},
	},
	Action: emojisAction,
}

func emojisAction(ctx *cli.Context) error {
	start := time.Now()

	conf, err := initConfig(ctx)

	if err != nil {
		return err
	}

	dir := ctx.String("output")

	if dir == "" {
		dir = conf.AssetsPath()
	}

	if dir == "" {
		return fmt.Errorf("emojis: output path required")
	}

	assets := conf.Assets()

	for _, c := range emoji.Categories {
		img, err := assets.Image(c)

		if err != nil {
			return err
		}

		fileName := filepath.Join(dir, c.Name()+".png")

		if err = photo.Save(img, fileName, 0); err != nil {
			return err
		}

		log.Debugf("emojis: saved %s", sanitize.Log(filepath.Base(fileName)))
	}

	log.Infof("emojis: saved %s in %s [%s]", english.Plural(len(emoji.Categories), "image", "images"), sanitize.Log(dir), time.Since(start))

	return nil
}
