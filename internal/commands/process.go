package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize/english"
	"github.com/urfave/cli"

	"github.com/photoprism/emojify/internal/emojify"
	"github.com/photoprism/emojify/internal/event"
	"github.com/photoprism/emojify/internal/face"
	"github.com/photoprism/emojify/internal/photo"
	"github.com/photoprism/emojify/pkg/fs"
	"github.com/photoprism/emojify/pkg/sanitize"
)

// OutputSuffix is appended to the base name of processed files.
const OutputSuffix = ".emoji"

// ProcessCommand registers the process cli command.
var ProcessCommand = cli.Command{
	Name:      "process",
	Usage:     "Overlays emojis on the faces in image files",
	ArgsUsage: "FILE...",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "faces, f",
			Usage: "read faces from a YAML or JSON sidecar `FILE` instead of the detector",
		},
		cli.StringFlag{
			Name:  "output, o",
			Usage: "output `PATH`, defaults to the directory of each file",
		},
	},
	Action: processAction,
}

// processAction emojifies all files passed as arguments.
func processAction(ctx *cli.Context) error {
	start := time.Now()

	if ctx.NArg() == 0 {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}

	conf, err := initConfig(ctx)

	if err != nil {
		return err
	}

	var detector face.Factory

	if sidecar := ctx.String("faces"); sidecar != "" {
		detector = face.SidecarFactory(sidecar)
	}

	e := conf.Emojifier(detector)
	outputPath := ctx.String("output")

	jobs := make([]emojify.Job, 0, ctx.NArg())

	for _, fileName := range ctx.Args() {
		if !fs.FileExists(fileName) {
			return fmt.Errorf("process: %s not found", sanitize.Log(fileName))
		}

		outputName := OutputName(fileName, outputPath)
		jobs = append(jobs, e.NewJob(fileName, outputName))
	}

	s := event.Subscribe(emojify.EventNoFaces)
	defer event.Unsubscribe(s)

	go func() {
		for msg := range s.Receiver {
			log.Warnf("process: %s", msg.Fields["message"])
		}
	}()

	cctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	result := emojify.Batch(cctx, jobs, conf.Workers())

	log.Infof("process: %s composited, %s without faces, %s failed [%s]",
		english.Plural(result.Composited, "file", "files"),
		english.Plural(result.NoFaces, "file", "files"),
		english.Plural(result.Failed, "file", "files"),
		time.Since(start),
	)

	if result.Failed > 0 {
		return fmt.Errorf("process: %s failed", english.Plural(result.Failed, "file", "files"))
	}

	return nil
}

// OutputName returns the file name processed images are saved as.
func OutputName(fileName, outputPath string) string {
	format := photo.OutputFormat(fs.GetFileFormat(fileName))

	if outputPath != "" {
		outputPath = filepath.Clean(outputPath)
	}

	return fs.RelatedName(fileName, outputPath, OutputSuffix, format)
}
