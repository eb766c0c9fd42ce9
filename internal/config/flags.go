package config

import (
	"github.com/urfave/cli"

	"github.com/photoprism/emojify/internal/face"
	"github.com/photoprism/emojify/internal/photo"
)

// GlobalFlags describes global command-line parameters and flags.
var GlobalFlags = []cli.Flag{
	cli.BoolFlag{
		Name:   "debug",
		Usage:  "enable debug mode, show additional log messages",
		EnvVar: "EMOJIFY_DEBUG",
	},
	cli.StringFlag{
		Name:   "log-level, l",
		Usage:  "trace, debug, info, warning, error, fatal, or panic",
		Value:  DefaultLogLevel,
		EnvVar: "EMOJIFY_LOG_LEVEL",
	},
	cli.StringFlag{
		Name:   "config-file, c",
		Usage:  "load configuration options from `FILENAME`",
		EnvVar: "EMOJIFY_CONFIG_FILE",
	},
	cli.StringFlag{
		Name:   "assets-path, a",
		Usage:  "emoji image `PATH`, files must be named like the emoji, e.g. smile.png",
		EnvVar: "EMOJIFY_ASSETS_PATH",
	},
	cli.StringFlag{
		Name:   "detector-url",
		Usage:  "face detection service `URL`",
		Value:  DefaultDetectorUrl,
		EnvVar: "EMOJIFY_DETECTOR_URL",
	},
	cli.IntFlag{
		Name:   "detector-timeout",
		Usage:  "face detection service timeout in `SECONDS`",
		Value:  DefaultDetectorTimeout,
		EnvVar: "EMOJIFY_DETECTOR_TIMEOUT",
	},
	cli.Float64Flag{
		Name:   "detector-min-score",
		Usage:  "minimum face detection `SCORE` from 0 to 1",
		Value:  face.DefaultMinScore,
		EnvVar: "EMOJIFY_DETECTOR_MIN_SCORE",
	},
	cli.IntFlag{
		Name:   "jpeg-quality, q",
		Usage:  "JPEG `QUALITY` of saved images",
		Value:  photo.JpegQuality,
		EnvVar: "EMOJIFY_JPEG_QUALITY",
	},
	cli.BoolFlag{
		Name:   "preserve-aspect",
		Usage:  "scale emoji height only once so the emoji keeps its aspect ratio",
		EnvVar: "EMOJIFY_PRESERVE_ASPECT",
	},
	cli.StringFlag{
		Name:   "http-host",
		Usage:  "web server `IP` address",
		Value:  DefaultHttpHost,
		EnvVar: "EMOJIFY_HTTP_HOST",
	},
	cli.IntFlag{
		Name:   "http-port",
		Usage:  "web server port `NUMBER`",
		Value:  DefaultHttpPort,
		EnvVar: "EMOJIFY_HTTP_PORT",
	},
	cli.IntFlag{
		Name:   "workers, w",
		Usage:  "number of files processed in parallel",
		Value:  DefaultWorkers,
		EnvVar: "EMOJIFY_WORKERS",
	},
}
