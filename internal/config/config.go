/*
Package config provides global options, command-line flags, and factories for
the emoji assets, face detectors, and the emojifier.
*/
package config

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/photoprism/emojify/internal/emoji"
	"github.com/photoprism/emojify/internal/emojify"
	"github.com/photoprism/emojify/internal/event"
	"github.com/photoprism/emojify/pkg/fs"
	"github.com/photoprism/emojify/pkg/sanitize"
)

var log = event.Log

// Config holds the configuration and shared instances.
type Config struct {
	options    *Options
	assets     *emoji.Assets
	assetsOnce sync.Once
}

// NewConfig initialises a new configuration from the options file and command-line flags.
func NewConfig(ctx *cli.Context) *Config {
	o := NewOptions()

	if ctx != nil {
		if fileName := ctx.GlobalString("config-file"); fileName != "" {
			if err := o.Load(fileName); err != nil {
				log.Errorf("config: %s", err)
			}
		}

		o.ApplyCliContext(ctx)
	}

	return FromOptions(o)
}

// FromOptions returns a configuration for the given options.
func FromOptions(o *Options) *Config {
	if o == nil {
		o = NewOptions()
	}

	return &Config{options: o}
}

// Init validates the options and configures logging.
func (c *Config) Init() error {
	event.SetLevel(c.options.LogLevel)

	if c.Debug() {
		event.Log.SetLevel(logrus.DebugLevel)
	}

	if p := c.AssetsPath(); p != "" && !fs.PathExists(p) {
		return fmt.Errorf("config: assets path %s not found", sanitize.Log(p))
	}

	if c.options.DetectorMinScore < 0 || c.options.DetectorMinScore > 1 {
		return fmt.Errorf("config: detector min score must be between 0 and 1")
	}

	return nil
}

// Options returns the raw options.
func (c *Config) Options() *Options {
	return c.options
}

// Debug tests if debug mode is enabled.
func (c *Config) Debug() bool {
	return c.options.Debug
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() logrus.Level {
	if c.Debug() {
		return logrus.DebugLevel
	}

	if level, err := logrus.ParseLevel(c.options.LogLevel); err == nil {
		return level
	}

	return logrus.InfoLevel
}

// AssetsPath returns the emoji image path, or an empty string for built-in images.
func (c *Config) AssetsPath() string {
	return c.options.AssetsPath
}

// Assets returns the shared emoji asset store.
func (c *Config) Assets() *emoji.Assets {
	c.assetsOnce.Do(func() {
		c.assets = emoji.NewAssets(c.AssetsPath())
	})

	return c.assets
}

// JpegQuality returns the JPEG quality of saved images, in the range 25 to 100.
func (c *Config) JpegQuality() int {
	switch q := c.options.JpegQuality; {
	case q <= 0:
		return emojify.OptionsDefault().JpegQuality
	case q < 25:
		return 25
	case q > 100:
		return 100
	default:
		return q
	}
}

// PreserveAspect tests if emojis should keep their aspect ratio.
func (c *Config) PreserveAspect() bool {
	return c.options.PreserveAspect
}

// HttpHost returns the web server host.
func (c *Config) HttpHost() string {
	if c.options.HttpHost == "" {
		return DefaultHttpHost
	}

	return c.options.HttpHost
}

// HttpPort returns the web server port.
func (c *Config) HttpPort() int {
	if c.options.HttpPort <= 0 {
		return DefaultHttpPort
	}

	return c.options.HttpPort
}

// Workers returns the number of files processed in parallel.
func (c *Config) Workers() int {
	cores := runtime.NumCPU()

	switch {
	case c.options.Workers < 1:
		return 1
	case c.options.Workers > cores:
		return cores
	default:
		return c.options.Workers
	}
}
