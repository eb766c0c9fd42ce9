package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli"
	"gopkg.in/yaml.v2"

	"github.com/photoprism/emojify/internal/face"
	"github.com/photoprism/emojify/internal/photo"
	"github.com/photoprism/emojify/pkg/fs"
	"github.com/photoprism/emojify/pkg/sanitize"
)

const (
	DefaultLogLevel        = "info"
	DefaultDetectorUrl     = "http://localhost:8008/detect"
	DefaultDetectorTimeout = 30
	DefaultHttpHost        = "0.0.0.0"
	DefaultHttpPort        = 2343
	DefaultWorkers         = 1
)

// Options hold the global configuration values. Values from the options
// file are overridden by command-line flags and environment variables.
type Options struct {
	ConfigFile       string  `yaml:"-"`
	Debug            bool    `yaml:"Debug" json:"Debug"`
	LogLevel         string  `yaml:"LogLevel" json:"LogLevel"`
	AssetsPath       string  `yaml:"AssetsPath" json:"AssetsPath"`
	DetectorUrl      string  `yaml:"DetectorUrl" json:"DetectorUrl"`
	DetectorTimeout  int     `yaml:"DetectorTimeout" json:"DetectorTimeout"`
	DetectorMinScore float64 `yaml:"DetectorMinScore" json:"DetectorMinScore"`
	JpegQuality      int     `yaml:"JpegQuality" json:"JpegQuality"`
	PreserveAspect   bool    `yaml:"PreserveAspect" json:"PreserveAspect"`
	HttpHost         string  `yaml:"HttpHost" json:"HttpHost"`
	HttpPort         int     `yaml:"HttpPort" json:"HttpPort"`
	Workers          int     `yaml:"Workers" json:"Workers"`
}

// NewOptions returns options with default values.
func NewOptions() *Options {
	return &Options{
		LogLevel:         DefaultLogLevel,
		DetectorUrl:      DefaultDetectorUrl,
		DetectorTimeout:  DefaultDetectorTimeout,
		DetectorMinScore: face.DefaultMinScore,
		JpegQuality:      photo.JpegQuality,
		HttpHost:         DefaultHttpHost,
		HttpPort:         DefaultHttpPort,
		Workers:          DefaultWorkers,
	}
}

// Load reads options from a YAML file.
func (o *Options) Load(fileName string) error {
	if fileName == "" {
		return nil
	}

	if !fs.FileExists(fileName) {
		return fmt.Errorf("config: options file %s not found", sanitize.Log(filepath.Base(fileName)))
	}

	data, err := os.ReadFile(fileName)

	if err != nil {
		return err
	}

	if err = yaml.Unmarshal(data, o); err != nil {
		return fmt.Errorf("config: %s in %s", err, sanitize.Log(filepath.Base(fileName)))
	}

	o.ConfigFile = fileName

	return nil
}

// ApplyCliContext overrides options with flags that were set on the command line or via environment.
func (o *Options) ApplyCliContext(ctx *cli.Context) {
	if ctx == nil {
		return
	}

	if ctx.GlobalIsSet("debug") {
		o.Debug = ctx.GlobalBool("debug")
	}

	if ctx.GlobalIsSet("log-level") {
		o.LogLevel = ctx.GlobalString("log-level")
	}

	if ctx.GlobalIsSet("assets-path") {
		o.AssetsPath = ctx.GlobalString("assets-path")
	}

	if ctx.GlobalIsSet("detector-url") {
		o.DetectorUrl = ctx.GlobalString("detector-url")
	}

	if ctx.GlobalIsSet("detector-timeout") {
		o.DetectorTimeout = ctx.GlobalInt("detector-timeout")
	}

	if ctx.GlobalIsSet("detector-min-score") {
		o.DetectorMinScore = ctx.GlobalFloat64("detector-min-score")
	}

	if ctx.GlobalIsSet("jpeg-quality") {
		o.JpegQuality = ctx.GlobalInt("jpeg-quality")
	}

	if ctx.GlobalIsSet("preserve-aspect") {
		o.PreserveAspect = ctx.GlobalBool("preserve-aspect")
	}

	if ctx.GlobalIsSet("http-host") {
		o.HttpHost = ctx.GlobalString("http-host")
	}

	if ctx.GlobalIsSet("http-port") {
		o.HttpPort = ctx.GlobalInt("http-port")
	}

	if ctx.GlobalIsSet("workers") {
		o.Workers = ctx.GlobalInt("workers")
	}
}
