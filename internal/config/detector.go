package config

import (
	"time"

	"github.com/photoprism/emojify/internal/emojify"
	"github.com/photoprism/emojify/internal/face"
)

// DetectorUrl returns the face detection service URL.
func (c *Config) DetectorUrl() string {
	return c.options.DetectorUrl
}

// DetectorTimeout returns the face detection service timeout.
func (c *Config) DetectorTimeout() time.Duration {
	if c.options.DetectorTimeout <= 0 {
		return DefaultDetectorTimeout * time.Second
	}

	return time.Duration(c.options.DetectorTimeout) * time.Second
}

// DetectorOptions returns the options for stateless detection with classification.
func (c *Config) DetectorOptions() face.Options {
	opt := face.OptionsSingle()
	opt.MinScore = c.options.DetectorMinScore

	return opt
}

// DetectorFactory returns a factory for face detection service clients.
func (c *Config) DetectorFactory() face.Factory {
	return face.NetFactory(c.DetectorUrl(), c.DetectorTimeout())
}

// EmojifyOptions returns the emojifier options.
func (c *Config) EmojifyOptions() emojify.Options {
	opt := emojify.OptionsDefault()
	opt.Detector = c.DetectorOptions()
	opt.PreserveAspect = c.PreserveAspect()
	opt.JpegQuality = c.JpegQuality()

	return opt
}

// Emojifier returns a new emojifier that uses the detector, or the detection service if nil.
func (c *Config) Emojifier(detector face.Factory) *emojify.Emojifier {
	if detector == nil {
		detector = c.DetectorFactory()
	}

	return emojify.New(detector, c.Assets(), c.EmojifyOptions())
}
