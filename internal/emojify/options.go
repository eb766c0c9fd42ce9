package emojify

import (
	"github.com/photoprism/emojify/internal/face"
	"github.com/photoprism/emojify/internal/overlay"
	"github.com/photoprism/emojify/internal/photo"
)

// Options configure an Emojifier.
type Options struct {
	Detector       face.Options
	PreserveAspect bool
	JpegQuality    int
}

// Overlay returns the compositing options.
func (o Options) Overlay() overlay.Options {
	return overlay.Options{PreserveAspect: o.PreserveAspect}
}

// OptionsDefault returns the default options.
func OptionsDefault() Options {
	result := Options{
		Detector:       face.OptionsSingle(),
		PreserveAspect: false,
		JpegQuality:    photo.JpegQuality,
	}

	return result
}
