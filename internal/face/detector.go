package face

import (
	"context"
	"errors"
	"image"
)

// ErrDetectorUnavailable is returned if a detector could not be acquired or failed to run.
var ErrDetectorUnavailable = errors.New("face detector unavailable")

// Detector finds faces in an image. Detectors are acquired per image and must be released after use.
type Detector interface {
	// Detect returns the faces found in img, in detector order.
	Detect(ctx context.Context, img image.Image) (Faces, error)

	// Release frees all resources held by the detector.
	Release() error
}

// Factory acquires a new detector.
type Factory func(opt Options) (Detector, error)

// Options configure a detector.
type Options struct {
	// Tracking enables face identity tracking across frames.
	Tracking bool
	// Classify requests smiling and eye-open probabilities.
	Classify bool
	// MinScore is the minimum detection confidence in the range 0 to 1.
	MinScore float64
}

// DefaultMinScore is the minimum detection confidence used by default.
const DefaultMinScore = 0.7

// OptionsSingle returns options for stateless single-image detection with classification.
func OptionsSingle() Options {
	return Options{
		Tracking: false,
		Classify: true,
		MinScore: DefaultMinScore,
	}
}
