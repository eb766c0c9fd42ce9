/*
Package face models faces found by an external detector and provides detector
clients that return them.

Detection itself is never performed in-process: a Detector returns the
bounding box and the smiling and eye-open probabilities of every face, and
callers only post-process that output.
*/
package face

import (
	"fmt"
	"image"
	"math"

	"github.com/photoprism/emojify/internal/event"
)

var log = event.Log

// OverlapThresholdFloor is the minimum overlap in percent for two faces to conflict.
const OverlapThresholdFloor = 0

// Face represents a face detected in an image, including expression probabilities.
// Coordinates are in pixels relative to the top left corner of the image, whatever its bounds.
type Face struct {
	X            float32 `json:"x" yaml:"X"`
	Y            float32 `json:"y" yaml:"Y"`
	W            float32 `json:"w" yaml:"W"`
	H            float32 `json:"h" yaml:"H"`
	Score        int     `json:"score,omitempty" yaml:"Score,omitempty"`
	Smiling      float32 `json:"smiling" yaml:"Smiling"`
	LeftEyeOpen  float32 `json:"left_eye_open" yaml:"LeftEyeOpen"`
	RightEyeOpen float32 `json:"right_eye_open" yaml:"RightEyeOpen"`
}

// NewFace creates a face from a bounding box given as top left and bottom right corners.
func NewFace(x1, y1, x2, y2 float64, score, smiling, leftEyeOpen, rightEyeOpen float64) Face {
	return Face{
		X:            float32(x1),
		Y:            float32(y1),
		W:            float32(x2 - x1),
		H:            float32(y2 - y1),
		Score:        int(math.Round(score * 100)),
		Smiling:      float32(smiling),
		LeftEyeOpen:  float32(leftEyeOpen),
		RightEyeOpen: float32(rightEyeOpen),
	}
}

// Position returns the top left corner of the face.
func (f Face) Position() (x, y float32) {
	return f.X, f.Y
}

// Size returns the width and height of the face.
func (f Face) Size() (w, h float32) {
	return f.W, f.H
}

// Center returns the center of the face.
func (f Face) Center() (x, y float32) {
	return f.X + f.W/2, f.Y + f.H/2
}

// Area returns the face bounding box.
func (f Face) Area() Area {
	return NewArea("face", f.X, f.Y, f.W, f.H)
}

// String returns a human-readable summary for logging.
func (f Face) String() string {
	return fmt.Sprintf("%s smiling %.3f, left eye %.3f, right eye %.3f", f.Area(), f.Smiling, f.LeftEyeOpen, f.RightEyeOpen)
}

// InBounds tests if the face center lies within an image with the given bounds.
func (f Face) InBounds(b image.Rectangle) bool {
	x, y := f.Center()

	return image.Pt(int(x), int(y)).In(image.Rect(0, 0, b.Dx(), b.Dy()))
}
